package models

// VideoSummary is the public record for one recent upload of the channel.
type VideoSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	URL         string `json:"url"`
}

// VideoListResponse is the success body of the video listing endpoint.
type VideoListResponse struct {
	Videos []VideoSummary `json:"videos"`
}

// ErrorResponse is the failure body shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
