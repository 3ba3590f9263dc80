package api

import (
	"fmt"

	"github.com/yelnady/personal-portfolio/internal/models"
	"google.golang.org/api/youtube/v3"
)

const untitledVideo = "Untitled"

// dropUnidentified removes playlist items that carry no video ID.
// Such items are skipped, never reported as a failure of the whole listing.
func dropUnidentified(items []*youtube.PlaylistItem) []*youtube.PlaylistItem {
	kept := make([]*youtube.PlaylistItem, 0, len(items))
	for _, item := range items {
		if videoID(item) == "" {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// toVideoSummaries maps identified playlist items, keeping their order.
// Call dropUnidentified first.
func toVideoSummaries(items []*youtube.PlaylistItem, watchURLTemplate string) []models.VideoSummary {
	videos := make([]models.VideoSummary, 0, len(items))
	for _, item := range items {
		id := videoID(item)
		snippet := item.Snippet

		title := snippet.Title
		if title == "" {
			title = untitledVideo
		}

		videos = append(videos, models.VideoSummary{
			ID:          id,
			Title:       title,
			Description: snippet.Description,
			Thumbnail:   bestThumbnail(snippet.Thumbnails),
			PublishedAt: snippet.PublishedAt,
			URL:         fmt.Sprintf(watchURLTemplate, id),
		})
	}
	return videos
}

// bestThumbnail picks high, then medium, then default resolution
func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, candidate := range []*youtube.Thumbnail{t.High, t.Medium, t.Default} {
		if candidate != nil && candidate.Url != "" {
			return candidate.Url
		}
	}
	return ""
}

func videoID(item *youtube.PlaylistItem) string {
	if item == nil || item.Snippet == nil || item.Snippet.ResourceId == nil {
		return ""
	}
	return item.Snippet.ResourceId.VideoId
}
