package api

import (
	"testing"

	"google.golang.org/api/youtube/v3"
)

func playlistItem(id, title string, thumbs *youtube.ThumbnailDetails) *youtube.PlaylistItem {
	item := &youtube.PlaylistItem{
		Snippet: &youtube.PlaylistItemSnippet{
			Title:       title,
			Description: "about " + id,
			PublishedAt: "2024-05-01T10:00:00Z",
			Thumbnails:  thumbs,
		},
	}
	if id != "" {
		item.Snippet.ResourceId = &youtube.ResourceId{Kind: "youtube#video", VideoId: id}
	}
	return item
}

func thumbs(high, medium, def string) *youtube.ThumbnailDetails {
	t := &youtube.ThumbnailDetails{}
	if high != "" {
		t.High = &youtube.Thumbnail{Url: high}
	}
	if medium != "" {
		t.Medium = &youtube.Thumbnail{Url: medium}
	}
	if def != "" {
		t.Default = &youtube.Thumbnail{Url: def}
	}
	return t
}

func TestBestThumbnail(t *testing.T) {
	tests := []struct {
		name    string
		details *youtube.ThumbnailDetails
		want    string
	}{
		{"all present prefers high", thumbs("h.jpg", "m.jpg", "d.jpg"), "h.jpg"},
		{"medium and default", thumbs("", "m.jpg", "d.jpg"), "m.jpg"},
		{"default only", thumbs("", "", "d.jpg"), "d.jpg"},
		{"none", thumbs("", "", ""), ""},
		{"nil details", nil, ""},
		{"empty high url is skipped", &youtube.ThumbnailDetails{High: &youtube.Thumbnail{}, Default: &youtube.Thumbnail{Url: "d.jpg"}}, "d.jpg"},
		{"maxres is not considered", &youtube.ThumbnailDetails{Maxres: &youtube.Thumbnail{Url: "max.jpg"}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestThumbnail(tt.details); got != tt.want {
				t.Errorf("bestThumbnail() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDropUnidentified(t *testing.T) {
	items := []*youtube.PlaylistItem{
		playlistItem("a", "A", nil),
		playlistItem("", "no id", nil),
		nil,
		{Snippet: nil},
		playlistItem("b", "B", nil),
	}

	kept := dropUnidentified(items)
	if len(kept) != 2 {
		t.Fatalf("kept %d items, want 2", len(kept))
	}
	if videoID(kept[0]) != "a" || videoID(kept[1]) != "b" {
		t.Errorf("order not preserved: %q, %q", videoID(kept[0]), videoID(kept[1]))
	}
}

func TestToVideoSummaries(t *testing.T) {
	items := []*youtube.PlaylistItem{
		playlistItem("abc123", "", thumbs("", "m.jpg", "d.jpg")),
		playlistItem("def456", "Second", nil),
	}
	items[1].Snippet.Description = ""

	got := toVideoSummaries(items, defaultWatchURLTemplate)
	if len(got) != 2 {
		t.Fatalf("got %d summaries, want 2", len(got))
	}

	first := got[0]
	if first.ID != "abc123" || first.Title != "Untitled" {
		t.Errorf("first = %+v", first)
	}
	if first.Thumbnail != "m.jpg" {
		t.Errorf("thumbnail = %q, want m.jpg", first.Thumbnail)
	}
	if first.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("url = %q", first.URL)
	}
	if first.PublishedAt != "2024-05-01T10:00:00Z" {
		t.Errorf("publishedAt = %q", first.PublishedAt)
	}

	second := got[1]
	if second.Title != "Second" || second.Description != "" || second.Thumbnail != "" {
		t.Errorf("second = %+v", second)
	}
}
