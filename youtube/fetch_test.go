package youtube

import (
	"testing"

	youtubeapi "google.golang.org/api/youtube/v3"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		id   string
		ok   bool
	}{
		{"Watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"Watch URL with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"Short URL", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"Embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"Legacy v URL", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"Bare ID", "dQw4w9WgXcQ", "", false},
		{"Unrelated URL", "https://example.com/watch?v=abc", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.url)
			if ok != tt.ok || id != tt.id {
				t.Errorf("ExtractVideoID(%q) = (%q, %v), want (%q, %v)", tt.url, id, ok, tt.id, tt.ok)
			}
		})
	}
}

func TestVideoFromItem(t *testing.T) {
	item := &youtubeapi.Video{
		Id: "abc123",
		Snippet: &youtubeapi.VideoSnippet{
			Title:        "How to bake bread",
			Description:  "A walkthrough.",
			ChannelTitle: "Baker",
			Tags:         []string{"baking", "bread"},
			CategoryId:   "26",
			PublishedAt:  "2024-06-01T14:00:00Z",
			Thumbnails: &youtubeapi.ThumbnailDetails{
				High: &youtubeapi.Thumbnail{Url: "https://i.ytimg.com/high.jpg"},
			},
		},
		ContentDetails: &youtubeapi.VideoContentDetails{Duration: "PT10M30S"},
		Statistics: &youtubeapi.VideoStatistics{
			ViewCount:    50000,
			LikeCount:    1000,
			CommentCount: 200,
		},
	}

	video := videoFromItem(item)

	if video.ID != "abc123" {
		t.Errorf("ID = %q", video.ID)
	}
	if video.DurationSeconds != 630 {
		t.Errorf("DurationSeconds = %d, want 630", video.DurationSeconds)
	}
	if video.Views != 50000 || video.Likes != 1000 || video.Comments != 200 {
		t.Errorf("counts = %d/%d/%d", video.Views, video.Likes, video.Comments)
	}
	if !video.HasPublishedAt() {
		t.Error("expected parsed publication timestamp")
	}
	if video.ThumbnailURL != "https://i.ytimg.com/high.jpg" {
		t.Errorf("ThumbnailURL = %q", video.ThumbnailURL)
	}
	if video.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("URL = %q", video.URL)
	}
}

func TestVideoFromItemMissingFields(t *testing.T) {
	// Statistics absent and duration malformed: counts stay zero and the
	// publication timestamp stays unknown, never an error.
	item := &youtubeapi.Video{
		Id: "sparse",
		Snippet: &youtubeapi.VideoSnippet{
			Title:       "Sparse",
			PublishedAt: "not-a-timestamp",
		},
		ContentDetails: &youtubeapi.VideoContentDetails{Duration: "bogus"},
	}

	video := videoFromItem(item)

	if video.Views != 0 || video.Likes != 0 || video.Comments != 0 {
		t.Errorf("expected zero counts, got %d/%d/%d", video.Views, video.Likes, video.Comments)
	}
	if video.DurationSeconds != 0 {
		t.Errorf("DurationSeconds = %d, want 0 for malformed duration", video.DurationSeconds)
	}
	if video.HasPublishedAt() {
		t.Error("malformed timestamp must leave publication time unknown")
	}
}
