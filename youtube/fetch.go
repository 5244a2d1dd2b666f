package youtube

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/AnmolBudhewar8995/watchtime-booster/internal/duration"
	"github.com/AnmolBudhewar8995/watchtime-booster/internal/models"

	youtubeapi "google.golang.org/api/youtube/v3"
)

const videoBatchSize = 50

var videoParts = []string{"snippet", "contentDetails", "statistics"}

// FetchVideo retrieves one video's public metadata and statistics.
// Returns ErrVideoNotFound when the API has no item for the ID.
func (c *Client) FetchVideo(ctx context.Context, videoID string) (*models.Video, error) {
	call := c.service.Videos.List(videoParts).Id(videoID).Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrVideoNotFound)
	}

	return videoFromItem(resp.Items[0]), nil
}

// FetchChannelUploads lists recent uploads of the authorized user's channel,
// up to maxResults, with full metadata and statistics.
func (c *Client) FetchChannelUploads(ctx context.Context, maxResults int64) ([]*models.Video, error) {
	channelsCall := c.service.Channels.List([]string{"contentDetails"}).Mine(true).Context(ctx)
	channelsResp, err := channelsCall.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve own channel: %w", err)
	}
	if len(channelsResp.Items) == 0 {
		return nil, fmt.Errorf("no channel found for the authorized user")
	}

	uploadsID := ""
	if cd := channelsResp.Items[0].ContentDetails; cd != nil && cd.RelatedPlaylists != nil {
		uploadsID = cd.RelatedPlaylists.Uploads
	}
	if uploadsID == "" {
		return nil, fmt.Errorf("authorized channel has no uploads playlist")
	}

	var videoIDs []string
	pageToken := ""
	for {
		playlistCall := c.service.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(uploadsID).
			MaxResults(videoBatchSize).
			Context(ctx)
		if pageToken != "" {
			playlistCall = playlistCall.PageToken(pageToken)
		}

		playlistResp, err := playlistCall.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list uploads playlist: %w", err)
		}

		for _, item := range playlistResp.Items {
			videoIDs = append(videoIDs, item.ContentDetails.VideoId)
		}

		pageToken = playlistResp.NextPageToken
		if pageToken == "" || int64(len(videoIDs)) >= maxResults {
			break
		}
	}

	if int64(len(videoIDs)) > maxResults {
		videoIDs = videoIDs[:maxResults]
	}

	log.Printf("Found %d uploads, fetching details...", len(videoIDs))

	var videos []*models.Video
	for i := 0; i < len(videoIDs); i += videoBatchSize {
		end := i + videoBatchSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}

		videosCall := c.service.Videos.List(videoParts).
			Id(strings.Join(videoIDs[i:end], ",")).
			Context(ctx)

		videosResp, err := videosCall.Do()
		if err != nil {
			log.Printf("Failed to get video details for batch: %v", err)
			continue
		}

		for _, item := range videosResp.Items {
			videos = append(videos, videoFromItem(item))
		}
	}

	return videos, nil
}

// videoFromItem maps one API item onto the internal record. Missing counts
// are zero and an unparsable duration leaves DurationSeconds at zero with
// the raw ISO string preserved.
func videoFromItem(item *youtubeapi.Video) *models.Video {
	video := &models.Video{
		ID:  item.Id,
		URL: fmt.Sprintf("https://www.youtube.com/watch?v=%s", item.Id),
	}

	if item.Snippet != nil {
		video.Title = item.Snippet.Title
		video.Description = item.Snippet.Description
		video.ChannelTitle = item.Snippet.ChannelTitle
		video.Tags = item.Snippet.Tags
		video.CategoryID = item.Snippet.CategoryId
		video.PublishedAtRaw = item.Snippet.PublishedAt

		if publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			video.PublishedAt = publishedAt
		}

		video.ThumbnailURL = thumbnailURL(item.Snippet.Thumbnails)
	}

	if item.ContentDetails != nil {
		video.Duration = item.ContentDetails.Duration
		if seconds, ok := duration.Parse(item.ContentDetails.Duration); ok {
			video.DurationSeconds = seconds
		}
	}

	if item.Statistics != nil {
		video.Views = int64(item.Statistics.ViewCount)
		video.Likes = int64(item.Statistics.LikeCount)
		video.Comments = int64(item.Statistics.CommentCount)
	}

	return video
}

func thumbnailURL(thumbs *youtubeapi.ThumbnailDetails) string {
	if thumbs == nil {
		return ""
	}
	for _, t := range []*youtubeapi.Thumbnail{thumbs.High, thumbs.Medium, thumbs.Default} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}
