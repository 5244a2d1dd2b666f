package youtube

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/AnmolBudhewar8995/watchtime-booster/internal/models"
)

// AnnotateAverageViewDurations queries the Analytics API for each video's
// average view duration over the trailing window and writes it onto the
// records. Videos the report has no row for keep AvgViewDuration at zero,
// which downstream ranking treats as "retention data unavailable".
func (c *Client) AnnotateAverageViewDurations(ctx context.Context, videos []*models.Video, windowDays int) error {
	if len(videos) == 0 {
		return nil
	}

	byID := make(map[string]*models.Video, len(videos))
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
		ids = append(ids, v.ID)
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -windowDays)

	// The Analytics filter has a length cap, so query in chunks.
	const chunkSize = 50
	for i := 0; i < len(ids); i += chunkSize {
		end := i + chunkSize
		if end > len(ids) {
			end = len(ids)
		}

		resp, err := c.analytics.Reports.Query().
			Ids("channel==MINE").
			StartDate(startDate.Format("2006-01-02")).
			EndDate(endDate.Format("2006-01-02")).
			Metrics("averageViewDuration").
			Dimensions("video").
			Filters("video==" + strings.Join(ids[i:end], ",")).
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("analytics query failed: %w", err)
		}

		for _, row := range resp.Rows {
			if len(row) < 2 {
				continue
			}
			videoID, ok := row[0].(string)
			if !ok {
				continue
			}
			avg, ok := row[1].(float64)
			if !ok {
				continue
			}
			if video := byID[videoID]; video != nil {
				video.AvgViewDuration = avg
			}
		}
	}

	log.Printf("Annotated average view durations for up to %d videos (%d-day window)", len(videos), windowDays)
	return nil
}
