// Package ranker orders a batch of videos by estimated lost watch-time
// potential, the amount of additional watch-seconds recoverable if viewer
// drop-off were eliminated.
package ranker

import (
	"sort"

	"github.com/AnmolBudhewar8995/watchtime-booster/internal/models"
)

// Rank annotates each video with a potential metric and returns the batch
// sorted descending by it. When any video carries an average view duration
// from the Analytics API, the retention-gap estimate is used:
//
//	potential_watch_seconds = views * max(duration - avg_view_duration, 0)
//
// Otherwise a fallback targets high-traffic, low-runtime videos:
//
//	potential_score = views / max(duration, 1)
//
// The sort is stable, so ties keep their input order. The input slice is not
// modified.
func Rank(videos []*models.Video) []*models.RankedVideo {
	mode := models.RankModeFallback
	for _, v := range videos {
		if v.AvgViewDuration > 0 {
			mode = models.RankModeRetentionGap
			break
		}
	}

	ranked := make([]*models.RankedVideo, 0, len(videos))
	for _, v := range videos {
		ranked = append(ranked, annotate(v, mode))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if mode == models.RankModeRetentionGap {
			return ranked[i].PotentialWatchSeconds > ranked[j].PotentialWatchSeconds
		}
		return ranked[i].PotentialScore > ranked[j].PotentialScore
	})

	return ranked
}

func annotate(video *models.Video, mode models.RankMode) *models.RankedVideo {
	rv := &models.RankedVideo{Video: video, Mode: mode}

	if mode == models.RankModeRetentionGap {
		gap := float64(video.DurationSeconds) - video.AvgViewDuration
		if gap < 0 {
			gap = 0
		}
		rv.PotentialWatchSeconds = float64(video.Views) * gap
		return rv
	}

	duration := video.DurationSeconds
	if duration < 1 {
		duration = 1
	}
	rv.PotentialScore = float64(video.Views) / float64(duration)
	return rv
}
