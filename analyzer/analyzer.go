// Package analyzer computes heuristic watch-time optimization reports for
// YouTube videos: engagement metrics, a bounded 0-100 score, categorized
// suggestions, and prioritized action items.
//
// Every function is total over its input domain. Missing counts are treated
// as zero and unparsable timestamps silently disable the timestamp-dependent
// rules; nothing here returns an error.
package analyzer

import (
	"math"

	"github.com/AnmolBudhewar8995/watchtime-booster/internal/models"
)

// Retention on YouTube typically lands around 40-60%; we assume 50% when no
// analytics data is available, and a 10% improvement ceiling.
const (
	assumedRetention     = 0.5
	improvementPotential = 0.1
)

// Analyze produces the full optimization report for a single video.
func Analyze(video *models.Video) *models.Analysis {
	metrics := ComputeMetrics(video)
	score := Score(video, metrics)

	duration := float64(video.DurationSeconds)
	views := float64(video.Views)
	estimatedAvgWatch := duration * assumedRetention

	return &models.Analysis{
		Video:                 video,
		Score:                 score,
		EngagementRatePercent: round2(metrics.EngagementRate * 100),
		CurrentWatchTime:      int64(views * estimatedAvgWatch),
		EstimatedAvgWatch:     int64(estimatedAvgWatch),
		PotentialImprovement:  int64(views * duration * improvementPotential),
		Suggestions:           Suggest(video, metrics),
		ActionItems:           ActionItems(video, score),
		Metrics:               metrics,
		Advanced:              SuggestAdvanced(video, metrics),
	}
}

// ComputeMetrics derives engagement ratios from a video's raw counts.
// The engagement rate is (likes+comments)/views with views floored at 1, so
// a video with zero views and zero reactions has rate 0.
func ComputeMetrics(video *models.Video) models.Metrics {
	views := video.Views
	if views < 1 {
		views = 1
	}

	return models.Metrics{
		EngagementRate:     float64(video.Likes+video.Comments) / float64(views),
		LikeToViewRatio:    round2(float64(video.Likes) / float64(views) * 100),
		CommentToViewRatio: round2(float64(video.Comments) / float64(views) * 100),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
