package analyzer

import (
	"unicode/utf8"

	"github.com/AnmolBudhewar8995/watchtime-booster/internal/models"
)

const baseScore = 50

// scoreRule is one independent adjustment to the base score. Rules are
// evaluated against the same inputs; a video may match several.
type scoreRule struct {
	name    string
	matches func(video *models.Video, rate float64) bool
	delta   int
}

// scoreRules is the fixed adjustment table. Duration sweet spot is 8-15
// minutes; engagement and view thresholds mirror common channel heuristics.
var scoreRules = []scoreRule{
	{
		name:    "duration under 2 minutes",
		matches: func(v *models.Video, _ float64) bool { return v.DurationSeconds < 120 },
		delta:   -10,
	},
	{
		name:    "duration in 8-15 minute sweet spot",
		matches: func(v *models.Video, _ float64) bool { return v.DurationSeconds >= 480 && v.DurationSeconds <= 900 },
		delta:   10,
	},
	{
		name:    "duration over 30 minutes",
		matches: func(v *models.Video, _ float64) bool { return v.DurationSeconds > 1800 },
		delta:   -15,
	},
	{
		name:    "engagement above 5%",
		matches: func(_ *models.Video, rate float64) bool { return rate > 0.05 },
		delta:   15,
	},
	{
		name:    "engagement above 2%",
		matches: func(_ *models.Video, rate float64) bool { return rate > 0.02 && rate <= 0.05 },
		delta:   5,
	},
	{
		name:    "engagement below 0.5%",
		matches: func(_ *models.Video, rate float64) bool { return rate < 0.005 },
		delta:   -20,
	},
	{
		name:    "title over 60 characters",
		matches: func(v *models.Video, _ float64) bool { return utf8.RuneCountInString(v.Title) > 60 },
		delta:   -5,
	},
	{
		name:    "title under 30 characters",
		matches: func(v *models.Video, _ float64) bool { return utf8.RuneCountInString(v.Title) < 30 },
		delta:   -5,
	},
	{
		name:    "over 100K views",
		matches: func(v *models.Video, _ float64) bool { return v.Views > 100000 },
		delta:   10,
	},
	{
		name:    "over 10K views",
		matches: func(v *models.Video, _ float64) bool { return v.Views > 10000 && v.Views <= 100000 },
		delta:   5,
	},
	{
		name:    "under 1K views",
		matches: func(v *models.Video, _ float64) bool { return v.Views < 1000 },
		delta:   -10,
	},
}

// Score maps a video and its engagement metrics to an optimization score in
// [0, 100]. Pure function: identical inputs always yield the identical score.
func Score(video *models.Video, metrics models.Metrics) int {
	score := baseScore
	for _, rule := range scoreRules {
		if rule.matches(video, metrics.EngagementRate) {
			score += rule.delta
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
