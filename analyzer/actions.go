package analyzer

import "github.com/AnmolBudhewar8995/watchtime-booster/internal/models"

// ActionItems turns a video and its optimization score into an ordered task
// list. Score-bucketed priorities come first, then duration- and
// engagement-conditional items, then two constant follow-ups.
func ActionItems(video *models.Video, score int) []string {
	var items []string

	switch {
	case score < 30:
		items = append(items,
			"🔴 High Priority: Major optimization needed. Focus on improving retention in the first 30 seconds.",
			"🔴 High Priority: Review your title and thumbnail for clarity and appeal.",
		)
	case score < 60:
		items = append(items,
			"🟡 Medium Priority: Moderate optimization opportunities. Focus on engagement improvements.",
		)
	default:
		items = append(items,
			"🟢 Good: Your video is well-optimized. Focus on maintaining current strategies.",
		)
	}

	if video.DurationSeconds < 120 {
		items = append(items, "📈 Test longer format content (8-15 minutes) to increase watch time potential.")
	} else if video.DurationSeconds > 1800 {
		items = append(items, "✂️ Consider creating a condensed version or adding chapter markers.")
	}

	if ComputeMetrics(video).EngagementRate < 0.02 {
		items = append(items, "💬 Add more interactive elements: questions, polls, or calls-to-action to boost engagement.")
	}

	items = append(items,
		"📊 Monitor audience retention graphs in YouTube Analytics to identify drop-off points.",
		"🎯 A/B test different thumbnails for future videos based on what works best.",
	)

	return items
}
