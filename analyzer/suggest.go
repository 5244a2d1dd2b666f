package analyzer

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/AnmolBudhewar8995/watchtime-booster/internal/models"
)

// ruleInput bundles everything a suggestion predicate may look at.
type ruleInput struct {
	video *models.Video
	// ratePercent is the engagement rate expressed as a percentage.
	ratePercent float64
	publishedAt time.Time
	hasTime     bool
}

// suggestionRule is one (predicate, message) pair in an ordered cascade.
// A nil predicate always fires; these carry the constant footer guidance.
type suggestionRule struct {
	when    func(in ruleInput) bool
	message string
}

func evaluate(rules []suggestionRule, in ruleInput) []string {
	var out []string
	for _, rule := range rules {
		if rule.when == nil || rule.when(in) {
			out = append(out, rule.message)
		}
	}
	return out
}

func newRuleInput(video *models.Video, metrics models.Metrics) ruleInput {
	return ruleInput{
		video:       video,
		ratePercent: metrics.EngagementRate * 100,
		publishedAt: video.PublishedAt,
		hasTime:     video.HasPublishedAt(),
	}
}

// quickRules is the flat suggestion cascade shown on the single-video view.
// The duration and title branches are mutually exclusive chains; predicates
// encode the exclusivity so the table stays declarative.
var quickRules = []suggestionRule{
	{
		when:    func(in ruleInput) bool { return in.video.DurationSeconds < 120 },
		message: "Consider making longer, more detailed content. Videos under 2 minutes often have lower watch time retention.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.DurationSeconds > 1800 },
		message: "Your video is quite long (30+ minutes). Consider breaking it into a series or adding chapter markers to improve retention.",
	},
	{
		when: func(in ruleInput) bool {
			d := in.video.DurationSeconds
			return d >= 120 && d < 300
		},
		message: "Short videos (under 5 minutes) can perform well if they're engaging. Focus on delivering value quickly.",
	},
	{
		when: func(in ruleInput) bool {
			d := in.video.DurationSeconds
			return d >= 300 && d <= 1800
		},
		message: "Your video length is in a good range. Focus on maintaining viewer engagement throughout.",
	},
	{
		when:    func(in ruleInput) bool { return in.ratePercent < 1 },
		message: "Low engagement detected. Consider improving your hook in the first 15 seconds to capture attention immediately.",
	},
	{
		when:    func(in ruleInput) bool { return in.ratePercent > 5 },
		message: "Great engagement rate! Your content resonates well with viewers.",
	},
	{
		when:    func(in ruleInput) bool { return utf8.RuneCountInString(in.video.Title) > 60 },
		message: "Your title is quite long. Consider making it more concise while keeping key keywords (under 60 characters).",
	},
	{
		when:    func(in ruleInput) bool { return utf8.RuneCountInString(in.video.Title) < 20 },
		message: "Your title might be too short. Consider adding more descriptive keywords to improve discoverability.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.DurationSeconds > 600 },
		message: "Add chapter markers or timestamps to help viewers navigate to specific sections they're interested in.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.DurationSeconds > 600 },
		message: "Consider adding pattern interrupts every 2-3 minutes to maintain attention.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.Views < 1000 },
		message: "Focus on building audience retention. Ask questions or create curiosity gaps to encourage continued viewing.",
	},
	{
		message: "Ensure your thumbnail and title work together to create a compelling promise that the video delivers on.",
	},
}

// Suggest returns the flat suggestion list for a single video, in rule
// evaluation order.
func Suggest(video *models.Video, metrics models.Metrics) []string {
	return evaluate(quickRules, newRuleInput(video, metrics))
}

var actionKeywords = []string{"how to", "tutorial", "guide", "tips", "review"}

func titleLacksActionKeyword(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range actionKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

var contentStrategyRules = []suggestionRule{
	{
		when:    func(in ruleInput) bool { return titleLacksActionKeyword(in.video.Title) },
		message: "Consider adding action-oriented keywords like 'How to', 'Tutorial', 'Tips', or 'Guide' to improve searchability.",
	},
	{
		when:    func(in ruleInput) bool { return len(strings.Fields(in.video.Title)) < 5 },
		message: "Your title could be more descriptive. Add specific details about what viewers will learn or gain.",
	},
	{
		when:    func(in ruleInput) bool { return utf8.RuneCountInString(in.video.Description) < 100 },
		message: "Your video description is quite short. YouTube descriptions should be 150-300 words for better SEO.",
	},
	{
		when:    func(in ruleInput) bool { return utf8.RuneCountInString(in.video.Description) < 100 },
		message: "Add timestamps, key points, and relevant keywords to your description.",
	},
	{
		when:    func(in ruleInput) bool { return len(in.video.Tags) < 5 },
		message: "Consider adding more relevant tags (10-15 tags) to improve discoverability across different search queries.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.DurationSeconds < 300 },
		message: "For short videos, focus on one specific value proposition. Deliver it quickly and clearly.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.DurationSeconds > 1200 },
		message: "Long-form content works well if it maintains engagement. Consider breaking into chapters or series.",
	},
}

var technicalRules = []suggestionRule{
	{
		when:    func(in ruleInput) bool { return in.video.Views < 1000 },
		message: "Focus on improving audio quality first - it's often more important than video quality for retention.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.Views < 1000 },
		message: "Ensure good lighting and clear visuals, especially in the first 15 seconds.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.DurationSeconds > 600 },
		message: "Add pattern interrupts every 2-3 minutes: graphics, questions, or topic changes to maintain attention.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.DurationSeconds > 600 },
		message: "Include visual cues and on-screen text to help viewers follow along.",
	},
	{
		when: func(in ruleInput) bool {
			if !in.hasTime {
				return false
			}
			wd := in.publishedAt.Weekday()
			return wd == time.Saturday || wd == time.Sunday
		},
		message: "Consider testing weekday uploads as well - many channels perform better Tuesday-Thursday.",
	},
	{
		when: func(in ruleInput) bool {
			if !in.hasTime {
				return false
			}
			hour := in.publishedAt.Hour()
			return hour <= 6 || hour >= 22
		},
		message: "Your upload time might not be optimal. Test posting during peak hours for your audience.",
	},
}

var engagementRules = []suggestionRule{
	{
		when:    func(in ruleInput) bool { return in.video.DurationSeconds > 300 },
		message: "Strengthen your opening hook. The first 15 seconds determine if viewers stay or leave.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.DurationSeconds > 300 },
		message: "Promise specific value in the first 30 seconds: 'By the end of this video, you'll know exactly how to...'",
	},
	{
		when:    func(in ruleInput) bool { return in.video.Views > 1000 },
		message: "Add mid-video call-to-actions: 'If this is helpful, hit the like button' to boost engagement signals.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.Views > 1000 },
		message: "Ask specific questions in the comments to encourage discussion.",
	},
	{
		when:    func(in ruleInput) bool { return in.ratePercent < 2 },
		message: "Low engagement detected. Try adding more interactive elements: polls, questions, or challenges.",
	},
	{
		when:    func(in ruleInput) bool { return in.ratePercent < 2 },
		message: "Create controversy or debate to encourage comments (while staying within YouTube guidelines).",
	},
	{
		when:    func(in ruleInput) bool { return in.ratePercent > 5 },
		message: "Great engagement! Consider creating follow-up content based on viewer feedback and questions.",
	},
}

// competitiveInsights starts with the per-category insight when the category
// is known, then the constant niche-research guidance.
func competitiveInsights(video *models.Video) []string {
	var out []string
	if insight, ok := CategoryInsight(video.CategoryID); ok {
		out = append(out, insight)
	}
	out = append(out,
		"Research top-performing videos in your niche and analyze their structure and hooks.",
		"Consider collaborating with creators in your field to cross-promote and gain new audiences.",
	)
	return out
}

var postingRules = []suggestionRule{
	{
		when:    func(in ruleInput) bool { return in.video.Views < 500 },
		message: "Focus on consistency over frequency. Upload regularly (weekly or bi-weekly) to build audience expectation.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.Views < 500 },
		message: "Promote your videos on social media platforms to drive initial views.",
	},
	{
		message: "Share your video on relevant Reddit communities, Facebook groups, and Discord servers.",
	},
	{
		message: "Create short clips or teasers for TikTok/Instagram Reels to drive traffic to the full video.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.Views > 1000 },
		message: "Respond to comments within the first few hours to boost engagement and algorithmic performance.",
	},
	{
		when:    func(in ruleInput) bool { return in.video.Views > 1000 },
		message: "Create community posts to keep your audience engaged between video uploads.",
	},
	{
		message: "Use YouTube's search suggestions to optimize your title and description for better discoverability.",
	},
	{
		message: "Create custom thumbnails that create curiosity gaps - show something that makes people want to click.",
	},
}

// SuggestAdvanced evaluates the per-category rule cascades and returns the
// category-partitioned suggestion set.
func SuggestAdvanced(video *models.Video, metrics models.Metrics) models.Suggestions {
	in := newRuleInput(video, metrics)

	return models.Suggestions{
		ContentStrategy:       evaluate(contentStrategyRules, in),
		TechnicalOptimization: evaluate(technicalRules, in),
		EngagementTactics:     evaluate(engagementRules, in),
		CompetitiveInsights:   competitiveInsights(video),
		PostingStrategy:       evaluate(postingRules, in),
	}
}
