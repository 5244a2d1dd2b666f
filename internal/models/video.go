package models

import "time"

// Video is an immutable snapshot of one video's public data as returned by
// the YouTube Data API. Missing counts are zero, not "unknown".
type Video struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ChannelTitle    string    `json:"channel_title"`
	Tags            []string  `json:"tags,omitempty"`
	CategoryID      string    `json:"category_id,omitempty"`
	PublishedAt     time.Time `json:"published_at"`
	PublishedAtRaw  string    `json:"published_at_raw,omitempty"`
	Duration        string    `json:"duration"`
	DurationSeconds int       `json:"duration_seconds"`
	Views           int64     `json:"views"`
	Likes           int64     `json:"likes"`
	Comments        int64     `json:"comments"`
	ThumbnailURL    string    `json:"thumbnail_url,omitempty"`
	URL             string    `json:"url"`

	// AvgViewDuration is the average view duration in seconds from the
	// Analytics API. Zero or negative means the figure is unavailable.
	AvgViewDuration float64 `json:"avg_view_duration,omitempty"`
}

// HasPublishedAt reports whether the publication timestamp is known.
func (v *Video) HasPublishedAt() bool {
	return !v.PublishedAt.IsZero()
}

// Metrics holds per-video engagement ratios derived from raw counts.
type Metrics struct {
	EngagementRate     float64 `json:"engagement_rate"`       // (likes+comments)/views
	LikeToViewRatio    float64 `json:"like_to_view_ratio"`    // percentage
	CommentToViewRatio float64 `json:"comment_to_view_ratio"` // percentage
}

// Analysis is the full watch-time optimization report for a single video.
type Analysis struct {
	Video *Video `json:"video"`

	Score                 int     `json:"optimization_score"` // 0-100
	EngagementRatePercent float64 `json:"engagement_rate"`    // percentage, 2 decimals

	CurrentWatchTime     int64 `json:"current_watch_time"`       // seconds
	EstimatedAvgWatch    int64 `json:"estimated_avg_watch_time"` // seconds
	PotentialImprovement int64 `json:"potential_improvement"`    // seconds

	Suggestions []string    `json:"suggestions"`
	ActionItems []string    `json:"action_items"`
	Metrics     Metrics     `json:"video_metrics"`
	Advanced    Suggestions `json:"advanced_suggestions"`
}

// SuggestionCategory pairs a category name with its ordered suggestions.
type SuggestionCategory struct {
	Name  string
	Items []string
}

// Suggestions partitions optimization advice into the five fixed categories.
// Category order is fixed; suggestion order within a category follows rule
// evaluation order.
type Suggestions struct {
	ContentStrategy       []string `json:"content_strategy"`
	TechnicalOptimization []string `json:"technical_optimization"`
	EngagementTactics     []string `json:"engagement_tactics"`
	CompetitiveInsights   []string `json:"competitive_insights"`
	PostingStrategy       []string `json:"posting_strategy"`
}

// Categories returns the categories in the fixed presentation order.
func (s *Suggestions) Categories() []SuggestionCategory {
	return []SuggestionCategory{
		{"content_strategy", s.ContentStrategy},
		{"technical_optimization", s.TechnicalOptimization},
		{"engagement_tactics", s.EngagementTactics},
		{"competitive_insights", s.CompetitiveInsights},
		{"posting_strategy", s.PostingStrategy},
	}
}

// RankMode identifies which potential metric the batch ranker used.
type RankMode string

const (
	// RankModeRetentionGap estimates recoverable watch-seconds from the gap
	// between duration and average view duration.
	RankModeRetentionGap RankMode = "retention_gap"
	// RankModeFallback approximates potential as views over runtime when no
	// retention data is available.
	RankModeFallback RankMode = "fallback"
)

// RankedVideo annotates a video with its lost-watch-time potential.
type RankedVideo struct {
	Video *Video `json:"video"`

	Mode RankMode `json:"mode"`

	// PotentialWatchSeconds is set in retention-gap mode.
	PotentialWatchSeconds float64 `json:"potential_watch_seconds,omitempty"`
	// PotentialScore is set in fallback mode.
	PotentialScore float64 `json:"potential_score,omitempty"`
}

// ClusteredVideo annotates a video with its semantic cluster label.
type ClusteredVideo struct {
	Video   *Video `json:"video"`
	Cluster int    `json:"cluster"`
}

// Playlist is one suggested playlist: a cluster's top videos by view count.
type Playlist struct {
	Cluster  int      `json:"cluster"`
	VideoIDs []string `json:"video_ids"`
}

// DigestReport is the payload of one scheduled optimization digest email.
type DigestReport struct {
	Date      time.Time      `json:"date"`
	Ranked    []*RankedVideo `json:"ranked"`
	Analyses  []*Analysis    `json:"analyses"`
	Playlists []Playlist     `json:"playlists"`
	Total     int            `json:"total_videos"`
}
