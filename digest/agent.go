// Package digest implements the scheduled channel audit: fetch recent
// uploads, rank them by lost watch-time potential, analyze the top
// candidates, group the batch into playlist suggestions, and email the
// resulting report.
package digest

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AnmolBudhewar8995/watchtime-booster/analyzer"
	"github.com/AnmolBudhewar8995/watchtime-booster/cluster"
	"github.com/AnmolBudhewar8995/watchtime-booster/internal/models"
	"github.com/AnmolBudhewar8995/watchtime-booster/ranker"
	"github.com/AnmolBudhewar8995/watchtime-booster/shared/ai"
	"github.com/AnmolBudhewar8995/watchtime-booster/shared/config"
	"github.com/AnmolBudhewar8995/watchtime-booster/shared/email"
	"github.com/AnmolBudhewar8995/watchtime-booster/shared/scheduler"
	"github.com/AnmolBudhewar8995/watchtime-booster/shared/storage"
	"github.com/AnmolBudhewar8995/watchtime-booster/youtube"
)

// At most this many fully analyzed videos per digest; the rest appear only
// in the ranking table.
const maxAnalyzedPerDigest = 10

// Metrics summarizes one digest run for the scheduler's monitor.
type Metrics struct {
	VideosFound int
	Analyzed    int
	Skipped     int
	Playlists   int
}

func (m Metrics) GetSummary() string {
	return fmt.Sprintf("found %d videos, analyzed %d, skipped %d already reported, suggested %d playlists",
		m.VideosFound, m.Analyzed, m.Skipped, m.Playlists)
}

// videoSource is the slice of the YouTube client the agent needs.
type videoSource interface {
	FetchChannelUploads(ctx context.Context, maxResults int64) ([]*models.Video, error)
	AnnotateAverageViewDurations(ctx context.Context, videos []*models.Video, windowDays int) error
}

type reportSender interface {
	SendDigest(report *models.DigestReport) error
}

type clusterer interface {
	Cluster(ctx context.Context, videos []*models.Video, k int) ([]*models.ClusteredVideo, error)
}

// Agent implements the scheduler.Job interface.
type Agent struct {
	config  *config.Config
	source  videoSource
	engine  clusterer
	sender  reportSender
	tracker *storage.ReportTracker
}

func NewAgent(cfg *config.Config) *Agent {
	return &Agent{config: cfg}
}

func (a *Agent) Name() string {
	return "Watch-Time Digest"
}

func (a *Agent) Initialize() error {
	log.Printf("Initializing %s...", a.Name())

	if err := a.config.ValidateEmail(); err != nil {
		return fmt.Errorf("digest requires email settings: %w", err)
	}

	if a.source == nil {
		client, err := youtube.NewClient(&a.config.YouTube)
		if err != nil {
			return fmt.Errorf("failed to create YouTube client: %w", err)
		}
		a.source = client
		log.Println("YouTube client initialized")
	}

	if a.engine == nil {
		embedder, err := ai.NewGeminiEmbedder(a.config)
		if err != nil {
			return fmt.Errorf("failed to create embedder: %w", err)
		}
		a.engine = cluster.New(embedder)
		log.Println("Clustering engine initialized")
	}

	if a.sender == nil {
		a.sender = email.NewSender(&a.config.Email)
		log.Println("Email sender initialized")
	}

	if a.tracker == nil {
		// Skip videos already covered within the last 30 days
		tracker, err := storage.NewReportTracker("data", 30*24*time.Hour)
		if err != nil {
			return fmt.Errorf("failed to create report tracker: %w", err)
		}
		a.tracker = tracker
		log.Printf("Report tracker initialized (%d videos tracked)", tracker.Count())
	}

	return nil
}

func (a *Agent) RunOnce(ctx context.Context, events *scheduler.JobEvents) error {
	startTime := time.Now()

	log.Println("Fetching channel uploads...")
	videos, err := a.source.FetchChannelUploads(ctx, int64(a.config.Analysis.MaxVideos))
	if err != nil {
		return fmt.Errorf("failed to fetch channel uploads: %w", err)
	}

	if len(videos) == 0 {
		log.Println("No uploads found, nothing to digest")
		reportSuccess(events, Metrics{}, time.Since(startTime))
		return nil
	}

	// Retention data makes the ranking sharper but is not required; a
	// failed analytics query degrades to fallback ranking.
	if err := a.source.AnnotateAverageViewDurations(ctx, videos, a.config.Analysis.AnalyticsWindowDays); err != nil {
		log.Printf("Warning: analytics unavailable, using fallback ranking: %v", err)
		reportPartialFailure(events, err, time.Since(startTime))
	}

	ranked := ranker.Rank(videos)

	var analyses []*models.Analysis
	var reportedIDs []string
	skipped := 0
	for _, rv := range ranked {
		if len(analyses) >= maxAnalyzedPerDigest {
			break
		}
		if a.tracker.WasReported(rv.Video.ID) {
			skipped++
			continue
		}
		analyses = append(analyses, analyzer.Analyze(rv.Video))
		reportedIDs = append(reportedIDs, rv.Video.ID)
	}

	log.Printf("Ranked %d videos, analyzing %d (%d already reported)", len(ranked), len(analyses), skipped)

	var playlists []models.Playlist
	clustered, err := a.engine.Cluster(ctx, videos, a.config.Analysis.Clusters)
	if err != nil {
		log.Printf("Warning: clustering failed, digest will omit playlists: %v", err)
		reportPartialFailure(events, err, time.Since(startTime))
	} else {
		playlists = cluster.Playlists(clustered, a.config.Analysis.PlaylistSize)
	}

	if len(analyses) == 0 {
		log.Println("Every ranked video was already reported, skipping email")
		reportSuccess(events, Metrics{VideosFound: len(videos), Skipped: skipped, Playlists: len(playlists)}, time.Since(startTime))
		return nil
	}

	report := &models.DigestReport{
		Date:      time.Now(),
		Ranked:    ranked,
		Analyses:  analyses,
		Playlists: playlists,
		Total:     len(videos),
	}

	log.Printf("Sending digest with %d analyses and %d playlists", len(analyses), len(playlists))
	if err := a.sender.SendDigest(report); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}

	if err := a.tracker.MarkReported(reportedIDs); err != nil {
		log.Printf("Warning: failed to mark videos as reported: %v", err)
	}

	metrics := Metrics{
		VideosFound: len(videos),
		Analyzed:    len(analyses),
		Skipped:     skipped,
		Playlists:   len(playlists),
	}
	reportSuccess(events, metrics, time.Since(startTime))

	log.Printf("Digest complete: %s", metrics.GetSummary())
	return nil
}

func reportSuccess(events *scheduler.JobEvents, metrics Metrics, duration time.Duration) {
	if events != nil && events.OnSuccess != nil {
		events.OnSuccess(metrics, duration)
	}
}

func reportPartialFailure(events *scheduler.JobEvents, err error, duration time.Duration) {
	if events != nil && events.OnPartialFailure != nil {
		events.OnPartialFailure(err, duration)
	}
}
