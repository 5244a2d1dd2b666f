package digest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AnmolBudhewar8995/watchtime-booster/internal/models"
	"github.com/AnmolBudhewar8995/watchtime-booster/shared/config"
	"github.com/AnmolBudhewar8995/watchtime-booster/shared/storage"
)

type fakeSource struct {
	videos       []*models.Video
	analyticsErr error
}

func (f *fakeSource) FetchChannelUploads(_ context.Context, _ int64) ([]*models.Video, error) {
	return f.videos, nil
}

func (f *fakeSource) AnnotateAverageViewDurations(_ context.Context, videos []*models.Video, _ int) error {
	if f.analyticsErr != nil {
		return f.analyticsErr
	}
	for _, v := range videos {
		v.AvgViewDuration = float64(v.DurationSeconds) * 0.4
	}
	return nil
}

type fakeSender struct {
	sent []*models.DigestReport
}

func (f *fakeSender) SendDigest(report *models.DigestReport) error {
	f.sent = append(f.sent, report)
	return nil
}

type fakeClusterer struct {
	err error
}

func (f *fakeClusterer) Cluster(_ context.Context, videos []*models.Video, k int) ([]*models.ClusteredVideo, error) {
	if f.err != nil {
		return nil, f.err
	}
	clustered := make([]*models.ClusteredVideo, len(videos))
	for i, v := range videos {
		clustered[i] = &models.ClusteredVideo{Video: v, Cluster: i % k}
	}
	return clustered, nil
}

func testAgent(t *testing.T, source *fakeSource, engine *fakeClusterer, sender *fakeSender) *Agent {
	t.Helper()

	tracker, err := storage.NewReportTracker(t.TempDir(), 30*24*time.Hour)
	if err != nil {
		t.Fatalf("NewReportTracker failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Analysis.MaxVideos = 50
	cfg.Analysis.Clusters = 2
	cfg.Analysis.PlaylistSize = 5
	cfg.Analysis.AnalyticsWindowDays = 30

	return &Agent{
		config:  cfg,
		source:  source,
		engine:  engine,
		sender:  sender,
		tracker: tracker,
	}
}

func testVideos() []*models.Video {
	return []*models.Video{
		{ID: "a", Title: "Cooking pasta the easy way tonight", DurationSeconds: 600, Views: 50000, Likes: 1000},
		{ID: "b", Title: "Gaming highlights from the weekend", DurationSeconds: 300, Views: 2000, Likes: 40},
		{ID: "c", Title: "Travel vlog across three countries", DurationSeconds: 1200, Views: 800, Likes: 10},
	}
}

func TestAgentName(t *testing.T) {
	agent := NewAgent(&config.Config{})
	if name := agent.Name(); name != "Watch-Time Digest" {
		t.Errorf("Name() = %s, want Watch-Time Digest", name)
	}
}

func TestRunOnceSendsDigest(t *testing.T) {
	sender := &fakeSender{}
	agent := testAgent(t, &fakeSource{videos: testVideos()}, &fakeClusterer{}, sender)

	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d digests, want 1", len(sender.sent))
	}

	report := sender.sent[0]
	if report.Total != 3 {
		t.Errorf("Total = %d, want 3", report.Total)
	}
	if len(report.Analyses) != 3 {
		t.Errorf("analyzed %d videos, want 3", len(report.Analyses))
	}
	if len(report.Playlists) == 0 {
		t.Error("expected playlist suggestions in the digest")
	}
	if report.Ranked[0].Mode != models.RankModeRetentionGap {
		t.Errorf("mode = %s, want retention_gap with analytics data", report.Ranked[0].Mode)
	}
}

func TestRunOnceSkipsReportedVideos(t *testing.T) {
	sender := &fakeSender{}
	agent := testAgent(t, &fakeSource{videos: testVideos()}, &fakeClusterer{}, sender)

	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	// Every video was covered by the first digest, so the second sends nothing.
	if len(sender.sent) != 1 {
		t.Errorf("sent %d digests, want 1 (second run has nothing new)", len(sender.sent))
	}
}

func TestRunOnceAnalyticsFailureDegradesToFallback(t *testing.T) {
	sender := &fakeSender{}
	source := &fakeSource{videos: testVideos(), analyticsErr: errors.New("quota exceeded")}
	agent := testAgent(t, source, &fakeClusterer{}, sender)

	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d digests, want 1", len(sender.sent))
	}
	if sender.sent[0].Ranked[0].Mode != models.RankModeFallback {
		t.Errorf("mode = %s, want fallback without analytics data", sender.sent[0].Ranked[0].Mode)
	}
}

func TestRunOnceClusteringFailureOmitsPlaylists(t *testing.T) {
	sender := &fakeSender{}
	agent := testAgent(t, &fakeSource{videos: testVideos()}, &fakeClusterer{err: errors.New("embedder down")}, sender)

	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatalf("RunOnce should not fail on clustering errors: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d digests, want 1", len(sender.sent))
	}
	if len(sender.sent[0].Playlists) != 0 {
		t.Errorf("expected no playlists, got %d", len(sender.sent[0].Playlists))
	}
}

func TestMetricsGetSummary(t *testing.T) {
	tests := []struct {
		name     string
		metrics  Metrics
		expected string
	}{
		{
			name:     "All zeros",
			metrics:  Metrics{},
			expected: "found 0 videos, analyzed 0, skipped 0 already reported, suggested 0 playlists",
		},
		{
			name:     "Typical run",
			metrics:  Metrics{VideosFound: 50, Analyzed: 10, Skipped: 5, Playlists: 8},
			expected: "found 50 videos, analyzed 10, skipped 5 already reported, suggested 8 playlists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metrics.GetSummary(); got != tt.expected {
				t.Errorf("GetSummary() = %s, want %s", got, tt.expected)
			}
		})
	}
}
