package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ReportTracker persists the IDs of videos already covered by a digest so
// consecutive digests do not repeat the same optimization advice. Entries
// expire after maxAge, at which point a video becomes eligible again.
type ReportTracker struct {
	filePath    string
	reportedIDs map[string]time.Time
	mu          sync.RWMutex
	maxAge      time.Duration
}

type reportedVideo struct {
	VideoID    string    `json:"video_id"`
	ReportedAt time.Time `json:"reported_at"`
}

func NewReportTracker(dataDir string, maxAge time.Duration) (*ReportTracker, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	tracker := &ReportTracker{
		filePath:    filepath.Join(dataDir, "reported_videos.json"),
		reportedIDs: make(map[string]time.Time),
		maxAge:      maxAge,
	}

	if err := tracker.load(); err != nil {
		return nil, fmt.Errorf("failed to load report tracker data: %w", err)
	}
	tracker.cleanup()

	return tracker, nil
}

// WasReported checks whether a video appeared in a recent digest.
func (rt *ReportTracker) WasReported(videoID string) bool {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	reportedAt, exists := rt.reportedIDs[videoID]
	if !exists {
		return false
	}
	return time.Since(reportedAt) < rt.maxAge
}

// MarkReported records a batch of video IDs as covered by a digest.
func (rt *ReportTracker) MarkReported(videoIDs []string) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	now := time.Now()
	for _, videoID := range videoIDs {
		rt.reportedIDs[videoID] = now
	}
	return rt.save()
}

// Count returns the number of tracked videos.
func (rt *ReportTracker) Count() int {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return len(rt.reportedIDs)
}

func (rt *ReportTracker) cleanup() {
	cutoff := time.Now().Add(-rt.maxAge)
	for videoID, reportedAt := range rt.reportedIDs {
		if reportedAt.Before(cutoff) {
			delete(rt.reportedIDs, videoID)
		}
	}
}

func (rt *ReportTracker) load() error {
	data, err := os.ReadFile(rt.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // First run, nothing tracked yet
		}
		return fmt.Errorf("failed to read tracker file: %w", err)
	}

	var reported []reportedVideo
	if err := json.Unmarshal(data, &reported); err != nil {
		return fmt.Errorf("failed to parse tracker file: %w", err)
	}

	for _, rv := range reported {
		rt.reportedIDs[rv.VideoID] = rv.ReportedAt
	}
	return nil
}

func (rt *ReportTracker) save() error {
	reported := make([]reportedVideo, 0, len(rt.reportedIDs))
	for videoID, reportedAt := range rt.reportedIDs {
		reported = append(reported, reportedVideo{VideoID: videoID, ReportedAt: reportedAt})
	}

	file, err := os.Create(rt.filePath)
	if err != nil {
		return fmt.Errorf("failed to create tracker file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reported)
}
