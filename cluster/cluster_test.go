package cluster

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/AnmolBudhewar8995/watchtime-booster/internal/models"
)

// stubEmbedder maps texts to fixed vectors by keyword, so same-topic videos
// land near each other without a remote model.
type stubEmbedder struct {
	err error
}

func (s *stubEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		lower := strings.ToLower(text)
		switch {
		case strings.Contains(lower, "cooking"):
			vectors[i] = []float32{1, 0, 0}
		case strings.Contains(lower, "gaming"):
			vectors[i] = []float32{0, 1, 0}
		default:
			vectors[i] = []float32{0, 0, 1}
		}
		// Nudge by index so no two vectors are identical.
		vectors[i] = append(vectors[i], float32(i)*0.001)
	}
	return vectors, nil
}

func video(id, title string, views int64) *models.Video {
	return &models.Video{ID: id, Title: title, Views: views}
}

func TestClusterGroupsSameTopic(t *testing.T) {
	engine := New(&stubEmbedder{})
	videos := []*models.Video{
		video("c1", "Cooking pasta at home", 100),
		video("g1", "Gaming highlights ranked", 500),
		video("c2", "Cooking the perfect steak", 300),
		video("g2", "Gaming tutorial for beginners", 200),
	}

	clustered, err := engine.Cluster(context.Background(), videos, 2)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}

	labels := make(map[string]int)
	for _, cv := range clustered {
		labels[cv.Video.ID] = cv.Cluster
	}

	// Assert stability properties, not exact label values.
	if labels["c1"] != labels["c2"] {
		t.Errorf("cooking videos split across clusters %d and %d", labels["c1"], labels["c2"])
	}
	if labels["g1"] != labels["g2"] {
		t.Errorf("gaming videos split across clusters %d and %d", labels["g1"], labels["g2"])
	}
	if labels["c1"] == labels["g1"] {
		t.Error("cooking and gaming videos landed in the same cluster")
	}

	for _, cv := range clustered {
		if cv.Cluster < 0 || cv.Cluster >= 2 {
			t.Errorf("label %d for %s outside [0, 2)", cv.Cluster, cv.Video.ID)
		}
	}
}

func TestClusterReducesK(t *testing.T) {
	engine := New(&stubEmbedder{})
	videos := []*models.Video{
		video("a", "Cooking pasta", 10),
		video("b", "Gaming clips", 20),
		video("c", "Travel vlog", 30),
	}

	// K larger than the batch silently reduces to the batch size.
	clustered, err := engine.Cluster(context.Background(), videos, 8)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	if len(clustered) != 3 {
		t.Fatalf("got %d results, want 3", len(clustered))
	}

	seen := make(map[int]bool)
	for _, cv := range clustered {
		if cv.Cluster < 0 || cv.Cluster >= 3 {
			t.Errorf("label %d outside [0, 3)", cv.Cluster)
		}
		seen[cv.Cluster] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 singleton clusters, got %d distinct labels", len(seen))
	}
}

func TestClusterEmptyBatch(t *testing.T) {
	engine := New(&stubEmbedder{})
	clustered, err := engine.Cluster(context.Background(), nil, 8)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	if len(clustered) != 0 {
		t.Errorf("got %d results for empty batch", len(clustered))
	}
}

func TestClusterEmbedderError(t *testing.T) {
	engine := New(&stubEmbedder{err: errors.New("quota exceeded")})
	_, err := engine.Cluster(context.Background(), []*models.Video{video("a", "t", 1)}, 2)
	if err == nil {
		t.Fatal("expected error from failing embedder")
	}
}

func TestPlaylists(t *testing.T) {
	clustered := []*models.ClusteredVideo{
		{Video: video("a", "", 100), Cluster: 0},
		{Video: video("b", "", 500), Cluster: 0},
		{Video: video("c", "", 300), Cluster: 0},
		{Video: video("d", "", 50), Cluster: 1},
	}

	playlists := Playlists(clustered, 2)

	if len(playlists) != 2 {
		t.Fatalf("got %d playlists, want 2", len(playlists))
	}
	if playlists[0].Cluster != 0 || playlists[1].Cluster != 1 {
		t.Errorf("playlists not in label order: %d, %d", playlists[0].Cluster, playlists[1].Cluster)
	}

	// Cluster 0 top-2 by views: b (500), c (300).
	want := []string{"b", "c"}
	if len(playlists[0].VideoIDs) != 2 {
		t.Fatalf("cluster 0 playlist has %d videos, want 2", len(playlists[0].VideoIDs))
	}
	for i, id := range want {
		if playlists[0].VideoIDs[i] != id {
			t.Errorf("cluster 0 position %d = %s, want %s", i, playlists[0].VideoIDs[i], id)
		}
	}

	if len(playlists[1].VideoIDs) != 1 || playlists[1].VideoIDs[0] != "d" {
		t.Errorf("cluster 1 playlist = %v, want [d]", playlists[1].VideoIDs)
	}
}
