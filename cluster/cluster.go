// Package cluster groups videos into semantic clusters from text embeddings
// of their titles and descriptions, for playlist suggestion.
package cluster

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/AnmolBudhewar8995/watchtime-booster/internal/models"
)

// Embedder produces one fixed-dimension dense vector per input text.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Engine clusters a batch of videos. The embedder is injected so tests can
// substitute a deterministic stub for the remote model.
type Engine struct {
	embedder Embedder
}

func New(embedder Embedder) *Engine {
	return &Engine{embedder: embedder}
}

// Cluster assigns every video a label in [0, K') where K' = min(k, len(videos)).
// A batch smaller than k silently reduces the effective cluster count; no
// error is raised. Labels are numbered by first appearance in input order, so
// results are stable for fixed embeddings.
func (e *Engine) Cluster(ctx context.Context, videos []*models.Video, k int) ([]*models.ClusteredVideo, error) {
	if len(videos) == 0 {
		return nil, nil
	}
	if k < 1 {
		k = 1
	}
	if k > len(videos) {
		k = len(videos)
	}

	texts := make([]string, len(videos))
	for i, v := range videos {
		texts[i] = strings.TrimSpace(v.Title + " " + v.Description)
	}

	embeddings, err := e.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed video texts: %w", err)
	}
	if len(embeddings) != len(videos) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d videos", len(embeddings), len(videos))
	}

	labels := agglomerate(embeddings, k)

	clustered := make([]*models.ClusteredVideo, len(videos))
	for i, v := range videos {
		clustered[i] = &models.ClusteredVideo{Video: v, Cluster: labels[i]}
	}
	return clustered, nil
}

// Playlists groups clustered videos by label and returns, per cluster, the
// top-K member IDs by view count. Clusters are emitted in label order.
func Playlists(clustered []*models.ClusteredVideo, topPerCluster int) []models.Playlist {
	if topPerCluster < 1 {
		topPerCluster = 1
	}

	byCluster := make(map[int][]*models.ClusteredVideo)
	var labels []int
	for _, cv := range clustered {
		if _, seen := byCluster[cv.Cluster]; !seen {
			labels = append(labels, cv.Cluster)
		}
		byCluster[cv.Cluster] = append(byCluster[cv.Cluster], cv)
	}
	sort.Ints(labels)

	playlists := make([]models.Playlist, 0, len(labels))
	for _, label := range labels {
		members := byCluster[label]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Video.Views > members[j].Video.Views
		})

		n := topPerCluster
		if n > len(members) {
			n = len(members)
		}
		ids := make([]string, 0, n)
		for _, cv := range members[:n] {
			ids = append(ids, cv.Video.ID)
		}
		playlists = append(playlists, models.Playlist{Cluster: label, VideoIDs: ids})
	}
	return playlists
}
