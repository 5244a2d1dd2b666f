package cluster

import "math"

// agglomerate runs bottom-up hierarchical clustering with average linkage
// over Euclidean distance, merging the closest pair of clusters until k
// remain. Returned labels are in [0, k), numbered by each cluster's
// first-appearing member index so that output is deterministic for fixed
// input vectors.
func agglomerate(vectors [][]float32, k int) []int {
	n := len(vectors)
	if k >= n {
		labels := make([]int, n)
		for i := range labels {
			labels[i] = i
		}
		return labels
	}

	// Pairwise point distances, computed once.
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := i + 1; j < n; j++ {
			d := euclidean(vectors[i], vectors[j])
			dist[i][j] = d
		}
	}
	pointDist := func(i, j int) float64 {
		if i > j {
			i, j = j, i
		}
		return dist[i][j]
	}

	// Each cluster is a list of member point indices.
	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}

	linkage := func(a, b []int) float64 {
		sum := 0.0
		for _, i := range a {
			for _, j := range b {
				sum += pointDist(i, j)
			}
		}
		return sum / float64(len(a)*len(b))
	}

	for len(clusters) > k {
		bestA, bestB := 0, 1
		best := math.Inf(1)
		for a := 0; a < len(clusters); a++ {
			for b := a + 1; b < len(clusters); b++ {
				if d := linkage(clusters[a], clusters[b]); d < best {
					best = d
					bestA, bestB = a, b
				}
			}
		}

		clusters[bestA] = append(clusters[bestA], clusters[bestB]...)
		clusters = append(clusters[:bestB], clusters[bestB+1:]...)
	}

	// Number clusters by their smallest member index for stable labels.
	order := make([]int, len(clusters))
	for i := range clusters {
		order[i] = i
	}
	minMember := func(c []int) int {
		m := c[0]
		for _, p := range c {
			if p < m {
				m = p
			}
		}
		return m
	}
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if minMember(clusters[order[j]]) < minMember(clusters[order[i]]) {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	labels := make([]int, n)
	for rank, idx := range order {
		for _, p := range clusters[idx] {
			labels[p] = rank
		}
	}
	return labels
}

func euclidean(a, b []float32) float64 {
	sum := 0.0
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
