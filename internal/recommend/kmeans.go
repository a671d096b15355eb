package recommend

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	kmeansRestarts = 10
	kmeansMaxIter  = 300
	kmeansSeed     = 42
)

// kMeans partitions points into k clusters with Lloyd's algorithm, running
// kmeansRestarts seeded initializations and keeping the assignment with the
// lowest inertia. The fixed seed makes cluster ids reproducible across runs
// on the same snapshot.
func kMeans(points [][]float64, k int) ([]int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("cluster count must be positive, got %d", k)
	}
	if len(points) < k {
		return nil, fmt.Errorf("need at least %d points to form %d clusters, got %d", k, k, len(points))
	}

	rng := rand.New(rand.NewSource(kmeansSeed))
	bestInertia := math.Inf(1)
	var best []int
	for restart := 0; restart < kmeansRestarts; restart++ {
		assign, inertia := lloyd(points, k, rng)
		if inertia < bestInertia {
			bestInertia = inertia
			best = assign
		}
	}
	return best, nil
}

func lloyd(points [][]float64, k int, rng *rand.Rand) ([]int, float64) {
	dim := len(points[0])
	centroids := initPlusPlus(points, k, rng)
	assign := make([]int, len(points))

	for iter := 0; iter < kmeansMaxIter; iter++ {
		changed := false
		for i, p := range points {
			c := nearest(p, centroids)
			if c != assign[i] {
				assign[i] = c
				changed = true
			}
		}

		counts := make([]int, k)
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, p := range points {
			c := assign[i]
			counts[c]++
			for d, v := range p {
				sums[c][d] += v
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// Reseat an empty cluster on a random point.
				copy(centroids[c], points[rng.Intn(len(points))])
				continue
			}
			for d := 0; d < dim; d++ {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
		if !changed && iter > 0 {
			break
		}
	}

	inertia := 0.0
	for i, p := range points {
		inertia += sqDist(p, centroids[assign[i]])
	}
	return assign, inertia
}

// initPlusPlus seeds centroids with the k-means++ weighting.
func initPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	first := make([]float64, len(points[0]))
	copy(first, points[rng.Intn(len(points))])
	centroids = append(centroids, first)

	dists := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := math.Inf(1)
			for _, c := range centroids {
				if sq := sqDist(p, c); sq < d {
					d = sq
				}
			}
			dists[i] = d
			total += d
		}
		next := 0
		if total > 0 {
			target := rng.Float64() * total
			for i, d := range dists {
				target -= d
				if target <= 0 {
					next = i
					break
				}
			}
		} else {
			next = rng.Intn(len(points))
		}
		c := make([]float64, len(points[next]))
		copy(c, points[next])
		centroids = append(centroids, c)
	}
	return centroids
}

func nearest(p []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for c, centroid := range centroids {
		if d := sqDist(p, centroid); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func sqDist(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
