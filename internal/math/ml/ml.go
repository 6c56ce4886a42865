package ml

import (
	"fmt"

	"github.com/drakos74/free-cluster/internal/model"
)

// Partitioner assigns each sample to one of k clusters.
type Partitioner interface {
	Partition(x [][]float64, k int) ([]model.ClusterID, error)
}

// Seeded is a partitioner with a reproducible random initialisation.
type Seeded interface {
	Partitioner
	Reseed(seed int64)
}

// Fixed is a partitioner returning pre-computed assignments.
type Fixed []model.ClusterID

// Partition returns the fixed assignments, as long as they match the number of samples.
func (f Fixed) Partition(x [][]float64, k int) ([]model.ClusterID, error) {
	if len(f) != len(x) {
		return nil, fmt.Errorf("fixed assignments for %d samples, got %d", len(f), len(x))
	}
	assignments := make([]model.ClusterID, len(f))
	copy(assignments, f)
	return assignments, nil
}

// ClusterCount returns the number of clusters to ask for,
// as a multiple of the distinct labels, but no more than the number of samples.
func ClusterCount(labels []model.Label, factor int) (int, error) {
	if factor < 1 {
		return 0, fmt.Errorf("invalid cluster factor %d", factor)
	}
	if len(labels) == 0 {
		return 0, fmt.Errorf("no labels")
	}
	k := factor * len(model.Unique(labels))
	if k > len(labels) {
		k = len(labels)
	}
	return k, nil
}
