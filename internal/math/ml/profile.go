package ml

import (
	"fmt"

	"github.com/drakos74/free-cluster/internal/buffer"
	"github.com/drakos74/free-cluster/internal/model"
)

// Feature summarises one feature within a cluster.
type Feature struct {
	Avg   float64 `json:"avg"`
	StDev float64 `json:"stdev"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Cluster summarises the samples assigned to a cluster.
type Cluster struct {
	Size     int       `json:"size"`
	Features []Feature `json:"features"`
}

// Profile computes per-cluster feature statistics for the given partition.
func Profile(x [][]float64, assignments []model.ClusterID) (map[model.ClusterID]Cluster, error) {
	if len(x) != len(assignments) {
		return nil, fmt.Errorf("could not align data with assignments [ %d | %d ]", len(x), len(assignments))
	}

	collectors := make(map[model.ClusterID]*buffer.StatsCollector)
	for i, v := range x {
		c := assignments[i]
		if _, ok := collectors[c]; !ok {
			collectors[c] = buffer.NewStatsCollector(len(v))
		}
		if err := collectors[c].Push(v...); err != nil {
			return nil, fmt.Errorf("could not profile sample %d: %w", i, err)
		}
	}

	profile := make(map[model.ClusterID]Cluster, len(collectors))
	for c, sc := range collectors {
		features := make([]Feature, sc.Dim())
		for j, s := range sc.Stats() {
			features[j] = Feature{
				Avg:   s.Avg(),
				StDev: s.StDev(),
				Min:   s.Min(),
				Max:   s.Max(),
			}
		}
		profile[c] = Cluster{
			Size:     sc.Size(),
			Features: features,
		}
	}
	return profile, nil
}
