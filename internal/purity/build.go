package purity

import (
	"fmt"

	"github.com/drakos74/free-cluster/internal/model"
)

// Build counts the ground-truth labels within each cluster.
// Every cluster distribution carries all distinct labels, including those with zero count.
func Build(labels []model.Label, assignments []model.ClusterID) (model.ClusterReport, error) {
	if len(labels) != len(assignments) {
		return nil, fmt.Errorf("%d labels for %d assignments: %w", len(labels), len(assignments), ShapeMismatchErr)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no samples to count: %w", ShapeMismatchErr)
	}

	known := model.Unique(labels)
	report := make(model.ClusterReport)
	for _, c := range model.UniqueClusters(assignments) {
		report[c] = model.NewDistribution(known)
	}

	for i, l := range labels {
		report[assignments[i]][l]++
	}
	return report, nil
}
