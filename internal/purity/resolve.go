package purity

import (
	"fmt"

	"github.com/drakos74/free-cluster/internal/model"
)

// Resolve returns the label with the highest count, along with the unchanged distribution.
// Ties are resolved in favour of the lowest label in lexical order.
func Resolve(distribution model.Distribution) (model.Label, model.Distribution, error) {
	if len(distribution) == 0 {
		return "", distribution, fmt.Errorf("no labels in distribution: %w", EmptyDistributionErr)
	}
	if distribution.Total() == 0 {
		return "", distribution, fmt.Errorf("no counts in distribution %s: %w", distribution, EmptyDistributionErr)
	}

	var majority model.Label
	max := -1
	// NOTE : labels come in ascending order, so a strict comparison keeps the first of the ties
	for _, l := range distribution.Labels() {
		if c := distribution[l]; c > max {
			max = c
			majority = l
		}
	}
	return majority, distribution, nil
}

// Majorities resolves the majority label of every cluster in the report.
func Majorities(report model.ClusterReport) (model.MajorityMapping, error) {
	mapping := make(model.MajorityMapping, len(report))
	for _, c := range report.Clusters() {
		label, distribution, err := Resolve(report[c])
		if err != nil {
			return nil, fmt.Errorf("could not resolve majority for cluster %d: %w", c, err)
		}
		mapping[c] = model.Majority{
			Label:        label,
			Distribution: distribution,
		}
	}
	return mapping, nil
}
