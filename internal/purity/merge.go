package purity

import (
	"github.com/drakos74/free-cluster/internal/model"
)

// Merge combines the distributions of all clusters sharing the same majority label
// into a single distribution, by summing up the counts label by label.
func Merge(mapping model.MajorityMapping) model.MergedMapping {
	merged := make(model.MergedMapping)
	for _, c := range mapping.Clusters() {
		m := mapping[c]
		if current, ok := merged[m.Label]; ok {
			merged[m.Label] = current.Add(m.Distribution)
			continue
		}
		merged[m.Label] = m.Distribution.Copy()
	}
	return merged
}

// Coverage checks whether every ground-truth label became the majority of at least one cluster.
// It returns nil if all labels are covered.
func Coverage(merged model.MergedMapping, labels []model.Label) *CoverageWarning {
	known := model.Unique(labels)
	if len(merged) >= len(known) {
		return nil
	}
	missing := make([]model.Label, 0)
	for _, l := range known {
		if _, ok := merged[l]; !ok {
			missing = append(missing, l)
		}
	}
	return &CoverageWarning{
		Groups:  len(merged),
		Labels:  len(known),
		Missing: missing,
	}
}
