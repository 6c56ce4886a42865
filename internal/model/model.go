package model

import (
	"sort"
	"strconv"
)

// Label is the ground-truth category of a sample e.g. a playlist identifier.
type Label string

// ClusterID is the identifier assigned to a sample by a partitioner.
// Identifiers are opaque and need not be contiguous.
type ClusterID int

func (c ClusterID) String() string {
	return strconv.Itoa(int(c))
}

// SortLabels sorts the given labels in place and returns them.
func SortLabels(ll []Label) []Label {
	sort.Slice(ll, func(i, j int) bool {
		return ll[i] < ll[j]
	})
	return ll
}

// Unique returns the distinct labels in ascending order.
func Unique(labels []Label) []Label {
	set := make(map[Label]struct{})
	for _, l := range labels {
		set[l] = struct{}{}
	}
	ll := make([]Label, 0, len(set))
	for l := range set {
		ll = append(ll, l)
	}
	return SortLabels(ll)
}

// UniqueClusters returns the distinct cluster ids in ascending order.
func UniqueClusters(assignments []ClusterID) []ClusterID {
	set := make(map[ClusterID]struct{})
	for _, c := range assignments {
		set[c] = struct{}{}
	}
	cc := make([]ClusterID, 0, len(set))
	for c := range set {
		cc = append(cc, c)
	}
	sort.Slice(cc, func(i, j int) bool {
		return cc[i] < cc[j]
	})
	return cc
}

// ClusterReport holds the label distribution of every cluster.
type ClusterReport map[ClusterID]Distribution

// Clusters returns the cluster ids of the report in ascending order.
func (r ClusterReport) Clusters() []ClusterID {
	cc := make([]ClusterID, 0, len(r))
	for c := range r {
		cc = append(cc, c)
	}
	sort.Slice(cc, func(i, j int) bool {
		return cc[i] < cc[j]
	})
	return cc
}

// Total returns the number of samples across all clusters.
func (r ClusterReport) Total() int {
	t := 0
	for _, d := range r {
		t += d.Total()
	}
	return t
}

// Majority is the resolved majority label of a cluster, along with the cluster distribution.
type Majority struct {
	Label        Label        `json:"label"`
	Distribution Distribution `json:"distribution"`
}

// MajorityMapping maps each cluster to its majority label.
type MajorityMapping map[ClusterID]Majority

// Clusters returns the cluster ids of the mapping in ascending order.
func (m MajorityMapping) Clusters() []ClusterID {
	cc := make([]ClusterID, 0, len(m))
	for c := range m {
		cc = append(cc, c)
	}
	sort.Slice(cc, func(i, j int) bool {
		return cc[i] < cc[j]
	})
	return cc
}

// MergedMapping holds one combined distribution per distinct majority label.
type MergedMapping map[Label]Distribution

// Labels returns the majority labels of the mapping in ascending order.
func (m MergedMapping) Labels() []Label {
	ll := make([]Label, 0, len(m))
	for l := range m {
		ll = append(ll, l)
	}
	return SortLabels(ll)
}

// Total returns the number of samples across all groups.
func (m MergedMapping) Total() int {
	t := 0
	for _, d := range m {
		t += d.Total()
	}
	return t
}

// Term is a single p*log2(p) component of a group entropy.
type Term struct {
	Label Label   `json:"label"`
	P     float64 `json:"p"`
	Value float64 `json:"value"`
}

// Score is the purity and entropy of a merged group.
type Score struct {
	// Terms are the raw, un-summed p*log2(p) components for each label with a non-zero count.
	Terms   []Term  `json:"terms"`
	Entropy float64 `json:"entropy"`
	Purity  float64 `json:"purity"`
	Size    int     `json:"size"`
}

// RawTerms returns only the values of the entropy terms.
func (s Score) RawTerms() []float64 {
	vv := make([]float64, len(s.Terms))
	for i, t := range s.Terms {
		vv[i] = t.Value
	}
	return vv
}

// EntropyReport maps each merged group to its score.
type EntropyReport map[Label]Score

// Labels returns the labels of the report in ascending order.
func (r EntropyReport) Labels() []Label {
	ll := make([]Label, 0, len(r))
	for l := range r {
		ll = append(ll, l)
	}
	return SortLabels(ll)
}
