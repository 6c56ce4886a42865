package model

import (
	"fmt"
	"strings"
)

// Distribution counts the occurrences of each label.
// All known labels are present as keys, even with a zero count.
type Distribution map[Label]int

// NewDistribution creates a distribution with a zero count for each of the given labels.
func NewDistribution(labels []Label) Distribution {
	d := make(Distribution, len(labels))
	for _, l := range labels {
		d[l] = 0
	}
	return d
}

// Labels returns the labels of the distribution in ascending order.
func (d Distribution) Labels() []Label {
	ll := make([]Label, 0, len(d))
	for l := range d {
		ll = append(ll, l)
	}
	return SortLabels(ll)
}

// Total returns the sum of all counts.
func (d Distribution) Total() int {
	t := 0
	for _, c := range d {
		t += c
	}
	return t
}

// Copy creates an independent copy of the distribution.
func (d Distribution) Copy() Distribution {
	c := make(Distribution, len(d))
	for l, n := range d {
		c[l] = n
	}
	return c
}

// Add returns the element-wise sum of the two distributions.
// Neither of the operands is modified.
func (d Distribution) Add(other Distribution) Distribution {
	sum := d.Copy()
	for l, n := range other {
		sum[l] += n
	}
	return sum
}

// String renders the distribution in label order e.g. {A:2 B:0}
func (d Distribution) String() string {
	parts := make([]string, 0, len(d))
	for _, l := range d.Labels() {
		parts = append(parts, fmt.Sprintf("%s:%d", l, d[l]))
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, " "))
}
