package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribution_Add(t *testing.T) {

	type test struct {
		a, b  Distribution
		sum   Distribution
		total int
	}

	tests := map[string]test{
		"disjoint-counts": {
			a:     Distribution{"A": 2, "B": 0},
			b:     Distribution{"A": 0, "B": 3},
			sum:   Distribution{"A": 2, "B": 3},
			total: 5,
		},
		"overlapping-counts": {
			a:     Distribution{"A": 1, "B": 1},
			b:     Distribution{"A": 4, "B": 2},
			sum:   Distribution{"A": 5, "B": 3},
			total: 8,
		},
		"empty-operand": {
			a:     Distribution{"A": 1, "B": 1},
			b:     Distribution{},
			sum:   Distribution{"A": 1, "B": 1},
			total: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := tt.a.Copy()
			sum := tt.a.Add(tt.b)
			assert.Equal(t, tt.sum, sum)
			assert.Equal(t, tt.total, sum.Total())
			// operands stay untouched
			assert.Equal(t, a, tt.a)
		})
	}
}

func TestDistribution_String(t *testing.T) {
	d := Distribution{"B": 0, "A": 2, "C": 1}
	assert.Equal(t, "{A:2 B:0 C:1}", d.String())
	assert.Equal(t, []Label{"A", "B", "C"}, d.Labels())
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []Label{"a", "b", "c"}, Unique([]Label{"c", "a", "b", "a", "c"}))
	assert.Equal(t, []ClusterID{-1, 0, 7}, UniqueClusters([]ClusterID{7, 0, -1, 0}))
}

func TestDataset_Select(t *testing.T) {

	ds := Dataset{
		Header: []string{"playlist", "tempo", "energy", "valence"},
		Samples: []Sample{
			{Label: "a", Features: []float64{1, 2, 3}},
			{Label: "b", Features: []float64{4, 5, 6}},
		},
	}
	require.NoError(t, ds.Validate())

	type test struct {
		indices []int
		x       [][]float64
		names   []string
		err     bool
	}

	tests := map[string]test{
		"all": {
			x:     [][]float64{{1, 2, 3}, {4, 5, 6}},
			names: []string{"tempo", "energy", "valence"},
		},
		"subset": {
			indices: []int{2, 0},
			x:       [][]float64{{3, 1}, {6, 4}},
			names:   []string{"valence", "tempo"},
		},
		"out-of-range": {
			indices: []int{3},
			err:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			x, names, err := ds.Select(tt.indices...)
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.x, x)
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestDataset_Validate(t *testing.T) {
	ds := Dataset{
		Header: []string{"playlist", "tempo"},
		Samples: []Sample{
			{Label: "a", Features: []float64{1}},
			{Label: "b", Features: []float64{4, 5}},
		},
	}
	assert.Error(t, ds.Validate())
	assert.Error(t, Dataset{}.Validate())
}

func TestDataset_Shuffle(t *testing.T) {
	ds := Dataset{Header: []string{"label", "x"}}
	for i := 0; i < 50; i++ {
		ds.Samples = append(ds.Samples, Sample{
			Label:    Label(string(rune('a' + i%5))),
			Features: []float64{float64(i)},
		})
	}

	shuffled := ds.Shuffle(rand.NewSource(42))
	again := ds.Shuffle(rand.NewSource(42))

	assert.Equal(t, shuffled, again)
	assert.Equal(t, ds.Size(), shuffled.Size())
	assert.ElementsMatch(t, ds.Samples, shuffled.Samples)
	// the source dataset keeps its order
	for i, s := range ds.Samples {
		assert.Equal(t, float64(i), s.Features[0])
	}
	// labels and features travel together
	for _, s := range shuffled.Samples {
		assert.Equal(t, Label(string(rune('a'+int(s.Features[0])%5))), s.Label)
	}
}
