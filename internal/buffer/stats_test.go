package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Push(t *testing.T) {

	l := 1001

	type test struct {
		transform func(i int) float64
		avg       float64
		count     int
		stDev     float64
		variance  float64
		sum       float64
		min, max  float64
	}

	tests := map[string]test{
		"monotonically-increasing-+": {
			transform: func(i int) float64 {
				return float64(i)
			},
			avg:      float64(l / 2),
			count:    l,
			sum:      float64(l) * 500,
			stDev:    289,
			variance: 83500,
			min:      0,
			max:      1000,
		},
		"monotonically-increasing-0": {
			transform: func(i int) float64 {
				return float64(-1*l/2) + float64(i)
			},
			avg:   0,
			count: l,
			sum:   0,
			// NOTE : these are the same as the one above
			stDev:    289,
			variance: 83500,
			min:      -500,
			max:      500,
		},
		"monotonically-decreasing--": {
			transform: func(i int) float64 {
				return -1 * float64(i)
			},
			avg:      -1 * float64(l/2),
			count:    l,
			sum:      -1 * float64(l) * 500,
			stDev:    289,
			variance: 83500,
			min:      -1000,
			max:      0,
		},
		"abs-+": {
			transform: func(i int) float64 {
				return math.Abs(-1*float64(l/2) + float64(i))
			},
			avg:   float64(l / 4),
			count: l,
			sum:   250500,
			// NOTE : these are half of the monotonical case
			stDev:    289 / 2,
			variance: 83500 / 4,
			min:      0,
			max:      500,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for i := 0; i < l; i++ {
				v := tt.transform(i)
				stats.Push(v)
			}
			assert.Equal(t, tt.avg, math.Round(stats.Avg()))
			assert.Equal(t, tt.count, stats.Count())
			assert.Equal(t, tt.sum, math.Round(stats.Sum()))
			assert.Equal(t, tt.stDev, math.Round(stats.StDev()))
			assert.Equal(t, tt.variance, math.Round(stats.Variance()))
			assert.Equal(t, tt.min, stats.Min())
			assert.Equal(t, tt.max, stats.Max())
		})
	}
}

func TestStats_Empty(t *testing.T) {
	stats := NewStats()
	assert.Equal(t, 0, stats.Count())
	assert.Equal(t, 0.0, stats.Variance())
	assert.Equal(t, 0.0, stats.StDev())
}

func TestStatsCollector_Push(t *testing.T) {
	sc := NewStatsCollector(2)
	assert.NoError(t, sc.Push(1, 10))
	assert.NoError(t, sc.Push(3, 30))
	assert.Error(t, sc.Push(1))

	assert.Equal(t, 2, sc.Size())
	assert.Equal(t, 2, sc.Dim())
	assert.Equal(t, 2.0, sc.Stats()[0].Avg())
	assert.Equal(t, 20.0, sc.Stats()[1].Avg())
	assert.Equal(t, 1.0, sc.Stats()[0].StDev())

	assert.Equal(t, 0, NewStatsCollector(0).Size())
}
