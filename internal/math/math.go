package math

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Format formats a float based on the given precision
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// FormatP formats a float with the given number of decimals.
func FormatP(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

func ToFloat(ii []int) []float64 {
	ff := make([]float64, len(ii))
	for f, i := range ii {
		ff[f] = float64(i)
	}
	return ff
}

// Probabilities normalises the given counts so that they sum up to 1.
// returns false if the counts sum up to 0.
func Probabilities(counts []int) ([]float64, bool) {
	pp := ToFloat(counts)
	total := floats.Sum(pp)
	if total == 0 {
		return pp, false
	}
	floats.Scale(1/total, pp)
	return pp, true
}

// Plog2p returns the p*log2(p) term of a shannon entropy sum.
// NOTE : p = 0 contributes 0 instead of NaN
func Plog2p(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return p * math.Log2(p)
}
