package purity

import (
	"fmt"
	gomath "math"

	"gonum.org/v1/gonum/stat"

	"github.com/drakos74/free-cluster/internal/math"
	"github.com/drakos74/free-cluster/internal/model"
)

// Score computes the entropy terms, the shannon entropy and the purity of each merged group.
func Score(merged model.MergedMapping) (model.EntropyReport, error) {
	report := make(model.EntropyReport, len(merged))
	for _, group := range merged.Labels() {
		s, err := score(merged[group])
		if err != nil {
			return nil, fmt.Errorf("could not score group '%s': %w", group, err)
		}
		report[group] = s
	}
	return report, nil
}

func score(d model.Distribution) (model.Score, error) {
	labels := d.Labels()
	counts := make([]int, len(labels))
	max := 0
	for i, l := range labels {
		counts[i] = d[l]
		if counts[i] > max {
			max = counts[i]
		}
	}

	pp, ok := math.Probabilities(counts)
	if !ok {
		return model.Score{}, fmt.Errorf("distribution %s sums up to 0: %w", d, DivisionByZeroErr)
	}

	terms := make([]model.Term, 0, len(labels))
	for i, l := range labels {
		if counts[i] == 0 {
			continue
		}
		terms = append(terms, model.Term{
			Label: l,
			P:     pp[i],
			Value: math.Plog2p(pp[i]),
		})
	}

	total := d.Total()
	return model.Score{
		Terms: terms,
		// stat.Entropy works with the natural logarithm
		Entropy: gomath.Max(0, stat.Entropy(pp)/gomath.Ln2),
		Purity:  float64(max) / float64(total),
		Size:    total,
	}, nil
}

// Entropy reduces raw p*log2(p) terms to the shannon entropy in bits.
func Entropy(terms []float64) float64 {
	h := 0.0
	for _, t := range terms {
		h -= t
	}
	return gomath.Max(0, h)
}
