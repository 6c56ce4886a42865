package purity

import (
	"fmt"
	gomath "math"

	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/evaluation"

	"github.com/drakos74/free-cluster/internal/model"
)

// ClassScore holds the classification figures for a label,
// treating the majority label of each cluster as the prediction for its samples.
type ClassScore struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Evaluation is the outcome of mapping clusters to labels and scoring the result.
type Evaluation struct {
	Samples    int                        `json:"samples"`
	Labels     []model.Label              `json:"labels"`
	Clusters   model.ClusterReport        `json:"clusters"`
	Majorities model.MajorityMapping      `json:"majorities"`
	Merged     model.MergedMapping        `json:"merged"`
	Warning    *CoverageWarning           `json:"warning,omitempty"`
	Scores     model.EntropyReport        `json:"scores"`
	Entropy    float64                    `json:"entropy"`
	Purity     float64                    `json:"purity"`
	Accuracy   float64                    `json:"accuracy"`
	Classes    map[model.Label]ClassScore `json:"classes"`
	Confusion  evaluation.ConfusionMatrix `json:"confusion"`
}

// Evaluate runs the full scoring pipeline for the given ground-truth labels and cluster assignments.
func Evaluate(labels []model.Label, assignments []model.ClusterID) (*Evaluation, error) {
	clusters, err := Build(labels, assignments)
	if err != nil {
		return nil, fmt.Errorf("could not count labels: %w", err)
	}

	majorities, err := Majorities(clusters)
	if err != nil {
		return nil, err
	}

	merged := Merge(majorities)
	warning := Coverage(merged, labels)
	if warning != nil {
		log.Warn().
			Int("groups", warning.Groups).
			Int("labels", warning.Labels).
			Str("missing", fmt.Sprintf("%+v", warning.Missing)).
			Msg("not all labels recovered")
	}

	scores, err := Score(merged)
	if err != nil {
		return nil, fmt.Errorf("could not score merged groups: %w", err)
	}

	e := &Evaluation{
		Samples:    len(labels),
		Labels:     model.Unique(labels),
		Clusters:   clusters,
		Majorities: majorities,
		Merged:     merged,
		Warning:    warning,
		Scores:     scores,
		Classes:    make(map[model.Label]ClassScore),
	}
	e.summarise()

	log.Debug().
		Int("samples", e.Samples).
		Int("clusters", len(clusters)).
		Int("groups", len(merged)).
		Float64("entropy", e.Entropy).
		Float64("purity", e.Purity).
		Msg("evaluated clusters")

	return e, nil
}

// summarise computes the sample-weighted entropy and purity,
// and derives the classification figures from the confusion matrix.
func (e *Evaluation) summarise() {
	for _, group := range e.Scores.Labels() {
		s := e.Scores[group]
		w := float64(s.Size) / float64(e.Samples)
		e.Entropy += w * s.Entropy
		e.Purity += w * s.Purity
	}

	e.Confusion = Confusion(e.Merged)
	e.Accuracy = finite(evaluation.GetAccuracy(e.Confusion))
	for _, l := range e.Labels {
		class := string(l)
		e.Classes[l] = ClassScore{
			Precision: finite(evaluation.GetPrecision(class, e.Confusion)),
			Recall:    finite(evaluation.GetRecall(class, e.Confusion)),
			F1:        finite(evaluation.GetF1Score(class, e.Confusion)),
		}
	}
}

// Confusion translates the merged mapping into a confusion matrix
// of reference label to predicted (majority) label.
func Confusion(merged model.MergedMapping) evaluation.ConfusionMatrix {
	cm := make(evaluation.ConfusionMatrix)
	for _, predicted := range merged.Labels() {
		d := merged[predicted]
		for _, reference := range d.Labels() {
			if _, ok := cm[string(reference)]; !ok {
				cm[string(reference)] = make(map[string]int)
			}
			if c := d[reference]; c > 0 {
				cm[string(reference)][string(predicted)] += c
			}
		}
	}
	return cm
}

// finite replaces the undefined ratios e.g. precision of a label that is never predicted, with 0.
func finite(f float64) float64 {
	if gomath.IsNaN(f) || gomath.IsInf(f, 0) {
		return 0
	}
	return f
}
