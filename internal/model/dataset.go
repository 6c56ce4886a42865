package model

import (
	"fmt"
	"math/rand"
)

// Sample is a single labeled feature vector.
type Sample struct {
	Label    Label     `json:"label"`
	Features []float64 `json:"features"`
}

// Dataset is an ordered set of samples.
// The first header entry names the label column, the rest name the features.
type Dataset struct {
	Header  []string `json:"header"`
	Samples []Sample `json:"samples"`
}

// Validate checks that every sample carries one feature per header column.
func (ds Dataset) Validate() error {
	if len(ds.Header) < 1 {
		return fmt.Errorf("missing header")
	}
	dim := len(ds.Header) - 1
	for i, s := range ds.Samples {
		if len(s.Features) != dim {
			return fmt.Errorf("sample %d has %d features instead of %d", i, len(s.Features), dim)
		}
	}
	return nil
}

// Size returns the number of samples.
func (ds Dataset) Size() int {
	return len(ds.Samples)
}

// Names returns the feature names.
func (ds Dataset) Names() []string {
	if len(ds.Header) == 0 {
		return []string{}
	}
	return ds.Header[1:]
}

// Labels returns the label vector.
func (ds Dataset) Labels() []Label {
	ll := make([]Label, len(ds.Samples))
	for i, s := range ds.Samples {
		ll[i] = s.Label
	}
	return ll
}

// Features returns the feature matrix.
func (ds Dataset) Features() [][]float64 {
	xx := make([][]float64, len(ds.Samples))
	for i, s := range ds.Samples {
		xx[i] = s.Features
	}
	return xx
}

// Select returns the feature matrix restricted to the given feature positions,
// along with the names of the selected features.
// No indices selects all features.
func (ds Dataset) Select(indices ...int) ([][]float64, []string, error) {
	names := ds.Names()
	if len(indices) == 0 {
		return ds.Features(), names, nil
	}
	selected := make([]string, len(indices))
	for j, i := range indices {
		if i < 0 || i >= len(names) {
			return nil, nil, fmt.Errorf("feature index %d out of range [0,%d)", i, len(names))
		}
		selected[j] = names[i]
	}
	xx := make([][]float64, len(ds.Samples))
	for n, s := range ds.Samples {
		x := make([]float64, len(indices))
		for j, i := range indices {
			x[j] = s.Features[i]
		}
		xx[n] = x
	}
	return xx, selected, nil
}

// Shuffle returns a new dataset with the samples in random order.
// The original dataset is left untouched.
func (ds Dataset) Shuffle(source rand.Source) Dataset {
	samples := make([]Sample, len(ds.Samples))
	copy(samples, ds.Samples)
	r := rand.New(source)
	r.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})
	return Dataset{
		Header:  ds.Header,
		Samples: samples,
	}
}
