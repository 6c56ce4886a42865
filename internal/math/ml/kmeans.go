package ml

import (
	"fmt"
	"io"
	"io/ioutil"
	"math/rand"

	"github.com/cdipaolo/goml/cluster"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/free-cluster/internal/model"
)

// KMeans partitions the samples with the k-means++ implementation of goml.
type KMeans struct {
	iterations int
	seed       int64
	output     io.Writer
}

// NewKMeans creates a new k-means partitioner, bounded to the given number of iterations.
func NewKMeans(iterations int) *KMeans {
	return &KMeans{
		iterations: iterations,
		output:     ioutil.Discard,
	}
}

// Seed fixes the random initialisation of the centroids.
// A zero seed keeps the time based seed of the underlying model.
func (k *KMeans) Seed(seed int64) *KMeans {
	k.Reseed(seed)
	return k
}

// Reseed replaces the seed for the next partitions.
func (k *KMeans) Reseed(seed int64) {
	k.seed = seed
}

// Output redirects the training output of the underlying model.
func (k *KMeans) Output(w io.Writer) *KMeans {
	k.output = w
	return k
}

// Partition assigns each of the given samples to one of k clusters.
func (k *KMeans) Partition(x [][]float64, n int) ([]model.ClusterID, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("no samples to partition")
	}
	if n < 1 || n > len(x) {
		return nil, fmt.Errorf("invalid number of clusters %d for %d samples", n, len(x))
	}

	km := cluster.NewKMeans(n, k.iterations, x)
	km.Output = k.output
	// NOTE : the model reseeds the global source on creation, so this must come after it
	if k.seed != 0 {
		rand.Seed(k.seed)
	}
	if err := km.Learn(); err != nil {
		log.Error().
			Err(err).
			Int("k", n).
			Int("samples", len(x)).
			Msg("error during training on k-means")
		return nil, fmt.Errorf("could not train: %w", err)
	}

	guesses := km.Guesses()
	if len(guesses) != len(x) {
		return nil, fmt.Errorf("could not align guesses with data [ %d | %d ]", len(guesses), len(x))
	}

	assignments := make([]model.ClusterID, len(guesses))
	for i, g := range guesses {
		assignments[i] = model.ClusterID(g)
	}

	log.Debug().
		Int("k", n).
		Int("samples", len(x)).
		Int("iterations", k.iterations).
		Int("clusters", len(model.UniqueClusters(assignments))).
		Msg("k-means partition")

	return assignments, nil
}
