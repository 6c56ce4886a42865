package cluster

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/free-cluster/infra/config"
	"github.com/drakos74/free-cluster/internal/math/ml"
	"github.com/drakos74/free-cluster/internal/metrics"
	"github.com/drakos74/free-cluster/internal/model"
	"github.com/drakos74/free-cluster/internal/purity"
	"github.com/drakos74/free-cluster/internal/storage"
)

// Result is the outcome of a single evaluation run.
type Result struct {
	ID          string                         `json:"id"`
	Dataset     string                         `json:"dataset"`
	Features    []string                       `json:"features"`
	K           int                            `json:"k"`
	Seed        int64                          `json:"seed"`
	Assignments []model.ClusterID              `json:"assignments"`
	Profile     map[model.ClusterID]ml.Cluster `json:"profile"`
	Evaluation  *purity.Evaluation             `json:"evaluation"`
}

func (r Result) String() string {
	return fmt.Sprintf("Clustering on [%s] with k=%d ...\n%s", strings.Join(r.Features, ", "), r.K, r.Evaluation)
}

// Engine clusters a labeled dataset and evaluates how well the clusters recover the labels.
type Engine struct {
	partitioner ml.Partitioner
	config      config.Cluster
	store       storage.Persistence
	metrics     *metrics.Metrics
}

func NewEngine(partitioner ml.Partitioner, cfg config.Cluster) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{
		partitioner: partitioner,
		config:      cfg,
		store:       storage.NewVoidStorage(),
		metrics:     metrics.Observer,
	}, nil
}

func (e *Engine) WithStore(store storage.Persistence) *Engine {
	e.store = store
	return e
}

func (e *Engine) WithMetrics(m *metrics.Metrics) *Engine {
	e.metrics = m
	return e
}

// Run evaluates the dataset, clustering only on the given feature positions.
// No indices means all features are used.
func (e *Engine) Run(name string, ds model.Dataset, indices ...int) (*Result, error) {
	result, err := e.run(name, ds, indices...)
	if err != nil {
		e.metrics.Fail()
		log.Error().Err(err).Str("dataset", name).Msg("evaluation failed")
		return nil, err
	}
	ev := result.Evaluation
	e.metrics.Observe(ev.Entropy, ev.Purity, len(ev.Merged), ev.Warning != nil)
	return result, nil
}

func (e *Engine) run(name string, ds model.Dataset, indices ...int) (*Result, error) {
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	if ds.Size() == 0 {
		return nil, fmt.Errorf("no samples in dataset '%s'", name)
	}

	seed := e.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if e.config.Shuffle {
		ds = ds.Shuffle(rand.NewSource(seed))
	}
	if s, ok := e.partitioner.(ml.Seeded); ok {
		s.Reseed(seed)
	}

	x, features, err := ds.Select(indices...)
	if err != nil {
		return nil, fmt.Errorf("could not select features: %w", err)
	}
	labels := ds.Labels()

	k, err := ml.ClusterCount(labels, e.config.Factor)
	if err != nil {
		return nil, fmt.Errorf("could not derive cluster count: %w", err)
	}

	log.Info().
		Str("dataset", name).
		Strs("features", features).
		Int("samples", len(x)).
		Int("k", k).
		Msg("clustering")

	assignments, err := e.partitioner.Partition(x, k)
	if err != nil {
		return nil, fmt.Errorf("could not partition samples: %w", err)
	}

	ev, err := purity.Evaluate(labels, assignments)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate clusters: %w", err)
	}

	profile, err := ml.Profile(x, assignments)
	if err != nil {
		return nil, fmt.Errorf("could not profile clusters: %w", err)
	}

	result := &Result{
		ID:          uuid.New().String(),
		Dataset:     name,
		Features:    features,
		K:           k,
		Seed:        seed,
		Assignments: assignments,
		Profile:     profile,
		Evaluation:  ev,
	}

	key := storage.Key{
		Hash:    time.Now().Unix(),
		Dataset: name,
		Label:   result.ID,
	}
	if err := e.store.Store(key, result); err != nil {
		return nil, fmt.Errorf("could not store result: %w", err)
	}

	log.Info().
		Str("id", result.ID).
		Int("groups", len(ev.Merged)).
		Float64("entropy", ev.Entropy).
		Float64("purity", ev.Purity).
		Bool("covered", ev.Warning == nil).
		Msg("evaluation done")

	return result, nil
}
