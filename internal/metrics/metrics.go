package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OK      = "ok"
	Warning = "warning"
	Error   = "error"
)

var Observer = NewMetrics(prometheus.DefaultRegisterer)

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// NewMetrics creates the evaluation metrics and registers them with the given registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	p := NewPrometheusMetrics()
	registerer.MustRegister(p.collectors()...)
	return &Metrics{
		mutex:      new(sync.RWMutex),
		prometheus: p,
	}
}

// Fail records a failed evaluation.
func (m *Metrics) Fail() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.prometheus.Evaluations.WithLabelValues(Error).Inc()
}

// Observe records the outcome of a successful evaluation.
func (m *Metrics) Observe(entropy, purity float64, groups int, warning bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	outcome := OK
	if warning {
		outcome = Warning
	}
	m.prometheus.Evaluations.WithLabelValues(outcome).Inc()
	m.prometheus.Entropy.Set(entropy)
	m.prometheus.Purity.Set(purity)
	m.prometheus.Groups.Set(float64(groups))
}

// Dump writes all gathered metrics to the given file in the prometheus text format.
func Dump(file string) error {
	if err := prometheus.WriteToTextfile(file, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("could not write metrics to %s: %w", file, err)
	}
	return nil
}
