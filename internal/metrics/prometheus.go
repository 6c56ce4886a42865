package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Evaluations *prometheus.CounterVec
	Entropy     prometheus.Gauge
	Purity      prometheus.Gauge
	Groups      prometheus.Gauge
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cluster",
				Name:      "evaluations",
				Help:      "number of cluster evaluations by outcome",
			}, []string{"outcome"}),
		Entropy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cluster",
			Name:      "entropy_bits",
			Help:      "sample weighted entropy of the last evaluation",
		}),
		Purity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cluster",
			Name:      "purity",
			Help:      "sample weighted purity of the last evaluation",
		}),
		Groups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cluster",
			Name:      "merged_groups",
			Help:      "number of merged label groups of the last evaluation",
		}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Evaluations, p.Entropy, p.Purity, p.Groups}
}
