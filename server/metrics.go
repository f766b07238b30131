package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics are registered per Server so that several servers (and tests) can
// coexist in one process.
type metrics struct {
	registry      *prometheus.Registry
	solveTotal    *prometheus.CounterVec
	solveDuration prometheus.Histogram
	graphNodes    prometheus.Histogram
	relaxations   prometheus.Histogram
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		solveTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pathtutor_solve_requests_total",
			Help: "Solve requests by result kind",
		}, []string{"kind"}),
		solveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathtutor_solve_duration_seconds",
			Help:    "Time spent building the graph and running Dijkstra",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
		graphNodes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathtutor_graph_nodes",
			Help:    "Nodes per solved graph",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		}),
		relaxations: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathtutor_relaxations",
			Help:    "Relax events per run",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
	}
}
