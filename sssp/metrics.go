package sssp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/dsssp/transport"
)

var (
	// runsTotal counts runs by mode ("serial", "distributed") and result ("ok", "error").
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dsssp_runs_total",
		Help: "Total shortest-path runs by mode and result",
	}, []string{"mode", "result"})

	roundsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dsssp_rounds_total",
		Help: "Total rounds driven, terminating rounds included",
	})

	// messagesTotal counts worker messages by transport.Kind.
	messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dsssp_messages_total",
		Help: "Messages exchanged between workers by kind",
	}, []string{"kind"})

	// relaxationsTotal counts TryRelax calls by outcome ("improved", "rejected").
	relaxationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dsssp_relaxations_total",
		Help: "Relaxation attempts by outcome",
	}, []string{"outcome"})

	roundDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dsssp_round_duration_seconds",
		Help:    "Coordinator time per round, broadcast to last reply",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	})

	invariantViolations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dsssp_invariant_violations_total",
		Help: "Fatal protocol violations by invariant",
	}, []string{"invariant"})
)

// countMessage is installed as a transport observer on every network.
func countMessage(_ int, msg transport.Message) {
	messagesTotal.WithLabelValues(msg.Kind.String()).Inc()
}

func countRelax(improved bool) {
	if improved {
		relaxationsTotal.WithLabelValues("improved").Inc()

		return
	}
	relaxationsTotal.WithLabelValues("rejected").Inc()
}
