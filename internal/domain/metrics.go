package domain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	executionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "preach_executions_total",
		Help: "Target executions by strategy",
	}, []string{"strategy"})

	solverQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "preach_solver_queries_total",
		Help: "Branch solve attempts by result (sat, unsat, short_circuit, error)",
	}, []string{"result"})

	predictionFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "preach_prediction_failures_total",
		Help: "Forced executions that diverged from the expected path prefix",
	})

	findingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "preach_findings_total",
		Help: "Executions that grew round coverage, by kind (legit, lucky)",
	}, []string{"kind"})

	cfgOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "preach_cfg_outcomes_total",
		Help: "CFG-heuristic pass outcomes (zero, nonzero, lucky, lucky_pred_fail, top_solve, exhausted)",
	}, []string{"outcome"})

	coveredBranches = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "preach_covered_branches",
		Help: "Branches covered since the process started",
	})

	executionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "preach_execution_duration_seconds",
		Help:    "Wall time of one target execution including artifact I/O",
		Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60},
	})
)
