// Package metrics holds the Prometheus metrics of a gluing run.
//
// Every Collector owns a private registry, so several runs (or tests) never
// collide on registration. The pipeline feeds it through the glue attempt
// hook and after each stage; WriteText dumps it in the text exposition
// format for a file next to the results.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/superdistricts/glue"
	"github.com/katalvlaran/superdistricts/tally"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "superdistricts"

// Collector holds all metrics of a run.
type Collector struct {
	registry *prometheus.Registry

	// GlueAttempts counts attempts by outcome (ok|failed) and reason.
	GlueAttempts *prometheus.CounterVec
	// GlueRuns counts Glue calls by result (ok|infeasible|error).
	GlueRuns *prometheus.CounterVec
	// AttemptsPerRun observes how many attempts a run consumed.
	AttemptsPerRun prometheus.Histogram
	// StageDuration observes pipeline stage latency.
	StageDuration *prometheus.HistogramVec
	// Seats is the statewide seat count per party and scheme.
	Seats *prometheus.GaugeVec
}

// NewCollector creates a collector whose metrics live under namespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	registry := prometheus.NewRegistry()

	glueAttempts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "glue_attempts_total",
			Help:      "Total number of gluing attempts",
		},
		[]string{"outcome", "reason"},
	)

	glueRuns := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "glue_runs_total",
			Help:      "Total number of gluing runs",
		},
		[]string{"result"},
	)

	attemptsPerRun := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "glue_attempts_per_run",
			Help:      "Attempts consumed by one gluing run",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 1000},
		},
	)

	stageDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Pipeline stage duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	seats := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "seats_total",
			Help:      "Statewide seats per party and scheme",
		},
		[]string{"party", "scheme"},
	)

	registry.MustRegister(glueAttempts, glueRuns, attemptsPerRun, stageDuration, seats)

	return &Collector{
		registry:       registry,
		GlueAttempts:   glueAttempts,
		GlueRuns:       glueRuns,
		AttemptsPerRun: attemptsPerRun,
		StageDuration:  stageDuration,
		Seats:          seats,
	}
}

// ObserveAttempt records one glue attempt. It has the glue.WithOnAttempt
// hook signature.
func (c *Collector) ObserveAttempt(r glue.AttemptReport) {
	outcome := "failed"
	if r.OK {
		outcome = "ok"
	}
	c.GlueAttempts.WithLabelValues(outcome, r.Reason.String()).Inc()
}

// ObserveRun records a finished Glue call that used attempts attempts.
// result is "ok", "infeasible" or "error".
func (c *Collector) ObserveRun(result string, attempts int) {
	c.GlueRuns.WithLabelValues(result).Inc()
	if attempts > 0 {
		c.AttemptsPerRun.Observe(float64(attempts))
	}
}

// ObserveStage records the duration of a pipeline stage.
func (c *Collector) ObserveStage(stage string, d time.Duration) {
	c.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// ObserveSeats publishes the statewide seat counts of both schemes.
func (c *Collector) ObserveSeats(s tally.Summary) {
	c.Seats.WithLabelValues(string(tally.PartyA), "fra").Set(float64(s.SeatsA))
	c.Seats.WithLabelValues(string(tally.PartyB), "fra").Set(float64(s.SeatsB))
	c.Seats.WithLabelValues(string(tally.PartyA), "baseline").Set(float64(s.BaselineSeatsA))
	c.Seats.WithLabelValues(string(tally.PartyB), "baseline").Set(float64(s.BaselineSeatsB))
}

// Registry returns the Prometheus registry for this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteText writes every gathered family in the text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
