package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-functions/internal/shared/logger"
)

// Lesson outcomes used as the status label
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Lesson metrics
	lessonRunsTotal *prometheus.CounterVec
	lessonDuration  *prometheus.HistogramVec

	// Domain metrics
	counterOperationsTotal *prometheus.CounterVec
	bookingsTotal          *prometheus.CounterVec
	reservationsTotal      *prometheus.CounterVec

	// System metrics
	uptime prometheus.Gauge

	logger *logger.Logger
}

// New creates a new metrics instance on its own registry
func New(logger *logger.Logger) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		logger:   logger.Named("metrics"),
	}

	factory := promauto.With(m.registry)
	m.initLessonMetrics(factory)
	m.initDomainMetrics(factory)
	m.initSystemMetrics(factory)

	m.registry.MustRegister(collectors.NewGoCollector())

	m.logger.Debug("Metrics initialized")

	return m
}

func (m *Metrics) initLessonMetrics(factory promauto.Factory) {
	m.lessonRunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lesson_runs_total",
			Help: "Total number of lesson runs",
		},
		[]string{"lesson", "status"},
	)

	m.lessonDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lesson_duration_seconds",
			Help:    "Lesson run duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"lesson"},
	)
}

func (m *Metrics) initDomainMetrics(factory promauto.Factory) {
	m.counterOperationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "counter_operations_total",
			Help: "Total number of counter increments and decrements",
		},
		[]string{"operation"},
	)

	m.bookingsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Total number of ledger bookings",
		},
		[]string{"defaults"},
	)

	m.reservationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airline_reservations_total",
			Help: "Total number of airline reservations",
		},
		[]string{"airline"},
	)
}

func (m *Metrics) initSystemMetrics(factory promauto.Factory) {
	m.uptime = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
}

// Registry exposes the underlying registry for gathering
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordLesson records one lesson run
func (m *Metrics) RecordLesson(lesson string, duration time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusFailed
	}

	m.lessonRunsTotal.WithLabelValues(lesson, status).Inc()
	m.lessonDuration.WithLabelValues(lesson).Observe(duration.Seconds())
}

// RecordCounterOperation records an increment or decrement
func (m *Metrics) RecordCounterOperation(operation string) {
	m.counterOperationsTotal.WithLabelValues(operation).Inc()
}

// RecordBooking records a ledger booking. usedDefaults reports whether any
// field fell back to its default.
func (m *Metrics) RecordBooking(usedDefaults bool) {
	label := "none"
	if usedDefaults {
		label = "some"
	}
	m.bookingsTotal.WithLabelValues(label).Inc()
}

// RecordReservation records an airline reservation
func (m *Metrics) RecordReservation(airline string) {
	m.reservationsTotal.WithLabelValues(airline).Inc()
}

// RecordUptime records the application uptime
func (m *Metrics) RecordUptime(uptime time.Duration) {
	m.uptime.Set(uptime.Seconds())
}

// WriteTextfile writes every metric in the Prometheus text format to path,
// for pickup by a node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	m.logger.Debug("Metrics written")
	return nil
}
