package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"go-functions/internal/shared/logger"
	"go-functions/internal/shared/metrics"
)

// HealthChecker defines interface for component health checks
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// LogDirHealthChecker checks that the log directory accepts new files
type LogDirHealthChecker struct {
	dir string
}

// NewLogDirHealthChecker creates a new log directory health checker
func NewLogDirHealthChecker(dir string) *LogDirHealthChecker {
	return &LogDirHealthChecker{dir: dir}
}

// Name returns the health checker name
func (h *LogDirHealthChecker) Name() string {
	return "log_dir"
}

// Check creates and removes a probe file in the log directory
func (h *LogDirHealthChecker) Check(ctx context.Context) error {
	f, err := os.CreateTemp(h.dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("log directory not writable: %w", err)
	}
	name := f.Name()
	return errors.Join(f.Close(), os.Remove(name))
}

// MetricsHealthChecker checks that every registered collector can be gathered
type MetricsHealthChecker struct {
	metrics *metrics.Metrics
}

// NewMetricsHealthChecker creates a new metrics health checker
func NewMetricsHealthChecker(m *metrics.Metrics) *MetricsHealthChecker {
	return &MetricsHealthChecker{metrics: m}
}

// Name returns the health checker name
func (h *MetricsHealthChecker) Name() string {
	return "metrics"
}

// Check gathers the registry once
func (h *MetricsHealthChecker) Check(ctx context.Context) error {
	if h.metrics == nil {
		return errors.New("metrics not initialized")
	}
	if _, err := h.metrics.Registry().Gather(); err != nil {
		return fmt.Errorf("gather failed: %w", err)
	}
	return nil
}

// HealthManager manages health checks for the container
type HealthManager struct {
	checkers []HealthChecker
	logger   *logger.Logger
}

// NewHealthManager creates a new health manager
func NewHealthManager(log *logger.Logger) *HealthManager {
	return &HealthManager{
		checkers: make([]HealthChecker, 0),
		logger:   log.Named("health"),
	}
}

// AddChecker adds a health checker
func (h *HealthManager) AddChecker(checker HealthChecker) {
	h.checkers = append(h.checkers, checker)
}

// CheckAll performs all health checks
func (h *HealthManager) CheckAll(ctx context.Context) map[string]error {
	results := make(map[string]error, len(h.checkers))

	for _, checker := range h.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := checker.Check(checkCtx)
		cancel()

		results[checker.Name()] = err

		if err != nil {
			h.logger.Error("Health check failed",
				zap.String("checker", checker.Name()),
				zap.Error(err))
		} else {
			h.logger.Debug("Health check passed",
				zap.String("checker", checker.Name()))
		}
	}

	return results
}

// Health runs the container's health checks and joins their failures
func (c *Container) Health(ctx context.Context) error {
	var errs []error
	for name, err := range c.health.CheckAll(ctx) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s health check failed: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Container) initHealth() {
	c.health = NewHealthManager(c.Logger)

	if c.Config.LogDir != "" && c.Config.Environment != "test" {
		c.health.AddChecker(NewLogDirHealthChecker(c.Config.LogDir))
	}
	if c.Metrics != nil {
		c.health.AddChecker(NewMetricsHealthChecker(c.Metrics))
	}
}
