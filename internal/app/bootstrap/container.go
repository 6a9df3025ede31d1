package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"go-functions/internal/app/config"
	"go-functions/internal/pkg/lesson"
	"go-functions/internal/shared/logger"
	"go-functions/internal/shared/metrics"
)

// Container holds all application dependencies
type Container struct {
	// Configuration and Infrastructure
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.Metrics

	// Services
	Runner *lesson.Runner

	health    *HealthManager
	startTime time.Time
}

// ContainerOptions defines configuration options for the container
type ContainerOptions struct {
	ConfigPath string
	// Out receives lesson output. Defaults to os.Stdout.
	Out io.Writer
	// Config skips loading from ConfigPath when set
	Config *config.Config
}

// NewContainer creates and initializes all application dependencies
func NewContainer(opts ContainerOptions) (*Container, error) {
	container := &Container{startTime: time.Now()}

	// Load configuration first
	cfg := opts.Config
	if cfg == nil {
		var err error
		cfg, err = config.LoadConfig(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}
	container.Config = cfg

	// Initialize logger
	appLogger, err := logger.New(logger.Options{
		Environment: cfg.Environment,
		Dir:         cfg.LogDir,
		Console:     cfg.LogConsole,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	container.Logger = appLogger

	// Initialize metrics if enabled
	if cfg.MetricsEnabled {
		container.Metrics = metrics.New(appLogger)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	container.Runner = lesson.NewRunner(lesson.RunnerOptions{
		Out:     out,
		Logger:  appLogger,
		Metrics: container.Metrics,
	})

	container.initHealth()

	if err := container.validate(); err != nil {
		return nil, fmt.Errorf("container validation failed: %w", err)
	}

	container.Logger.Debug("Container initialized successfully")
	return container, nil
}

// validate performs validation on the container dependencies
func (c *Container) validate() error {
	if c.Config == nil {
		return errors.New("config is nil")
	}
	if c.Logger == nil {
		return errors.New("logger is nil")
	}
	if c.Config.MetricsEnabled && c.Metrics == nil {
		return errors.New("metrics enabled but nil")
	}
	if c.Runner == nil {
		return errors.New("runner is nil")
	}
	if c.health == nil {
		return errors.New("health manager is nil")
	}
	return nil
}

// Close flushes metrics and logs
func (c *Container) Close() error {
	var errs error

	if c.Metrics != nil {
		c.Metrics.RecordUptime(time.Since(c.startTime))
		if path := c.Config.MetricsTextfile; path != "" {
			errs = multierr.Append(errs, c.Metrics.WriteTextfile(path))
		}
	}

	if c.Logger != nil {
		if errs != nil {
			c.Logger.Error("Shutdown errors", zap.Error(errs))
		}
		// Close syncs first, then releases the rotated log files
		errs = multierr.Append(errs, c.Logger.Close())
	}

	return errs
}
