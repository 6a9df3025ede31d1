package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps zap.Logger to provide structured logging
type Logger struct {
	*zap.Logger

	// files are owned by the root logger; children share them but never close them
	files []io.Closer
}

// Options controls where log output goes
type Options struct {
	// Environment is one of development, production or test
	Environment string
	// Dir holds the rotated per-level log files. Empty disables file output.
	Dir string
	// Console mirrors every entry to stderr outside production
	Console bool
}

// New creates a new logger instance based on the environment
func New(opts Options) (*Logger, error) {
	if opts.Environment == "test" {
		return NewNop(), nil
	}

	var (
		cores []zapcore.Core
		files []io.Closer
	)

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		// JSON files without colors, one per level threshold
		fileEncoder := zapcore.NewJSONEncoder(fileEncoderConfig())
		for _, lvl := range []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel} {
			w := rotatingWriter(opts.Dir, lvl)
			files = append(files, w)
			cores = append(cores, zapcore.NewCore(
				fileEncoder,
				zapcore.AddSync(w),
				lvl,
			))
		}
	}

	if opts.Console && opts.Environment != "production" {
		consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
		consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoderConfig),
			// stderr cannot be fsynced on terminals and pipes, so hide its Sync
			zapcore.Lock(zapcore.AddSync(struct{ io.Writer }{os.Stderr})),
			zapcore.DebugLevel,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return &Logger{
		Logger: logger,
		files:  files,
	}, nil
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

func fileEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// rotatingWriter returns a lumberjack writer for <dir>/<level>.log
func rotatingWriter(dir string, lvl zapcore.Level) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, lvl.String()+".log"),
		MaxSize:    100, // megabytes
		MaxBackups: 30,
		MaxAge:     30, // days
		Compress:   true,
	}
}

// Named returns a named logger
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		Logger: l.Logger.Named(name),
	}
}

// With creates a child logger with the given fields
func (l *Logger) With(fields ...zapcore.Field) *Logger {
	return &Logger{
		Logger: l.Logger.With(fields...),
	}
}

// Close flushes buffered entries and closes the rotated log files. Only the
// logger returned by New owns files; Close on a child is a plain Sync.
func (l *Logger) Close() error {
	err := l.Logger.Sync()
	for _, f := range l.files {
		err = multierr.Append(err, f.Close())
	}
	l.files = nil
	return err
}
