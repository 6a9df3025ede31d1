package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-functions/internal/shared/logger"
	"go-functions/internal/shared/metrics"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                    { return s.name }
func (s stubChecker) Check(ctx context.Context) error { return s.err }

func TestHealthManager_CheckAll(t *testing.T) {
	boom := errors.New("boom")
	h := NewHealthManager(logger.NewNop())
	h.AddChecker(stubChecker{name: "ok"})
	h.AddChecker(stubChecker{name: "broken", err: boom})

	results := h.CheckAll(context.Background())

	assert.Len(t, results, 2)
	assert.NoError(t, results["ok"])
	assert.ErrorIs(t, results["broken"], boom)
}

func TestLogDirHealthChecker(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewLogDirHealthChecker(dir).Check(context.Background()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file must be removed")

	missing := filepath.Join(dir, "missing")
	assert.Error(t, NewLogDirHealthChecker(missing).Check(context.Background()))
}

func TestMetricsHealthChecker(t *testing.T) {
	assert.NoError(t, NewMetricsHealthChecker(metrics.New(logger.NewNop())).Check(context.Background()))
	assert.Error(t, NewMetricsHealthChecker(nil).Check(context.Background()))
}

func TestContainer_Health(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t)
	cfg.Environment = "development"
	cfg.LogDir = filepath.Join(dir, "logs")

	c, err := NewContainer(ContainerOptions{Config: cfg, Out: &bytes.Buffer{}})
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Health(context.Background()))

	require.NoError(t, os.RemoveAll(cfg.LogDir))
	err = c.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_dir health check failed")
}
