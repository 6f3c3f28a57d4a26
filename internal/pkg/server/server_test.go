package server

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/models"
)

func newTestLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	zl, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)
	return zl
}

func TestNewGracefulServer(t *testing.T) {
	tests := []struct {
		name string
		port int
	}{
		{name: "standard port", port: 8080},
		{name: "alternate port", port: 9090},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			gs := NewGracefulServer(e, newTestLogger(t), tt.port)
			assert.NotNil(t, gs)
		})
	}
}

func TestGracefulServer_Shutdown(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, newTestLogger(t), 0)

	// Shutdown on a server that never started should still succeed
	err := gs.Shutdown()
	assert.NoError(t, err)
}

func TestNewShutdownManager(t *testing.T) {
	sm := NewShutdownManager(newTestLogger(t))
	assert.NotNil(t, sm)
}

func TestShutdownManager_Shutdown(t *testing.T) {
	t.Run("runs cleanup functions in registration order", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		var results []string

		sm.Register(func(ctx context.Context) error {
			results = append(results, "db")
			return nil
		})
		sm.Register(func(ctx context.Context) error {
			results = append(results, "cache")
			return nil
		})
		sm.Register(func(ctx context.Context) error {
			results = append(results, "broker")
			return nil
		})

		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"db", "cache", "broker"}, results)
	})

	t.Run("continues past failing cleanup functions", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		var results []string

		sm.Register(func(ctx context.Context) error {
			results = append(results, "first")
			return nil
		})
		sm.Register(func(ctx context.Context) error {
			results = append(results, "second")
			return fmt.Errorf("second failed")
		})
		sm.Register(func(ctx context.Context) error {
			results = append(results, "third")
			return nil
		})

		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, results)
	})

	t.Run("no cleanup functions", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		assert.NoError(t, sm.Shutdown(context.Background()))
	})

	t.Run("slow cleanup completes", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		done := false
		sm.Register(func(ctx context.Context) error {
			time.Sleep(50 * time.Millisecond)
			done = true
			return nil
		})

		start := time.Now()
		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.True(t, done)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})
}

func TestShutdownManager_Integration(t *testing.T) {
	sm := NewShutdownManager(newTestLogger(t))

	var mu sync.Mutex
	closed := map[string]bool{}
	for _, name := range []string{"postgres", "redis", "nats"} {
		component := name
		sm.Register(func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			closed[component] = true
			return nil
		})
	}

	err := sm.Shutdown(context.Background())
	assert.NoError(t, err)
	assert.True(t, closed["postgres"])
	assert.True(t, closed["redis"])
	assert.True(t, closed["nats"])
}
