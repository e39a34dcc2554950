package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegate/routegate/core/handler"
	"github.com/routegate/routegate/core/response"
	"github.com/routegate/routegate/middleware"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("logs completed request", func(t *testing.T) {
		t.Parallel()

		log, buf := captureLogger()
		fn := middleware.LoggingWithConfig(middleware.LoggingConfig{Logger: log})(okHandler)

		req := handler.NewRequest(http.MethodGet, "/users/42", nil, nil).WithRoute("/users/{id}")
		_, err := fn(req)
		require.NoError(t, err)

		entry := logLine(t, buf)
		assert.Equal(t, "request completed", entry["msg"])
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, http.MethodGet, entry["method"])
		assert.Equal(t, "/users/42", entry["path"])
		assert.Equal(t, "/users/{id}", entry["route"])
		assert.Equal(t, float64(http.StatusOK), entry["status_code"])
		assert.Contains(t, entry, "duration")
	})

	t.Run("includes handler error", func(t *testing.T) {
		t.Parallel()

		log, buf := captureLogger()
		fn := middleware.LoggingWithConfig(middleware.LoggingConfig{Logger: log})(
			func(r *handler.Request) (*handler.Entity, error) {
				return nil, response.ErrNotFound
			})

		_, err := fn(handler.NewRequest(http.MethodGet, "/missing", nil, nil))
		assert.Error(t, err)

		entry := logLine(t, buf)
		assert.Equal(t, float64(http.StatusNotFound), entry["status_code"])
		assert.Contains(t, entry, "error")
	})

	t.Run("slow request escalates to warn", func(t *testing.T) {
		t.Parallel()

		log, buf := captureLogger()
		fn := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger:               log,
			SlowRequestThreshold: time.Nanosecond,
		})(func(r *handler.Request) (*handler.Entity, error) {
			time.Sleep(time.Millisecond)
			return handler.NoContent(), nil
		})

		_, err := fn(handler.NewRequest(http.MethodGet, "/", nil, nil))
		require.NoError(t, err)

		entry := logLine(t, buf)
		assert.Equal(t, "WARN", entry["level"])
	})

	t.Run("skip suppresses the log line", func(t *testing.T) {
		t.Parallel()

		log, buf := captureLogger()
		fn := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: log,
			Skip:   func(r *handler.Request) bool { return r.Path() == "/healthz" },
		})(okHandler)

		_, err := fn(handler.NewRequest(http.MethodGet, "/healthz", nil, nil))
		require.NoError(t, err)

		assert.Zero(t, buf.Len())
	})
}
