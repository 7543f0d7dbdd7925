package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newLoggedRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/broken", func(c *gin.Context) {
		c.Error(errors.New("backing store unavailable"))
		c.Status(http.StatusInternalServerError)
	})
	return r, logs
}

func get(r *gin.Engine, path string) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
}

func TestLoggerLevelsByStatus(t *testing.T) {
	r, logs := newLoggedRouter(t)

	get(r, "/ok")
	get(r, "/missing")
	get(r, "/broken")

	entries := logs.TakeAll()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	for i, status := range []int64{200, 404, 500} {
		ctx := entries[i].ContextMap()
		assert.Equal(t, status, ctx["status"])
		assert.Equal(t, "GET", ctx["method"])
	}
}

func TestLoggerIncludesHandlerErrors(t *testing.T) {
	r, logs := newLoggedRouter(t)

	get(r, "/broken")

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["errors"], "backing store unavailable")
}

func TestLoggerSkipsHealthProbe(t *testing.T) {
	r, logs := newLoggedRouter(t)

	get(r, "/api/health")
	get(r, "/ok")

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
}
