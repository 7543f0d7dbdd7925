package analytics

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/msadmin/core/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHandlerFixture(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	passthrough := func(c *gin.Context) { c.Next() }
	NewHandler(NewService(st, zap.NewNop())).RegisterRoutes(api, passthrough)
	return r, st
}

func TestTrackViewEndpoint(t *testing.T) {
	r, st := newHandlerFixture(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/analytics/view", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	days := map[string]int{}
	st.Get(store.KeyAnalytics, &days)
	total := 0
	for _, v := range days {
		total += v
	}
	assert.Equal(t, 1, total)
}

func TestTrackViewStorageFailureSurfaces(t *testing.T) {
	r, st := newHandlerFixture(t)
	require.NoError(t, st.Close())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/analytics/view", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}
