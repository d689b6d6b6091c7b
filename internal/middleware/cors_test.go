package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCORSTestRouter(allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(allowedOrigins))
	router.GET("/api/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func performWithOrigin(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORSAllowsListedOrigin(t *testing.T) {
	router := newCORSTestRouter([]string{"https://uynm.org"})

	w := performWithOrigin(router, "https://uynm.org")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://uynm.org", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRejectsUnlistedOrigin(t *testing.T) {
	router := newCORSTestRouter([]string{"https://uynm.org"})

	w := performWithOrigin(router, "https://evil.example")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORSPassesRequestsWithoutOrigin(t *testing.T) {
	router := newCORSTestRouter([]string{"https://uynm.org"})

	w := performWithOrigin(router, "")

	assert.Equal(t, http.StatusOK, w.Code)
}
