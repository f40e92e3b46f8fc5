package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdeskhq/eventdesk-api/internal/pkg/jwthelper"
)

const testSigningKey = "gate-test-key"

func newGatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewSessionGate(testSigningKey).Gate())

	ok := func(ctx *gin.Context) { ctx.String(http.StatusOK, "ok") }
	router.GET("/", ok)
	router.GET("/login", ok)
	router.GET("/healthz", ok)
	router.GET("/metrics", ok)
	router.GET("/api/v1/projects", ok)

	return router
}

func TestSessionGateRedirectsWithoutCookie(t *testing.T) {
	router := newGatedRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSessionGateRedirectsInvalidCookie(t *testing.T) {
	router := newGatedRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tampered"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSessionGateAllowsValidCookie(t *testing.T) {
	router := newGatedRouter()

	token, err := jwthelper.GenerateSessionToken(testSigningKey, "admin@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionGateNeverRedirectsOpenPaths(t *testing.T) {
	router := newGatedRouter()

	for _, path := range []string{"/api/v1/projects", "/login", "/healthz", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equalf(t, http.StatusOK, rec.Code, "path %v should bypass the gate", path)
		assert.Emptyf(t, rec.Header().Get("Location"), "path %v must not redirect", path)
	}
}
