package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdeskhq/eventdesk-api/internal/config"
	"github.com/eventdeskhq/eventdesk-api/internal/pkg/jwthelper"
	"github.com/eventdeskhq/eventdesk-api/internal/service"
)

const authTestKey = "auth-test-key"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewAuthService(&config.AdminConfig{
		Email:    "admin@example.com",
		Password: "hunter2",
	})
	h := NewAuthHandler(svc, &config.APIConfig{
		SessionSigningKey: authTestKey,
		SessionTTLHours:   24,
	})

	router := gin.New()
	router.POST("/api/v1/auth/login", h.HandleLogin)
	router.POST("/api/v1/auth/logout", h.HandleLogout)
	router.GET("/api/v1/auth/session", h.HandleSession)

	return router
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}

	return nil
}

func TestHandleLogin(t *testing.T) {
	router := newAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"hunter2"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	claims, err := jwthelper.ParseSessionToken(authTestKey, cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestHandleLoginWrongPassword(t *testing.T) {
	router := newAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sessionCookie(rec))
}

func TestHandleLoginInvalidPayload(t *testing.T) {
	router := newAuthRouter()

	tests := []struct {
		name string
		body string
	}{
		{"missing password", `{"email":"admin@example.com"}`},
		{"bad email", `{"email":"nope","password":"hunter2"}`},
		{"malformed json", `{"email":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleLogoutClearsCookie(t *testing.T) {
	router := newAuthRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestHandleSession(t *testing.T) {
	router := newAuthRouter()

	token, err := jwthelper.GenerateSessionToken(authTestKey, "admin@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@example.com")
}

func TestHandleSessionWithoutCookie(t *testing.T) {
	router := newAuthRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
