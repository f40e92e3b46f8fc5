package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdeskhq/eventdesk-api/internal/api/handler/v1/request"
	"github.com/eventdeskhq/eventdesk-api/internal/domain"
	"github.com/eventdeskhq/eventdesk-api/internal/service"
)

// stubResourceService returns canned values per call.
type stubResourceService struct {
	attendee domain.Attendee
	list     []domain.Attendee
	err      error
}

func (s *stubResourceService) Create(_ context.Context, _ uint, _ domain.Attendee) (domain.Attendee, error) {
	return s.attendee, s.err
}

func (s *stubResourceService) List(_ context.Context, _ uint) ([]domain.Attendee, error) {
	return s.list, s.err
}

func (s *stubResourceService) Get(_ context.Context, _, _ uint) (domain.Attendee, error) {
	return s.attendee, s.err
}

func (s *stubResourceService) Update(_ context.Context, _, _ uint, _ domain.Attendee) (domain.Attendee, error) {
	return s.attendee, s.err
}

func (s *stubResourceService) Delete(_ context.Context, _, _ uint) error {
	return s.err
}

func newResourceRouter(svc ResourceService[domain.Attendee]) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewResourceHandler[request.AttendeeRequest, domain.Attendee]("attendee", svc)

	router := gin.New()
	router.GET("/api/v1/projects/:projectID/attendees", h.HandleList)
	router.POST("/api/v1/projects/:projectID/attendees", h.HandleCreate)
	router.GET("/api/v1/projects/:projectID/attendees/:attendeeID", h.HandleGet)
	router.PUT("/api/v1/projects/:projectID/attendees/:attendeeID", h.HandleUpdate)
	router.DELETE("/api/v1/projects/:projectID/attendees/:attendeeID", h.HandleDelete)

	return router
}

func TestResourceHandlerCreate(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		svc      *stubResourceService
		wantCode int
	}{
		{
			name:     "created",
			path:     "/api/v1/projects/1/attendees",
			body:     `{"name":"Grace Hopper","email":"grace@example.com"}`,
			svc:      &stubResourceService{attendee: domain.Attendee{ID: 1, Name: "Grace Hopper"}},
			wantCode: http.StatusCreated,
		},
		{
			name:     "validation failure",
			path:     "/api/v1/projects/1/attendees",
			body:     `{"name":"Grace Hopper"}`,
			svc:      &stubResourceService{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed json",
			path:     "/api/v1/projects/1/attendees",
			body:     `{"name":`,
			svc:      &stubResourceService{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad project id",
			path:     "/api/v1/projects/abc/attendees",
			body:     `{"name":"Grace Hopper","email":"grace@example.com"}`,
			svc:      &stubResourceService{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing project",
			path:     "/api/v1/projects/99/attendees",
			body:     `{"name":"Grace Hopper","email":"grace@example.com"}`,
			svc:      &stubResourceService{err: service.ErrProjectNotFound},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newResourceRouter(tt.svc)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestResourceHandlerGet(t *testing.T) {
	router := newResourceRouter(&stubResourceService{
		attendee: domain.Attendee{ID: 5, ProjectID: 1, Name: "Grace Hopper"},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects/1/attendees/5", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Attendee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Grace Hopper", got.Name)
}

func TestResourceHandlerGetNotFound(t *testing.T) {
	router := newResourceRouter(&stubResourceService{err: service.ErrNotFound})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects/1/attendees/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "attendee with ID 42 is not found")
}

func TestResourceHandlerUpdateNotFound(t *testing.T) {
	router := newResourceRouter(&stubResourceService{err: service.ErrNotFound})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/projects/1/attendees/42",
		strings.NewReader(`{"name":"Grace Hopper","email":"grace@example.com"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResourceHandlerDelete(t *testing.T) {
	router := newResourceRouter(&stubResourceService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/projects/1/attendees/5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "attendee deleted")
}

func TestResourceHandlerIDParam(t *testing.T) {
	h := NewResourceHandler[request.AttendeeRequest, domain.Attendee]("attendee", &stubResourceService{})

	assert.Equal(t, "attendeeID", h.IDParam())
}
