package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventdeskhq/eventdesk-api/internal/api/handler/v1/request"
	"github.com/eventdeskhq/eventdesk-api/internal/api/handler/v1/response"
	"github.com/eventdeskhq/eventdesk-api/internal/config"
	"github.com/eventdeskhq/eventdesk-api/internal/domain"
	"github.com/eventdeskhq/eventdesk-api/internal/repository/dao"
	"github.com/eventdeskhq/eventdesk-api/internal/service"
)

type UtmService interface {
	ResourceService[domain.UtmRecord]

	Link(record domain.UtmRecord) string
	Track(ctx context.Context, projectID, id uint, event string) error
	Bulk(ctx context.Context, projectID uint, action string, ids []uint) (int64, error)
	Resolve(ctx context.Context, projectID uint, lookup dao.UtmLookup) (domain.UtmRecord, error)
	Find(ctx context.Context, projectID uint, lookup dao.UtmLookup) ([]domain.UtmRecord, error)
	Stats(ctx context.Context, projectID uint) (domain.UtmStats, error)
	ExportCSV(project domain.Project, records []domain.UtmRecord, now time.Time) (filename, body string)
	Snippet(baseURL string, projectID uint) string
}

// UtmHandler serves UTM record CRUD plus tracking, bulk maintenance,
// lookup and CSV export. List and item responses decorate each record
// with its built tracking link, so the generic read routes are shadowed.
type UtmHandler struct {
	*ResourceHandler[request.UtmRequest, domain.UtmRecord]

	svc      UtmService
	projects ProjectService
	conf     *config.APIConfig
}

func NewUtmHandler(svc UtmService, projects ProjectService, conf *config.APIConfig) *UtmHandler {
	return &UtmHandler{
		ResourceHandler: NewResourceHandler[request.UtmRequest, domain.UtmRecord]("utm", svc),
		svc:             svc,
		projects:        projects,
		conf:            conf,
	}
}

func (h *UtmHandler) withLink(record domain.UtmRecord) response.UtmRecord {
	return response.UtmRecord{
		UtmRecord: record,
		Link:      h.svc.Link(record),
	}
}

func lookupFromQuery(ctx *gin.Context) dao.UtmLookup {
	return dao.UtmLookup{
		Source:   ctx.Query("source"),
		Medium:   ctx.Query("medium"),
		Campaign: ctx.Query("campaign"),
		Term:     ctx.Query("term"),
		Content:  ctx.Query("content"),
	}
}

// HandleList godoc
// @Summary      List UTM records
// @Description  Retrieves the project's UTM records with their tracking links
// @Tags         utm
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Success      200  {array}   response.UtmRecord
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/utm [get]
func (h *UtmHandler) HandleList(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	records, err := h.svc.List(ctx.Request.Context(), projectID)
	if err != nil {
		err = fmt.Errorf("HandleList -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	out := make([]response.UtmRecord, 0, len(records))
	for _, r := range records {
		out = append(out, h.withLink(r))
	}

	ctx.JSON(http.StatusOK, out)
}

// HandleCreate godoc
// @Summary      Create a UTM record
// @Description  Stores a UTM parameter set and returns it with its tracking link
// @Tags         utm
// @Accept       json
// @Produce      json
// @Param        projectID  path  int                 true  "project ID"
// @Param        request    body  request.UtmRequest  true  "record to create"
// @Success      201  {object}  response.UtmRecord
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/utm [post]
func (h *UtmHandler) HandleCreate(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UtmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), projectID, req.ToModel(projectID))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("project", "ID", projectID))
			return
		}

		err = fmt.Errorf("HandleCreate -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, h.withLink(created))
}

// HandleGet godoc
// @Summary      Get a UTM record
// @Description  Retrieves one record with its tracking link
// @Tags         utm
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Param        utmID      path  int  true  "record ID"
// @Success      200  {object}  response.UtmRecord
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/utm/{utmID} [get]
func (h *UtmHandler) HandleGet(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseUintParam(ctx, h.IDParam())
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	record, err := h.svc.Get(ctx.Request.Context(), projectID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("utm record", "ID", id))
			return
		}

		err = fmt.Errorf("HandleGet -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, h.withLink(record))
}

// HandleUpdate godoc
// @Summary      Update a UTM record
// @Description  Replaces the record's parameters, keeping its counters
// @Tags         utm
// @Accept       json
// @Produce      json
// @Param        projectID  path  int                 true  "project ID"
// @Param        utmID      path  int                 true  "record ID"
// @Param        request    body  request.UtmRequest  true  "new field values"
// @Success      200  {object}  response.UtmRecord
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/utm/{utmID} [put]
func (h *UtmHandler) HandleUpdate(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseUintParam(ctx, h.IDParam())
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UtmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.Update(ctx.Request.Context(), projectID, id, req.ToModel(projectID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("utm record", "ID", id))
			return
		}

		err = fmt.Errorf("HandleUpdate -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, h.withLink(updated))
}

// HandleTrack godoc
// @Summary      Track a UTM event
// @Description  Atomically increments the record's visit or conversion counter
// @Tags         utm
// @Accept       json
// @Produce      json
// @Param        projectID  path  int                      true  "project ID"
// @Param        utmID      path  int                      true  "record ID"
// @Param        request    body  request.UtmTrackRequest  true  "event to record"
// @Success      200  {object}  response.OK
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/utm/{utmID}/track [post]
func (h *UtmHandler) HandleTrack(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseUintParam(ctx, h.IDParam())
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UtmTrackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.Track(ctx.Request.Context(), projectID, id, req.Event); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownUtmEvent):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrNotFound):
			response.RenderErr(ctx, response.ErrNotFound("utm record", "ID", id))
		default:
			err = fmt.Errorf("HandleTrack -> h.svc.Track -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.OK{Message: req.Event + " recorded"})
}

// HandleBulk godoc
// @Summary      Bulk delete or reset UTM records
// @Description  Deletes the selected records or zeroes their counters
// @Tags         utm
// @Accept       json
// @Produce      json
// @Param        projectID  path  int                     true  "project ID"
// @Param        request    body  request.UtmBulkRequest  true  "action and record IDs"
// @Success      200  {object}  response.UtmBulkResult
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/utm/bulk [post]
func (h *UtmHandler) HandleBulk(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UtmBulkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	affected, err := h.svc.Bulk(ctx.Request.Context(), projectID, req.Action, req.IDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownBulkAction), errors.Is(err, service.ErrEmptyBulkSelection):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleBulk -> h.svc.Bulk -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.UtmBulkResult{
		Action:   req.Action,
		Affected: affected,
	})
}

// HandleResolve godoc
// @Summary      Resolve UTM parameters to a record
// @Description  Maps utm_* query values to the most recent matching record
// @Tags         utm
// @Produce      json
// @Param        projectID  path   int     true   "project ID"
// @Param        source     query  string  false  "utm_source"
// @Param        medium     query  string  false  "utm_medium"
// @Param        campaign   query  string  false  "utm_campaign"
// @Success      200  {object}  response.UtmRecord
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/utm/resolve [get]
func (h *UtmHandler) HandleResolve(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	record, err := h.svc.Resolve(ctx.Request.Context(), projectID, lookupFromQuery(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("utm record", "lookup", ctx.Request.URL.RawQuery))
			return
		}

		err = fmt.Errorf("HandleResolve -> h.svc.Resolve -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, h.withLink(record))
}

// HandleStats godoc
// @Summary      Get UTM statistics
// @Description  Totals visits and conversions across the project's records
// @Tags         utm
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Success      200  {object}  domain.UtmStats
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/utm/stats [get]
func (h *UtmHandler) HandleStats(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	stats, err := h.svc.Stats(ctx.Request.Context(), projectID)
	if err != nil {
		err = fmt.Errorf("HandleStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleExport godoc
// @Summary      Export UTM records as CSV
// @Description  Streams the project's records, optionally filtered, as a CSV attachment
// @Tags         utm
// @Produce      text/csv
// @Param        projectID  path   int     true   "project ID"
// @Param        source     query  string  false  "filter by source"
// @Param        medium     query  string  false  "filter by medium"
// @Param        campaign   query  string  false  "filter by campaign"
// @Success      200  {string}  string
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/utm/export [get]
func (h *UtmHandler) HandleExport(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	project, err := h.projects.GetProject(ctx.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("project", "ID", projectID))
			return
		}

		err = fmt.Errorf("HandleExport -> h.projects.GetProject -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	records, err := h.svc.Find(ctx.Request.Context(), projectID, lookupFromQuery(ctx))
	if err != nil {
		err = fmt.Errorf("HandleExport -> h.svc.Find -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	filename, body := h.svc.ExportCSV(project, records, time.Now())

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}

// HandleSnippet godoc
// @Summary      Get the tracking snippet
// @Description  Returns the copyable client-side tracker script for the project
// @Tags         utm
// @Produce      text/javascript
// @Param        projectID  path  int  true  "project ID"
// @Success      200  {string}  string
// @Failure      400  {object}  response.Err
// @Router       /projects/{projectID}/utm/snippet [get]
func (h *UtmHandler) HandleSnippet(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	snippet := h.svc.Snippet(h.conf.BaseURL, projectID)

	ctx.Data(http.StatusOK, "text/javascript; charset=utf-8", []byte(snippet))
}
