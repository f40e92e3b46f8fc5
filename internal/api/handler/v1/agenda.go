package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventdeskhq/eventdesk-api/internal/api/handler/v1/request"
	"github.com/eventdeskhq/eventdesk-api/internal/api/handler/v1/response"
	"github.com/eventdeskhq/eventdesk-api/internal/domain"
	"github.com/eventdeskhq/eventdesk-api/internal/service"
)

type AgendaService interface {
	GetAgenda(ctx context.Context, projectID uint) ([]domain.AgendaDay, error)

	CreateDay(ctx context.Context, projectID uint, day domain.AgendaDay) (domain.AgendaDay, error)
	UpdateDay(ctx context.Context, projectID, dayID uint, day domain.AgendaDay) (domain.AgendaDay, error)
	DeleteDay(ctx context.Context, projectID, dayID uint) error

	CreateSession(ctx context.Context, projectID, dayID uint, session domain.AgendaSession) (domain.AgendaSession, error)
	UpdateSession(ctx context.Context, projectID, sessionID uint, session domain.AgendaSession) (domain.AgendaSession, error)
	DeleteSession(ctx context.Context, projectID, sessionID uint) error

	CreateItem(ctx context.Context, projectID, sessionID uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error)
	UpdateItem(ctx context.Context, projectID, itemID uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error)
	DeleteItem(ctx context.Context, projectID, itemID uint) error
}

// AgendaHandler serves the day -> session -> item hierarchy.
type AgendaHandler struct {
	svc AgendaService
}

func NewAgendaHandler(svc AgendaService) *AgendaHandler {
	return &AgendaHandler{
		svc: svc,
	}
}

// renderAgendaErr maps the shared agenda failure modes. The caller
// handles success and any route-specific errors first.
func renderAgendaErr(ctx *gin.Context, op, resource string, id uint, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		response.RenderErr(ctx, response.ErrNotFound("project", "ID", ctx.Param("projectID")))
	case errors.Is(err, service.ErrNotFound):
		response.RenderErr(ctx, response.ErrNotFound(resource, "ID", id))
	case errors.Is(err, service.ErrSpeakerNotInProject):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleGetAgenda godoc
// @Summary      Get the agenda tree
// @Description  Retrieves the project's days with nested sessions, items and speakers
// @Tags         agenda
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Success      200  {array}   domain.AgendaDay
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/agenda [get]
func (h *AgendaHandler) HandleGetAgenda(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	days, err := h.svc.GetAgenda(ctx.Request.Context(), projectID)
	if err != nil {
		err = fmt.Errorf("HandleGetAgenda -> h.svc.GetAgenda -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, days)
}

// HandleCreateDay godoc
// @Summary      Create an agenda day
// @Tags         agenda
// @Accept       json
// @Produce      json
// @Param        projectID  path  int                       true  "project ID"
// @Param        request    body  request.AgendaDayRequest  true  "day to create"
// @Success      201  {object}  domain.AgendaDay
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/agenda/days [post]
func (h *AgendaHandler) HandleCreateDay(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AgendaDayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateDay(ctx.Request.Context(), projectID, req.ToModel())
	if err != nil {
		renderAgendaErr(ctx, "HandleCreateDay -> h.svc.CreateDay", "agenda day", 0, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateDay godoc
// @Summary      Update an agenda day
// @Tags         agenda
// @Accept       json
// @Produce      json
// @Param        projectID  path  int                       true  "project ID"
// @Param        dayID      path  int                       true  "day ID"
// @Param        request    body  request.AgendaDayRequest  true  "new field values"
// @Success      200  {object}  domain.AgendaDay
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/agenda/days/{dayID} [put]
func (h *AgendaHandler) HandleUpdateDay(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	dayID, respErr := parseUintParam(ctx, "dayID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AgendaDayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateDay(ctx.Request.Context(), projectID, dayID, req.ToModel())
	if err != nil {
		renderAgendaErr(ctx, "HandleUpdateDay -> h.svc.UpdateDay", "agenda day", dayID, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteDay godoc
// @Summary      Delete an agenda day
// @Description  Removes the day with its sessions and items in one transaction
// @Tags         agenda
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Param        dayID      path  int  true  "day ID"
// @Success      200  {object}  response.OK
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/agenda/days/{dayID} [delete]
func (h *AgendaHandler) HandleDeleteDay(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	dayID, respErr := parseUintParam(ctx, "dayID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteDay(ctx.Request.Context(), projectID, dayID); err != nil {
		renderAgendaErr(ctx, "HandleDeleteDay -> h.svc.DeleteDay", "agenda day", dayID, err)
		return
	}

	ctx.JSON(http.StatusOK, response.OK{Message: "agenda day deleted"})
}

// HandleCreateSession godoc
// @Summary      Create an agenda session
// @Tags         agenda
// @Accept       json
// @Produce      json
// @Param        projectID  path  int                           true  "project ID"
// @Param        dayID      path  int                           true  "day ID"
// @Param        request    body  request.AgendaSessionRequest  true  "session to create"
// @Success      201  {object}  domain.AgendaSession
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/agenda/days/{dayID}/sessions [post]
func (h *AgendaHandler) HandleCreateSession(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	dayID, respErr := parseUintParam(ctx, "dayID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AgendaSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateSession(ctx.Request.Context(), projectID, dayID, req.ToModel())
	if err != nil {
		renderAgendaErr(ctx, "HandleCreateSession -> h.svc.CreateSession", "agenda day", dayID, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateSession godoc
// @Summary      Update an agenda session
// @Tags         agenda
// @Accept       json
// @Produce      json
// @Param        projectID  path  int                           true  "project ID"
// @Param        sessionID  path  int                           true  "session ID"
// @Param        request    body  request.AgendaSessionRequest  true  "new field values"
// @Success      200  {object}  domain.AgendaSession
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/agenda/sessions/{sessionID} [put]
func (h *AgendaHandler) HandleUpdateSession(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sessionID, respErr := parseUintParam(ctx, "sessionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AgendaSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateSession(ctx.Request.Context(), projectID, sessionID, req.ToModel())
	if err != nil {
		renderAgendaErr(ctx, "HandleUpdateSession -> h.svc.UpdateSession", "agenda session", sessionID, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteSession godoc
// @Summary      Delete an agenda session
// @Description  Removes the session with its items in one transaction
// @Tags         agenda
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Param        sessionID  path  int  true  "session ID"
// @Success      200  {object}  response.OK
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/agenda/sessions/{sessionID} [delete]
func (h *AgendaHandler) HandleDeleteSession(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sessionID, respErr := parseUintParam(ctx, "sessionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteSession(ctx.Request.Context(), projectID, sessionID); err != nil {
		renderAgendaErr(ctx, "HandleDeleteSession -> h.svc.DeleteSession", "agenda session", sessionID, err)
		return
	}

	ctx.JSON(http.StatusOK, response.OK{Message: "agenda session deleted"})
}

// HandleCreateItem godoc
// @Summary      Create an agenda item
// @Description  Creates an item and links its speakers; every speaker must belong to the project
// @Tags         agenda
// @Accept       json
// @Produce      json
// @Param        projectID  path  int                        true  "project ID"
// @Param        sessionID  path  int                        true  "session ID"
// @Param        request    body  request.AgendaItemRequest  true  "item to create"
// @Success      201  {object}  domain.AgendaItem
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/agenda/sessions/{sessionID}/items [post]
func (h *AgendaHandler) HandleCreateItem(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sessionID, respErr := parseUintParam(ctx, "sessionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AgendaItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateItem(ctx.Request.Context(), projectID, sessionID, req.ToModel(), req.SpeakerIDs)
	if err != nil {
		renderAgendaErr(ctx, "HandleCreateItem -> h.svc.CreateItem", "agenda session", sessionID, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateItem godoc
// @Summary      Update an agenda item
// @Description  Replaces the item's fields and its speaker links
// @Tags         agenda
// @Accept       json
// @Produce      json
// @Param        projectID  path  int                        true  "project ID"
// @Param        itemID     path  int                        true  "item ID"
// @Param        request    body  request.AgendaItemRequest  true  "new field values"
// @Success      200  {object}  domain.AgendaItem
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/agenda/items/{itemID} [put]
func (h *AgendaHandler) HandleUpdateItem(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	itemID, respErr := parseUintParam(ctx, "itemID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AgendaItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateItem(ctx.Request.Context(), projectID, itemID, req.ToModel(), req.SpeakerIDs)
	if err != nil {
		renderAgendaErr(ctx, "HandleUpdateItem -> h.svc.UpdateItem", "agenda item", itemID, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteItem godoc
// @Summary      Delete an agenda item
// @Description  Removes the item and its speaker links in one transaction
// @Tags         agenda
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Param        itemID     path  int  true  "item ID"
// @Success      200  {object}  response.OK
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/agenda/items/{itemID} [delete]
func (h *AgendaHandler) HandleDeleteItem(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	itemID, respErr := parseUintParam(ctx, "itemID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteItem(ctx.Request.Context(), projectID, itemID); err != nil {
		renderAgendaErr(ctx, "HandleDeleteItem -> h.svc.DeleteItem", "agenda item", itemID, err)
		return
	}

	ctx.JSON(http.StatusOK, response.OK{Message: "agenda item deleted"})
}
