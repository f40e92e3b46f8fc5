package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventdeskhq/eventdesk-api/internal/api/handler/v1/response"
	"github.com/eventdeskhq/eventdesk-api/internal/service"
)

// ResourceRequest is the create/update payload contract a request type
// satisfies for entity M. Validate runs the field rules, ToModel builds
// the model scoped to its project.
type ResourceRequest[M any] interface {
	Validate() error
	ToModel(projectID uint) M
}

// ResourceService is the behavior the generic handler needs.
// *service.ResourceService[M] satisfies it.
type ResourceService[M any] interface {
	Create(ctx context.Context, projectID uint, m M) (M, error)
	List(ctx context.Context, projectID uint) ([]M, error)
	Get(ctx context.Context, projectID, id uint) (M, error)
	Update(ctx context.Context, projectID, id uint, m M) (M, error)
	Delete(ctx context.Context, projectID, id uint) error
}

// ResourceHandler serves the five collection/item routes shared by every
// flat project-scoped entity. The name parameterizes error messages and
// the route's ID parameter, e.g. "attendee" yields ":attendeeID".
type ResourceHandler[R ResourceRequest[M], M any] struct {
	name string
	svc  ResourceService[M]
}

func NewResourceHandler[R ResourceRequest[M], M any](name string, svc ResourceService[M]) *ResourceHandler[R, M] {
	return &ResourceHandler[R, M]{
		name: name,
		svc:  svc,
	}
}

// IDParam returns the route parameter name for the item routes.
func (h *ResourceHandler[R, M]) IDParam() string {
	return h.name + "ID"
}

func parseUintParam(ctx *gin.Context, name string) (uint, *response.Err) {
	raw := ctx.Param(name)

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("%v (%v) is not a valid ID", name, raw))
	}

	return uint(v), nil
}

// HandleList godoc
// @Summary      List entities in a project
// @Description  Retrieves all rows of the entity within the given project
// @Tags         resources
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Success      200  {array}   object
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/{entity} [get]
func (h *ResourceHandler[R, M]) HandleList(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ms, err := h.svc.List(ctx.Request.Context(), projectID)
	if err != nil {
		err = fmt.Errorf("HandleList -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, ms)
}

// HandleCreate godoc
// @Summary      Create an entity in a project
// @Description  Validates the payload and inserts a row scoped to the project
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Success      201  {object}  object
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/{entity} [post]
func (h *ResourceHandler[R, M]) HandleCreate(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req R
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
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			response.RenderErr(ctx, response.ErrNotFound("project", "ID", projectID))
		case errors.Is(err, service.ErrDuplicate):
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("%v already exists", h.name)))
		case errors.Is(err, service.ErrSpeakerNotInProject):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleCreate -> h.svc.Create -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGet godoc
// @Summary      Get an entity by ID
// @Description  Retrieves a single row, scoped to its project
// @Tags         resources
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Success      200  {object}  object
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/{entity}/{id} [get]
func (h *ResourceHandler[R, M]) HandleGet(ctx *gin.Context) {
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

	m, err := h.svc.Get(ctx.Request.Context(), projectID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(h.name, "ID", id))
			return
		}

		err = fmt.Errorf("HandleGet -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, m)
}

// HandleUpdate godoc
// @Summary      Update an entity
// @Description  Validates the payload and replaces the row's mutable fields
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Success      200  {object}  object
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/{entity}/{id} [put]
func (h *ResourceHandler[R, M]) HandleUpdate(ctx *gin.Context) {
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

	var req R
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
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.RenderErr(ctx, response.ErrNotFound(h.name, "ID", id))
		case errors.Is(err, service.ErrDuplicate):
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("%v already exists", h.name)))
		case errors.Is(err, service.ErrSpeakerNotInProject):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleUpdate -> h.svc.Update -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDelete godoc
// @Summary      Delete an entity
// @Description  Removes the row and its dependent rows in one transaction
// @Tags         resources
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Success      200  {object}  response.OK
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/{entity}/{id} [delete]
func (h *ResourceHandler[R, M]) HandleDelete(ctx *gin.Context) {
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

	if err := h.svc.Delete(ctx.Request.Context(), projectID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(h.name, "ID", id))
			return
		}

		err = fmt.Errorf("HandleDelete -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OK{Message: h.name + " deleted"})
}
