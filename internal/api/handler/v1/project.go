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

type ProjectService interface {
	CreateProject(ctx context.Context, project domain.Project) (domain.Project, error)
	GetProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id uint) (domain.Project, error)
	UpdateProject(ctx context.Context, id uint, project domain.Project) (domain.Project, error)
	DeleteProject(ctx context.Context, id uint) error
	GetStats(ctx context.Context, id uint) (domain.ProjectStats, error)
}

type ProjectHandler struct {
	svc ProjectService
}

func NewProjectHandler(svc ProjectService) *ProjectHandler {
	return &ProjectHandler{
		svc: svc,
	}
}

// HandleListProjects godoc
// @Summary      List projects
// @Description  Retrieves all projects, newest first
// @Tags         projects
// @Produce      json
// @Success      200  {array}   domain.Project
// @Failure      500  {object}  response.Err
// @Router       /projects [get]
func (h *ProjectHandler) HandleListProjects(ctx *gin.Context) {
	projects, err := h.svc.GetProjects(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListProjects -> h.svc.GetProjects -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// HandleCreateProject godoc
// @Summary      Create a project
// @Description  Creates a new event project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request  body  request.ProjectRequest  true  "project to create"
// @Success      201  {object}  domain.Project
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects [post]
func (h *ProjectHandler) HandleCreateProject(ctx *gin.Context) {
	var req request.ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateProject(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleCreateProject -> h.svc.CreateProject -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetProject godoc
// @Summary      Get a project
// @Description  Retrieves a project by ID
// @Tags         projects
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Success      200  {object}  domain.Project
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID} [get]
func (h *ProjectHandler) HandleGetProject(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	project, err := h.svc.GetProject(ctx.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("project", "ID", projectID))
			return
		}

		err = fmt.Errorf("HandleGetProject -> h.svc.GetProject -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// HandleUpdateProject godoc
// @Summary      Update a project
// @Description  Replaces the project's mutable fields
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        projectID  path  int                     true  "project ID"
// @Param        request    body  request.ProjectRequest  true  "new field values"
// @Success      200  {object}  domain.Project
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID} [put]
func (h *ProjectHandler) HandleUpdateProject(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateProject(ctx.Request.Context(), projectID, req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("project", "ID", projectID))
			return
		}

		err = fmt.Errorf("HandleUpdateProject -> h.svc.UpdateProject -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteProject godoc
// @Summary      Delete a project
// @Description  Removes the project and every row it owns in one transaction
// @Tags         projects
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Success      200  {object}  response.OK
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID} [delete]
func (h *ProjectHandler) HandleDeleteProject(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteProject(ctx.Request.Context(), projectID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("project", "ID", projectID))
			return
		}

		err = fmt.Errorf("HandleDeleteProject -> h.svc.DeleteProject -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OK{Message: "project deleted"})
}

// HandleProjectStats godoc
// @Summary      Get project statistics
// @Description  Counts the project's people and organization rows
// @Tags         projects
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Success      200  {object}  domain.ProjectStats
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/stats [get]
func (h *ProjectHandler) HandleProjectStats(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	stats, err := h.svc.GetStats(ctx.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("project", "ID", projectID))
			return
		}

		err = fmt.Errorf("HandleProjectStats -> h.svc.GetStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
