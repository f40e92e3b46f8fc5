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

type AttendeeService interface {
	ResourceService[domain.Attendee]

	ToggleCheckIn(ctx context.Context, projectID, id uint) (domain.Attendee, error)
	CheckInStats(ctx context.Context, projectID uint) (domain.CheckInStats, error)
}

// AttendeeHandler extends the generic entity routes with check-in
// toggling and attendance statistics.
type AttendeeHandler struct {
	*ResourceHandler[request.AttendeeRequest, domain.Attendee]

	svc AttendeeService
}

func NewAttendeeHandler(svc AttendeeService) *AttendeeHandler {
	return &AttendeeHandler{
		ResourceHandler: NewResourceHandler[request.AttendeeRequest, domain.Attendee]("attendee", svc),
		svc:             svc,
	}
}

// HandleToggleCheckIn godoc
// @Summary      Toggle attendee check-in
// @Description  Flips the check-in flag, stamping or clearing the check-in time
// @Tags         attendees
// @Produce      json
// @Param        projectID   path  int  true  "project ID"
// @Param        attendeeID  path  int  true  "attendee ID"
// @Success      200  {object}  domain.Attendee
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/attendees/{attendeeID}/checkin [post]
func (h *AttendeeHandler) HandleToggleCheckIn(ctx *gin.Context) {
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

	attendee, err := h.svc.ToggleCheckIn(ctx.Request.Context(), projectID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("attendee", "ID", id))
			return
		}

		err = fmt.Errorf("HandleToggleCheckIn -> h.svc.ToggleCheckIn -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, attendee)
}

// HandleCheckInStats godoc
// @Summary      Get attendance statistics
// @Description  Counts checked-in attendees and their share of the total
// @Tags         attendees
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Success      200  {object}  domain.CheckInStats
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/attendees/stats [get]
func (h *AttendeeHandler) HandleCheckInStats(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	stats, err := h.svc.CheckInStats(ctx.Request.Context(), projectID)
	if err != nil {
		err = fmt.Errorf("HandleCheckInStats -> h.svc.CheckInStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
