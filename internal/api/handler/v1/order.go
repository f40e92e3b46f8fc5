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

type OrderService interface {
	ResourceService[domain.Order]

	Stats(ctx context.Context, projectID uint) (domain.OrderStats, error)
	Checkout(ctx context.Context, projectID, orderID uint) (string, error)
}

// OrderHandler extends the generic entity routes with revenue
// statistics and Stripe checkout.
type OrderHandler struct {
	*ResourceHandler[request.OrderRequest, domain.Order]

	svc OrderService
}

func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{
		ResourceHandler: NewResourceHandler[request.OrderRequest, domain.Order]("order", svc),
		svc:             svc,
	}
}

// HandleOrderStats godoc
// @Summary      Get order statistics
// @Description  Totals revenue and counts orders per status bucket
// @Tags         orders
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Success      200  {object}  domain.OrderStats
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID}/orders/stats [get]
func (h *OrderHandler) HandleOrderStats(ctx *gin.Context) {
	projectID, respErr := parseUintParam(ctx, "projectID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	stats, err := h.svc.Stats(ctx.Request.Context(), projectID)
	if err != nil {
		err = fmt.Errorf("HandleOrderStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleCheckout godoc
// @Summary      Start a checkout
// @Description  Creates a payment intent for the order and returns its client secret
// @Tags         orders
// @Produce      json
// @Param        projectID  path  int  true  "project ID"
// @Param        orderID    path  int  true  "order ID"
// @Success      200  {object}  response.Checkout
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Failure      503  {object}  response.Err
// @Router       /projects/{projectID}/orders/{orderID}/checkout [post]
func (h *OrderHandler) HandleCheckout(ctx *gin.Context) {
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

	clientSecret, err := h.svc.Checkout(ctx.Request.Context(), projectID, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentsNotConfigured):
			response.RenderErr(ctx, response.ErrServiceUnavailable(err))
		case errors.Is(err, service.ErrNotFound):
			response.RenderErr(ctx, response.ErrNotFound("order", "ID", id))
		default:
			err = fmt.Errorf("HandleCheckout -> h.svc.Checkout -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.Checkout{ClientSecret: clientSecret})
}
