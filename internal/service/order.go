package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"

	"github.com/eventdeskhq/eventdesk-api/internal/config"
	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

var ErrPaymentsNotConfigured = errors.New("payment provider is not configured")

// OrderService adds references, revenue statistics and the optional
// Stripe checkout on top of the generic order CRUD.
type OrderService struct {
	*ResourceService[domain.Order]

	repo ResourceRepository[domain.Order]
	conf *config.StripeConfig
}

func NewOrderService(repo ResourceRepository[domain.Order], projects ProjectChecker, conf *config.StripeConfig) *OrderService {
	if conf != nil && conf.SecretKey != "" {
		stripe.Key = conf.SecretKey
	}

	return &OrderService{
		ResourceService: NewResourceService[domain.Order](repo, projects),
		repo:            repo,
		conf:            conf,
	}
}

// Create assigns a unique reference before persisting.
func (s *OrderService) Create(ctx context.Context, projectID uint, order domain.Order) (domain.Order, error) {
	if order.Reference == "" {
		order.Reference = uuid.NewString()
	}

	return s.ResourceService.Create(ctx, projectID, order)
}

// Stats summarizes a project's orders: revenue total and counts per
// status bucket, with zero-amount orders counted as free.
func (s *OrderService) Stats(ctx context.Context, projectID uint) (domain.OrderStats, error) {
	orders, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return domain.OrderStats{}, fmt.Errorf("s.repo.ListByProject -> %w", err)
	}

	return domain.ComputeOrderStats(orders), nil
}

// Checkout creates a Stripe PaymentIntent for an incomplete order and
// returns its client secret.
func (s *OrderService) Checkout(ctx context.Context, projectID, orderID uint) (string, error) {
	if s.conf == nil || s.conf.SecretKey == "" {
		return "", ErrPaymentsNotConfigured
	}

	order, err := s.repo.GetByID(ctx, projectID, orderID)
	if err != nil {
		return "", fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	currency := strings.ToLower(order.Currency)
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(order.Amount * 100))),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("order_reference", order.Reference)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("paymentintent.New -> %w", err)
	}

	return intent.ClientSecret, nil
}
