package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

type TicketRequest struct {
	Name      string `json:"name"`
	Price     Number `json:"price"`
	Quantity  int    `json:"quantity"`
	Sold      int    `json:"sold"`
	SaleStart Date   `json:"sale_start"`
	SaleEnd   Date   `json:"sale_end"`
}

func (req TicketRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Quantity, validation.Min(0)),
		validation.Field(&req.Sold, validation.Min(0)),
	)
}

func (req TicketRequest) ToModel(projectID uint) domain.Ticket {
	return domain.Ticket{
		ProjectID: projectID,
		Name:      req.Name,
		Price:     req.Price.Float(),
		Quantity:  req.Quantity,
		Sold:      req.Sold,
		SaleStart: req.SaleStart.Ptr(),
		SaleEnd:   req.SaleEnd.Ptr(),
	}
}

type OrderRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Amount        Number `json:"amount"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	TicketID      *uint  `json:"ticket_id"`
	Quantity      int    `json:"quantity"`
}

func (req OrderRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.CustomerName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.CustomerEmail, is.Email),
		validation.Field(&req.Currency, validation.Length(3, 3)),
		validation.Field(&req.Status, validation.In(
			string(domain.OrderPaid),
			string(domain.OrderIncomplete),
			string(domain.OrderComplete),
		)),
		validation.Field(&req.Quantity, validation.Min(0)),
	)
}

func (req OrderRequest) ToModel(projectID uint) domain.Order {
	m := domain.Order{
		ProjectID:     projectID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Amount:        req.Amount.Float(),
		Currency:      req.Currency,
		Status:        domain.OrderStatus(req.Status),
		TicketID:      req.TicketID,
		Quantity:      req.Quantity,
	}
	if m.Currency == "" {
		m.Currency = "USD"
	}
	if m.Status == "" {
		m.Status = domain.OrderIncomplete
	}
	if m.Quantity == 0 {
		m.Quantity = 1
	}
	return m
}
