package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

type ProjectRequest struct {
	Name        string `json:"name"`
	Year        Number `json:"year"`
	Venue       string `json:"venue"`
	Website     string `json:"website"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
	Image       string `json:"image"`
}

func (req ProjectRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Website, is.URL),
		validation.Field(&req.Currency, validation.Length(3, 3)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
	)
}

func (req ProjectRequest) ToDomain() domain.Project {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	return domain.Project{
		Name:        req.Name,
		Year:        req.Year.Int(),
		Venue:       req.Venue,
		Website:     req.Website,
		Currency:    currency,
		Description: req.Description,
		StartDate:   req.StartDate.Ptr(),
		EndDate:     req.EndDate.Ptr(),
		Image:       req.Image,
	}
}
