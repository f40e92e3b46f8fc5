package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

type AttendeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	JobTitle   string `json:"job_title"`
	TicketType string `json:"ticket_type"`
	CheckedIn  bool   `json:"checked_in"`
}

func (req AttendeeRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

func (req AttendeeRequest) ToModel(projectID uint) domain.Attendee {
	return domain.Attendee{
		ProjectID:  projectID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Company:    req.Company,
		JobTitle:   req.JobTitle,
		TicketType: req.TicketType,
		CheckedIn:  req.CheckedIn,
	}
}

type DelegateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Country  string `json:"country"`
	Category string `json:"category"`
}

func (req DelegateRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

func (req DelegateRequest) ToModel(projectID uint) domain.Delegate {
	return domain.Delegate{
		ProjectID: projectID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Country:   req.Country,
		Category:  req.Category,
	}
}

type SpeakerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
	Bio      string `json:"bio"`
	Photo    string `json:"photo"`
	Topic    string `json:"topic"`
	LinkedIn string `json:"linkedin"`
}

func (req SpeakerRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Bio, validation.Length(0, 2000)),
	)
}

func (req SpeakerRequest) ToModel(projectID uint) domain.Speaker {
	return domain.Speaker{
		ProjectID: projectID,
		Name:      req.Name,
		Email:     req.Email,
		JobTitle:  req.JobTitle,
		Company:   req.Company,
		Bio:       req.Bio,
		Photo:     req.Photo,
		Topic:     req.Topic,
		LinkedIn:  req.LinkedIn,
	}
}
