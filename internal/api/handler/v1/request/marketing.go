package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

type LeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Source  string `json:"source"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}

func (req LeadRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Status, validation.In("new", "contacted", "qualified", "converted", "lost")),
	)
}

func (req LeadRequest) ToModel(projectID uint) domain.Lead {
	m := domain.Lead{
		ProjectID: projectID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Source:    req.Source,
		Status:    req.Status,
		Notes:     req.Notes,
	}
	if m.Status == "" {
		m.Status = "new"
	}
	return m
}

type EnquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (req EnquiryRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Status, validation.In("open", "in_progress", "resolved", "closed")),
	)
}

func (req EnquiryRequest) ToModel(projectID uint) domain.Enquiry {
	m := domain.Enquiry{
		ProjectID: projectID,
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    req.Status,
	}
	if m.Status == "" {
		m.Status = "open"
	}
	return m
}

type CampaignRequest struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	StartDate  Date   `json:"start_date"`
	EndDate    Date   `json:"end_date"`
	TotalLeads int    `json:"total_leads"`
	Revenue    Number `json:"revenue"`
}

func (req CampaignRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Type, validation.Required),
		validation.Field(&req.Status, validation.In("draft", "active", "paused", "completed")),
		validation.Field(&req.TotalLeads, validation.Min(0)),
	)
}

func (req CampaignRequest) ToModel(projectID uint) domain.MarketingCampaign {
	m := domain.MarketingCampaign{
		ProjectID:  projectID,
		Name:       req.Name,
		Type:       req.Type,
		Status:     req.Status,
		StartDate:  req.StartDate.Ptr(),
		EndDate:    req.EndDate.Ptr(),
		TotalLeads: req.TotalLeads,
		Revenue:    req.Revenue.Float(),
	}
	if m.Status == "" {
		m.Status = "draft"
	}
	return m
}
