package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

type UtmRequest struct {
	Name       string `json:"name"`
	WebsiteURL string `json:"website_url"`
	Source     string `json:"source"`
	Medium     string `json:"medium"`
	Campaign   string `json:"campaign"`
	Term       string `json:"term"`
	Content    string `json:"content"`
}

func (req UtmRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Source, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Name, validation.Length(0, 100)),
	)
}

func (req UtmRequest) ToModel(projectID uint) domain.UtmRecord {
	return domain.UtmRecord{
		ProjectID:  projectID,
		Name:       req.Name,
		WebsiteURL: req.WebsiteURL,
		Source:     req.Source,
		Medium:     req.Medium,
		Campaign:   req.Campaign,
		Term:       req.Term,
		Content:    req.Content,
	}
}

type UtmBulkRequest struct {
	Action string `json:"action"`
	IDs    []uint `json:"ids"`
}

func (req UtmBulkRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Action, validation.Required, validation.In("delete", "reset")),
		validation.Field(&req.IDs, validation.Required),
	)
}

type UtmTrackRequest struct {
	Event string `json:"event"`
}

func (req UtmTrackRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Event, validation.Required, validation.In("visit", "conversion")),
	)
}
