package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

// clockFormat matches a 24-hour "HH:MM" wall-clock value.
var clockFormat = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type AgendaDayRequest struct {
	Title    string `json:"title"`
	Date     Date   `json:"date"`
	Position int    `json:"position"`
}

func (req AgendaDayRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Position, validation.Min(0)),
	)
}

func (req AgendaDayRequest) ToModel() domain.AgendaDay {
	return domain.AgendaDay{
		Title:    req.Title,
		Date:     req.Date.Ptr(),
		Position: req.Position,
	}
}

type AgendaSessionRequest struct {
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location"`
}

func (req AgendaSessionRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.StartTime, validation.Match(clockFormat)),
		validation.Field(&req.EndTime, validation.Match(clockFormat)),
	)
}

func (req AgendaSessionRequest) ToModel() domain.AgendaSession {
	return domain.AgendaSession{
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
	}
}

type AgendaItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	SpeakerIDs  []uint `json:"speaker_ids"`
}

func (req AgendaItemRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.StartTime, validation.Match(clockFormat)),
		validation.Field(&req.EndTime, validation.Match(clockFormat)),
	)
}

func (req AgendaItemRequest) ToModel() domain.AgendaItem {
	return domain.AgendaItem{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
}
