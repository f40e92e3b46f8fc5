package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

type SponsorRequest struct {
	Name         string `json:"name"`
	Tier         string `json:"tier"`
	Website      string `json:"website"`
	Logo         string `json:"logo"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	Amount       Number `json:"amount"`
}

func (req SponsorRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Tier, validation.In("platinum", "gold", "silver", "bronze")),
		validation.Field(&req.Website, is.URL),
		validation.Field(&req.ContactEmail, is.Email),
	)
}

func (req SponsorRequest) ToModel(projectID uint) domain.Sponsor {
	return domain.Sponsor{
		ProjectID:    projectID,
		Name:         req.Name,
		Tier:         req.Tier,
		Website:      req.Website,
		Logo:         req.Logo,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Amount:       req.Amount.Float(),
	}
}

type ExhibitorRequest struct {
	Name         string `json:"name"`
	BoothNumber  string `json:"booth_number"`
	Website      string `json:"website"`
	Logo         string `json:"logo"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
}

func (req ExhibitorRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Website, is.URL),
		validation.Field(&req.ContactEmail, is.Email),
	)
}

func (req ExhibitorRequest) ToModel(projectID uint) domain.Exhibitor {
	return domain.Exhibitor{
		ProjectID:    projectID,
		Name:         req.Name,
		BoothNumber:  req.BoothNumber,
		Website:      req.Website,
		Logo:         req.Logo,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
	}
}

type PartnerRequest struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Website      string `json:"website"`
	Logo         string `json:"logo"`
	ContactEmail string `json:"contact_email"`
}

func (req PartnerRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Website, is.URL),
		validation.Field(&req.ContactEmail, is.Email),
	)
}

func (req PartnerRequest) ToModel(projectID uint) domain.Partner {
	return domain.Partner{
		ProjectID:    projectID,
		Name:         req.Name,
		Type:         req.Type,
		Website:      req.Website,
		Logo:         req.Logo,
		ContactEmail: req.ContactEmail,
	}
}

type MediaPartnerRequest struct {
	Name         string `json:"name"`
	Outlet       string `json:"outlet"`
	Website      string `json:"website"`
	Logo         string `json:"logo"`
	ContactEmail string `json:"contact_email"`
}

func (req MediaPartnerRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Website, is.URL),
		validation.Field(&req.ContactEmail, is.Email),
	)
}

func (req MediaPartnerRequest) ToModel(projectID uint) domain.MediaPartner {
	return domain.MediaPartner{
		ProjectID:    projectID,
		Name:         req.Name,
		Outlet:       req.Outlet,
		Website:      req.Website,
		Logo:         req.Logo,
		ContactEmail: req.ContactEmail,
	}
}
