package dao

import (
	"errors"

	"gorm.io/gorm"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

func InitTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&domain.AgendaItem{}, "Speakers", &domain.AgendaItemSpeaker{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&domain.Project{},
		&domain.Attendee{},
		&domain.Delegate{},
		&domain.Speaker{},
		&domain.Sponsor{},
		&domain.Exhibitor{},
		&domain.Partner{},
		&domain.MediaPartner{},
		&domain.Lead{},
		&domain.Enquiry{},
		&domain.Ticket{},
		&domain.Order{},
		&domain.MarketingCampaign{},
		&domain.UtmRecord{},
		&domain.AgendaDay{},
		&domain.AgendaSession{},
		&domain.AgendaItem{},
	)
}
