package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

var ErrSpeakerNotInProject = errors.New("speaker does not belong to the project")

type AgendaDAO struct {
	db *gorm.DB
}

func NewAgendaDAO(db *gorm.DB) *AgendaDAO {
	return &AgendaDAO{
		db: db,
	}
}

// FindTree loads the full day -> session -> item hierarchy of a project,
// including each item's speakers.
func (d *AgendaDAO) FindTree(ctx context.Context, projectID uint) ([]domain.AgendaDay, error) {
	var days []domain.AgendaDay

	result := d.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position ASC, date ASC").
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("agenda_sessions.start_time ASC")
		}).
		Preload("Sessions.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("agenda_items.start_time ASC")
		}).
		Preload("Sessions.Items.Speakers").
		Find(&days)
	if result.Error != nil {
		return nil, result.Error
	}

	return days, nil
}

// Days.

func (d *AgendaDAO) InsertDay(ctx context.Context, day domain.AgendaDay) (domain.AgendaDay, error) {
	result := d.db.WithContext(ctx).Create(&day)
	if result.Error != nil {
		return domain.AgendaDay{}, result.Error
	}

	return day, nil
}

func (d *AgendaDAO) FindDayByID(ctx context.Context, projectID, dayID uint) (domain.AgendaDay, error) {
	var day domain.AgendaDay

	result := d.db.WithContext(ctx).First(&day, "project_id = ? AND id = ?", projectID, dayID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domain.AgendaDay{}, ErrNotFound
		}

		return domain.AgendaDay{}, result.Error
	}

	return day, nil
}

func (d *AgendaDAO) UpdateDay(ctx context.Context, projectID, dayID uint, day domain.AgendaDay) (domain.AgendaDay, error) {
	result := d.db.WithContext(ctx).
		Model(&domain.AgendaDay{}).
		Where("project_id = ? AND id = ?", projectID, dayID).
		Select("title", "date", "position").
		Updates(&day)
	if result.Error != nil {
		return domain.AgendaDay{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.AgendaDay{}, ErrNotFound
	}

	return d.FindDayByID(ctx, projectID, dayID)
}

// DeleteDay removes a day, its sessions, their items and the item
// speaker links in one transaction, leaf rows first.
func (d *AgendaDAO) DeleteDay(ctx context.Context, projectID, dayID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM agenda_item_speakers WHERE agenda_item_id IN (
				SELECT id FROM agenda_items WHERE agenda_session_id IN (
					SELECT id FROM agenda_sessions WHERE agenda_day_id = ?))`, dayID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM agenda_items WHERE agenda_session_id IN (
				SELECT id FROM agenda_sessions WHERE agenda_day_id = ?)`, dayID).Error; err != nil {
			return err
		}
		if err := tx.Where("agenda_day_id = ?", dayID).Delete(&domain.AgendaSession{}).Error; err != nil {
			return err
		}

		result := tx.Where("project_id = ? AND id = ?", projectID, dayID).Delete(&domain.AgendaDay{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

// Sessions.

func (d *AgendaDAO) InsertSession(ctx context.Context, projectID uint, session domain.AgendaSession) (domain.AgendaSession, error) {
	if _, err := d.FindDayByID(ctx, projectID, session.AgendaDayID); err != nil {
		return domain.AgendaSession{}, err
	}

	result := d.db.WithContext(ctx).Create(&session)
	if result.Error != nil {
		return domain.AgendaSession{}, result.Error
	}

	return session, nil
}

func (d *AgendaDAO) FindSessionByID(ctx context.Context, projectID, sessionID uint) (domain.AgendaSession, error) {
	var session domain.AgendaSession

	result := d.db.WithContext(ctx).
		Joins("JOIN agenda_days ON agenda_days.id = agenda_sessions.agenda_day_id").
		Where("agenda_sessions.id = ? AND agenda_days.project_id = ?", sessionID, projectID).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domain.AgendaSession{}, ErrNotFound
		}

		return domain.AgendaSession{}, result.Error
	}

	return session, nil
}

func (d *AgendaDAO) UpdateSession(ctx context.Context, projectID, sessionID uint, session domain.AgendaSession) (domain.AgendaSession, error) {
	if _, err := d.FindSessionByID(ctx, projectID, sessionID); err != nil {
		return domain.AgendaSession{}, err
	}

	result := d.db.WithContext(ctx).
		Model(&domain.AgendaSession{}).
		Where("id = ?", sessionID).
		Select("title", "start_time", "end_time", "location").
		Updates(&session)
	if result.Error != nil {
		return domain.AgendaSession{}, result.Error
	}

	return d.FindSessionByID(ctx, projectID, sessionID)
}

// DeleteSession removes a session together with its items and their
// speaker links in one transaction.
func (d *AgendaDAO) DeleteSession(ctx context.Context, projectID, sessionID uint) error {
	if _, err := d.FindSessionByID(ctx, projectID, sessionID); err != nil {
		return err
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM agenda_item_speakers WHERE agenda_item_id IN (
				SELECT id FROM agenda_items WHERE agenda_session_id = ?)`, sessionID).Error; err != nil {
			return err
		}
		if err := tx.Where("agenda_session_id = ?", sessionID).Delete(&domain.AgendaItem{}).Error; err != nil {
			return err
		}

		return tx.Delete(&domain.AgendaSession{}, sessionID).Error
	})
}

// Items.

func (d *AgendaDAO) InsertItem(ctx context.Context, projectID uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error) {
	if _, err := d.FindSessionByID(ctx, projectID, item.AgendaSessionID); err != nil {
		return domain.AgendaItem{}, err
	}
	if err := d.speakersInProject(ctx, projectID, speakerIDs); err != nil {
		return domain.AgendaItem{}, err
	}

	item.Speakers = nil
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		for _, speakerID := range speakerIDs {
			link := domain.AgendaItemSpeaker{AgendaItemID: item.ID, SpeakerID: speakerID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return domain.AgendaItem{}, err
	}

	return d.FindItemByID(ctx, projectID, item.ID)
}

func (d *AgendaDAO) FindItemByID(ctx context.Context, projectID, itemID uint) (domain.AgendaItem, error) {
	var item domain.AgendaItem

	result := d.db.WithContext(ctx).
		Joins("JOIN agenda_sessions ON agenda_sessions.id = agenda_items.agenda_session_id").
		Joins("JOIN agenda_days ON agenda_days.id = agenda_sessions.agenda_day_id").
		Where("agenda_items.id = ? AND agenda_days.project_id = ?", itemID, projectID).
		Preload("Speakers").
		First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domain.AgendaItem{}, ErrNotFound
		}

		return domain.AgendaItem{}, result.Error
	}

	return item, nil
}

// UpdateItem overwrites an item's fields and replaces its speaker set.
func (d *AgendaDAO) UpdateItem(ctx context.Context, projectID, itemID uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error) {
	if _, err := d.FindItemByID(ctx, projectID, itemID); err != nil {
		return domain.AgendaItem{}, err
	}
	if err := d.speakersInProject(ctx, projectID, speakerIDs); err != nil {
		return domain.AgendaItem{}, err
	}

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.AgendaItem{}).
			Where("id = ?", itemID).
			Select("title", "description", "start_time", "end_time").
			Updates(&item)
		if result.Error != nil {
			return result.Error
		}

		if err := tx.Where("agenda_item_id = ?", itemID).Delete(&domain.AgendaItemSpeaker{}).Error; err != nil {
			return err
		}
		for _, speakerID := range speakerIDs {
			link := domain.AgendaItemSpeaker{AgendaItemID: itemID, SpeakerID: speakerID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return domain.AgendaItem{}, err
	}

	return d.FindItemByID(ctx, projectID, itemID)
}

func (d *AgendaDAO) DeleteItem(ctx context.Context, projectID, itemID uint) error {
	if _, err := d.FindItemByID(ctx, projectID, itemID); err != nil {
		return err
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("agenda_item_id = ?", itemID).Delete(&domain.AgendaItemSpeaker{}).Error; err != nil {
			return err
		}

		return tx.Delete(&domain.AgendaItem{}, itemID).Error
	})
}

// DeleteSpeakerLinks removes every item association of a speaker. Runs
// inside the speaker delete transaction via the entity DAO cascade.
func DeleteSpeakerLinks(tx *gorm.DB, speakerID uint) error {
	return tx.Where("speaker_id = ?", speakerID).Delete(&domain.AgendaItemSpeaker{}).Error
}

func (d *AgendaDAO) speakersInProject(ctx context.Context, projectID uint, speakerIDs []uint) error {
	if len(speakerIDs) == 0 {
		return nil
	}

	var count int64
	result := d.db.WithContext(ctx).
		Model(&domain.Speaker{}).
		Where("project_id = ? AND id IN ?", projectID, speakerIDs).
		Count(&count)
	if result.Error != nil {
		return result.Error
	}
	if count != int64(len(speakerIDs)) {
		return ErrSpeakerNotInProject
	}

	return nil
}
