package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

type ProjectDAO struct {
	db *gorm.DB
}

func NewProjectDAO(db *gorm.DB) *ProjectDAO {
	return &ProjectDAO{
		db: db,
	}
}

func (d *ProjectDAO) Insert(ctx context.Context, project domain.Project) (domain.Project, error) {
	result := d.db.WithContext(ctx).Create(&project)
	if result.Error != nil {
		return domain.Project{}, result.Error
	}

	return project, nil
}

func (d *ProjectDAO) FindAll(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}

	return projects, nil
}

func (d *ProjectDAO) FindByID(ctx context.Context, id uint) (domain.Project, error) {
	var project domain.Project

	result := d.db.WithContext(ctx).First(&project, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domain.Project{}, ErrNotFound
		}

		return domain.Project{}, result.Error
	}

	return project, nil
}

func (d *ProjectDAO) Update(ctx context.Context, id uint, project domain.Project) (domain.Project, error) {
	result := d.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(&project)
	if result.Error != nil {
		return domain.Project{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Project{}, ErrNotFound
	}

	return d.FindByID(ctx, id)
}

// Delete removes a project and every child row it owns in one
// transaction, leaf tables first so no orphans survive a failure.
func (d *ProjectDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM agenda_item_speakers WHERE agenda_item_id IN (
				SELECT id FROM agenda_items WHERE agenda_session_id IN (
					SELECT id FROM agenda_sessions WHERE agenda_day_id IN (
						SELECT id FROM agenda_days WHERE project_id = ?)))`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM agenda_items WHERE agenda_session_id IN (
				SELECT id FROM agenda_sessions WHERE agenda_day_id IN (
					SELECT id FROM agenda_days WHERE project_id = ?))`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM agenda_sessions WHERE agenda_day_id IN (
				SELECT id FROM agenda_days WHERE project_id = ?)`, id).Error; err != nil {
			return err
		}

		children := []interface{}{
			&domain.AgendaDay{},
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
		}
		for _, child := range children {
			if err := tx.Where("project_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&domain.Project{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

func (d *ProjectDAO) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&domain.Project{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Stats counts the child rows shown on the project dashboard.
func (d *ProjectDAO) Stats(ctx context.Context, id uint) (domain.ProjectStats, error) {
	var stats domain.ProjectStats

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&domain.Speaker{}, &stats.Speakers},
		{&domain.Sponsor{}, &stats.Sponsors},
		{&domain.Exhibitor{}, &stats.Exhibitors},
		{&domain.Delegate{}, &stats.Delegates},
		{&domain.Partner{}, &stats.Partners},
		{&domain.MediaPartner{}, &stats.MediaPartners},
		{&domain.Attendee{}, &stats.Attendees},
	}
	for _, c := range counts {
		result := d.db.WithContext(ctx).Model(c.model).Where("project_id = ?", id).Count(c.dest)
		if result.Error != nil {
			return domain.ProjectStats{}, result.Error
		}
	}

	return stats, nil
}
