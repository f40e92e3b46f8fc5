package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

type UtmEvent string

const (
	UtmVisit      UtmEvent = "visit"
	UtmConversion UtmEvent = "conversion"
)

var ErrUnknownUtmEvent = errors.New("unknown utm event")

// UtmLookup carries the filter parameters used by the resolve and find
// endpoints. Empty fields are not matched.
type UtmLookup struct {
	Source   string
	Medium   string
	Campaign string
	Term     string
	Content  string
}

type UtmDAO struct {
	*EntityDAO[domain.UtmRecord]

	db *gorm.DB
}

func NewUtmDAO(db *gorm.DB) *UtmDAO {
	return &UtmDAO{
		EntityDAO: NewEntityDAO[domain.UtmRecord](db, "created_at DESC").
			WithUpdateOmit("visits", "conversions"),
		db: db,
	}
}

// Track increments the visit or conversion counter by one using a SQL
// expression, so concurrent tracking calls never lose an update.
func (d *UtmDAO) Track(ctx context.Context, projectID, id uint, event UtmEvent) error {
	var column string
	switch event {
	case UtmVisit:
		column = "visits"
	case UtmConversion:
		column = "conversions"
	default:
		return ErrUnknownUtmEvent
	}

	result := d.db.WithContext(ctx).
		Model(&domain.UtmRecord{}).
		Where("project_id = ? AND id = ?", projectID, id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// BulkDelete removes the given records of one project in a single
// batched statement and reports how many rows matched.
func (d *UtmDAO) BulkDelete(ctx context.Context, projectID uint, ids []uint) (int64, error) {
	result := d.db.WithContext(ctx).
		Where("project_id = ? AND id IN ?", projectID, ids).
		Delete(&domain.UtmRecord{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// BulkReset zeroes the visit and conversion counters for exactly the
// given id set; records outside it are untouched.
func (d *UtmDAO) BulkReset(ctx context.Context, projectID uint, ids []uint) (int64, error) {
	result := d.db.WithContext(ctx).
		Model(&domain.UtmRecord{}).
		Where("project_id = ? AND id IN ?", projectID, ids).
		Updates(map[string]interface{}{"visits": 0, "conversions": 0})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// FindByLookup resolves UTM parameters to the most recent matching
// record, as used by the tracking snippet.
func (d *UtmDAO) FindByLookup(ctx context.Context, projectID uint, lookup UtmLookup) (domain.UtmRecord, error) {
	var record domain.UtmRecord

	result := d.lookupQuery(ctx, projectID, lookup).Order("created_at DESC").First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domain.UtmRecord{}, ErrNotFound
		}

		return domain.UtmRecord{}, result.Error
	}

	return record, nil
}

// FindFiltered returns every record of a project matching the non-empty
// lookup fields, newest first.
func (d *UtmDAO) FindFiltered(ctx context.Context, projectID uint, lookup UtmLookup) ([]domain.UtmRecord, error) {
	var records []domain.UtmRecord

	result := d.lookupQuery(ctx, projectID, lookup).Order("created_at DESC").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func (d *UtmDAO) lookupQuery(ctx context.Context, projectID uint, lookup UtmLookup) *gorm.DB {
	query := d.db.WithContext(ctx).Where("project_id = ?", projectID)

	filters := map[string]string{
		"source":   lookup.Source,
		"medium":   lookup.Medium,
		"campaign": lookup.Campaign,
		"term":     lookup.Term,
		"content":  lookup.Content,
	}
	for column, value := range filters {
		if value != "" {
			query = query.Where(column+" = ?", value)
		}
	}

	return query
}
