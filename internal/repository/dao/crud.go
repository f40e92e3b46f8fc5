package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// EntityDAO is the generic resource store shared by every flat,
// project-scoped entity (attendees, delegates, speakers, sponsors,
// exhibitors, partners, media partners, leads, enquiries, tickets,
// orders, campaigns, UTM records). Each instantiation fixes the model
// type, the listing order and an optional delete cascade that runs
// inside the same transaction as the parent delete.
type EntityDAO[M any] struct {
	db         *gorm.DB
	orderBy    string
	cascade    CascadeFunc
	updateOmit []string
}

// CascadeFunc removes dependent rows inside the same transaction as
// the owning row's delete.
type CascadeFunc func(tx *gorm.DB, id uint) error

func NewEntityDAO[M any](db *gorm.DB, orderBy string) *EntityDAO[M] {
	return &EntityDAO[M]{
		db:      db,
		orderBy: orderBy,
	}
}

// WithCascade registers a dependent-row cleanup executed transactionally
// before the row itself is deleted.
func (d *EntityDAO[M]) WithCascade(fn CascadeFunc) *EntityDAO[M] {
	d.cascade = fn
	return d
}

// WithUpdateOmit marks server-managed columns that Update must never
// overwrite, such as tracking counters or a generated order reference.
func (d *EntityDAO[M]) WithUpdateOmit(columns ...string) *EntityDAO[M] {
	d.updateOmit = columns
	return d
}

func (d *EntityDAO[M]) Insert(ctx context.Context, m M) (M, error) {
	result := d.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			var zero M
			return zero, ErrDuplicate
		}

		var zero M
		return zero, result.Error
	}

	return m, nil
}

func (d *EntityDAO[M]) FindAllByProject(ctx context.Context, projectID uint) ([]M, error) {
	var ms []M

	result := d.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order(d.orderBy).
		Find(&ms)
	if result.Error != nil {
		return nil, result.Error
	}

	return ms, nil
}

// FindByID is scoped to the parent project: a row that exists under a
// different project is reported as not found.
func (d *EntityDAO[M]) FindByID(ctx context.Context, projectID, id uint) (M, error) {
	var m M

	result := d.db.WithContext(ctx).First(&m, "project_id = ? AND id = ?", projectID, id)
	if result.Error != nil {
		var zero M
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return zero, ErrNotFound
		}

		return zero, result.Error
	}

	return m, nil
}

// Update overwrites all columns of an existing row except its identity,
// creation time and any registered server-managed columns. A missing id
// is ErrNotFound, never an insert.
func (d *EntityDAO[M]) Update(ctx context.Context, projectID, id uint, m M) (M, error) {
	omit := append([]string{"id", "project_id", "created_at"}, d.updateOmit...)

	result := d.db.WithContext(ctx).
		Model(new(M)).
		Where("project_id = ? AND id = ?", projectID, id).
		Select("*").
		Omit(omit...).
		Updates(&m)
	if result.Error != nil {
		var zero M
		return zero, result.Error
	}
	if result.RowsAffected == 0 {
		var zero M
		return zero, ErrNotFound
	}

	return d.FindByID(ctx, projectID, id)
}

func (d *EntityDAO[M]) Delete(ctx context.Context, projectID, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if d.cascade != nil {
			if err := d.cascade(tx, id); err != nil {
				return err
			}
		}

		result := tx.Where("project_id = ? AND id = ?", projectID, id).Delete(new(M))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

func (d *EntityDAO[M]) CountByProject(ctx context.Context, projectID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(new(M)).
		Where("project_id = ?", projectID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
