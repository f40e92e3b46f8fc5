package repository

import (
	"context"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
	"github.com/eventdeskhq/eventdesk-api/internal/repository/dao"
)

type UtmDAO interface {
	EntityDAO[domain.UtmRecord]

	Track(ctx context.Context, projectID, id uint, event dao.UtmEvent) error
	BulkDelete(ctx context.Context, projectID uint, ids []uint) (int64, error)
	BulkReset(ctx context.Context, projectID uint, ids []uint) (int64, error)
	FindByLookup(ctx context.Context, projectID uint, lookup dao.UtmLookup) (domain.UtmRecord, error)
	FindFiltered(ctx context.Context, projectID uint, lookup dao.UtmLookup) ([]domain.UtmRecord, error)
}

type UtmRepository struct {
	*Resource[domain.UtmRecord]

	dao UtmDAO
}

func NewUtmRepository(dao UtmDAO) *UtmRepository {
	return &UtmRepository{
		Resource: NewResource[domain.UtmRecord](dao),
		dao:      dao,
	}
}

func (r *UtmRepository) Track(ctx context.Context, projectID, id uint, event dao.UtmEvent) error {
	return r.dao.Track(ctx, projectID, id, event)
}

func (r *UtmRepository) BulkDelete(ctx context.Context, projectID uint, ids []uint) (int64, error) {
	return r.dao.BulkDelete(ctx, projectID, ids)
}

func (r *UtmRepository) BulkReset(ctx context.Context, projectID uint, ids []uint) (int64, error) {
	return r.dao.BulkReset(ctx, projectID, ids)
}

func (r *UtmRepository) FindByLookup(ctx context.Context, projectID uint, lookup dao.UtmLookup) (domain.UtmRecord, error) {
	return r.dao.FindByLookup(ctx, projectID, lookup)
}

func (r *UtmRepository) FindFiltered(ctx context.Context, projectID uint, lookup dao.UtmLookup) ([]domain.UtmRecord, error) {
	return r.dao.FindFiltered(ctx, projectID, lookup)
}
