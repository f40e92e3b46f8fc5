package repository

import (
	"context"

	"github.com/eventdeskhq/eventdesk-api/internal/repository/dao"
)

var (
	ErrNotFound            = dao.ErrNotFound
	ErrDuplicate           = dao.ErrDuplicate
	ErrSpeakerNotInProject = dao.ErrSpeakerNotInProject
	ErrUnknownUtmEvent     = dao.ErrUnknownUtmEvent
)

// EntityDAO is the storage contract every flat project-scoped entity
// shares. *dao.EntityDAO[M] satisfies it.
type EntityDAO[M any] interface {
	Insert(ctx context.Context, m M) (M, error)
	FindAllByProject(ctx context.Context, projectID uint) ([]M, error)
	FindByID(ctx context.Context, projectID, id uint) (M, error)
	Update(ctx context.Context, projectID, id uint, m M) (M, error)
	Delete(ctx context.Context, projectID, id uint) error
	CountByProject(ctx context.Context, projectID uint) (int64, error)
}

// Resource is the generic repository instantiated once per entity type.
type Resource[M any] struct {
	dao EntityDAO[M]
}

func NewResource[M any](dao EntityDAO[M]) *Resource[M] {
	return &Resource[M]{
		dao: dao,
	}
}

func (r *Resource[M]) Create(ctx context.Context, m M) (M, error) {
	return r.dao.Insert(ctx, m)
}

func (r *Resource[M]) ListByProject(ctx context.Context, projectID uint) ([]M, error) {
	return r.dao.FindAllByProject(ctx, projectID)
}

func (r *Resource[M]) GetByID(ctx context.Context, projectID, id uint) (M, error) {
	return r.dao.FindByID(ctx, projectID, id)
}

func (r *Resource[M]) Update(ctx context.Context, projectID, id uint, m M) (M, error) {
	return r.dao.Update(ctx, projectID, id, m)
}

func (r *Resource[M]) Delete(ctx context.Context, projectID, id uint) error {
	return r.dao.Delete(ctx, projectID, id)
}

func (r *Resource[M]) CountByProject(ctx context.Context, projectID uint) (int64, error) {
	return r.dao.CountByProject(ctx, projectID)
}
