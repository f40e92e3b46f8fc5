package repository

import (
	"context"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

type ProjectDAO interface {
	Insert(ctx context.Context, project domain.Project) (domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, id uint) (domain.Project, error)
	Update(ctx context.Context, id uint, project domain.Project) (domain.Project, error)
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	Stats(ctx context.Context, id uint) (domain.ProjectStats, error)
}

type ProjectRepository struct {
	dao ProjectDAO
}

func NewProjectRepository(dao ProjectDAO) *ProjectRepository {
	return &ProjectRepository{
		dao: dao,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	return r.dao.Insert(ctx, project)
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	return r.dao.FindAll(ctx)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (domain.Project, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *ProjectRepository) Update(ctx context.Context, id uint, project domain.Project) (domain.Project, error) {
	return r.dao.Update(ctx, id, project)
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *ProjectRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.dao.Exists(ctx, id)
}

func (r *ProjectRepository) Stats(ctx context.Context, id uint) (domain.ProjectStats, error) {
	return r.dao.Stats(ctx, id)
}
