package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventdeskhq/eventdesk-api/internal/repository"
)

var (
	ErrNotFound            = repository.ErrNotFound
	ErrDuplicate           = repository.ErrDuplicate
	ErrProjectNotFound     = errors.New("project not found")
	ErrSpeakerNotInProject = repository.ErrSpeakerNotInProject
)

// ResourceRepository is the persistence contract of the generic
// resource service. *repository.Resource[M] satisfies it.
type ResourceRepository[M any] interface {
	Create(ctx context.Context, m M) (M, error)
	ListByProject(ctx context.Context, projectID uint) ([]M, error)
	GetByID(ctx context.Context, projectID, id uint) (M, error)
	Update(ctx context.Context, projectID, id uint, m M) (M, error)
	Delete(ctx context.Context, projectID, id uint) error
	CountByProject(ctx context.Context, projectID uint) (int64, error)
}

// ProjectChecker verifies tenant existence before rows are attached.
type ProjectChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// ResourceService implements the collection/item operations shared by
// every flat project-scoped entity.
type ResourceService[M any] struct {
	repo     ResourceRepository[M]
	projects ProjectChecker
}

func NewResourceService[M any](repo ResourceRepository[M], projects ProjectChecker) *ResourceService[M] {
	return &ResourceService[M]{
		repo:     repo,
		projects: projects,
	}
}

func (s *ResourceService[M]) Create(ctx context.Context, projectID uint, m M) (M, error) {
	var zero M

	exists, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return zero, fmt.Errorf("s.projects.Exists -> %w", err)
	}
	if !exists {
		return zero, ErrProjectNotFound
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return zero, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ResourceService[M]) List(ctx context.Context, projectID uint) ([]M, error) {
	ms, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByProject -> %w", err)
	}

	return ms, nil
}

func (s *ResourceService[M]) Get(ctx context.Context, projectID, id uint) (M, error) {
	m, err := s.repo.GetByID(ctx, projectID, id)
	if err != nil {
		var zero M
		return zero, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	return m, nil
}

func (s *ResourceService[M]) Update(ctx context.Context, projectID, id uint, m M) (M, error) {
	updated, err := s.repo.Update(ctx, projectID, id, m)
	if err != nil {
		var zero M
		return zero, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ResourceService[M]) Delete(ctx context.Context, projectID, id uint) error {
	if err := s.repo.Delete(ctx, projectID, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
