package service

import (
	"context"
	"fmt"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project domain.Project) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id uint) (domain.Project, error)
	Update(ctx context.Context, id uint, project domain.Project) (domain.Project, error)
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	Stats(ctx context.Context, id uint) (domain.ProjectStats, error)
}

type ProjectService struct {
	repo ProjectRepository
}

func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	created, err := s.repo.Create(ctx, project)
	if err != nil {
		return domain.Project{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ProjectService) GetProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return projects, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id uint) (domain.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	return project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id uint, project domain.Project) (domain.Project, error) {
	updated, err := s.repo.Update(ctx, id, project)
	if err != nil {
		return domain.Project{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteProject removes the project and all of its child rows; the
// repository performs the cascade in one transaction.
func (s *ProjectService) DeleteProject(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *ProjectService) GetStats(ctx context.Context, id uint) (domain.ProjectStats, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return domain.ProjectStats{}, fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if !exists {
		return domain.ProjectStats{}, ErrNotFound
	}

	stats, err := s.repo.Stats(ctx, id)
	if err != nil {
		return domain.ProjectStats{}, fmt.Errorf("s.repo.Stats -> %w", err)
	}

	return stats, nil
}
