package service

import (
	"context"
	"fmt"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

type AgendaRepository interface {
	Tree(ctx context.Context, projectID uint) ([]domain.AgendaDay, error)

	CreateDay(ctx context.Context, day domain.AgendaDay) (domain.AgendaDay, error)
	GetDay(ctx context.Context, projectID, dayID uint) (domain.AgendaDay, error)
	UpdateDay(ctx context.Context, projectID, dayID uint, day domain.AgendaDay) (domain.AgendaDay, error)
	DeleteDay(ctx context.Context, projectID, dayID uint) error

	CreateSession(ctx context.Context, projectID uint, session domain.AgendaSession) (domain.AgendaSession, error)
	GetSession(ctx context.Context, projectID, sessionID uint) (domain.AgendaSession, error)
	UpdateSession(ctx context.Context, projectID, sessionID uint, session domain.AgendaSession) (domain.AgendaSession, error)
	DeleteSession(ctx context.Context, projectID, sessionID uint) error

	CreateItem(ctx context.Context, projectID uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error)
	GetItem(ctx context.Context, projectID, itemID uint) (domain.AgendaItem, error)
	UpdateItem(ctx context.Context, projectID, itemID uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error)
	DeleteItem(ctx context.Context, projectID, itemID uint) error
}

// AgendaService manages the day -> session -> item hierarchy. All
// dependent deletes happen transactionally in the repository, so a
// removed session never leaves orphaned items behind.
type AgendaService struct {
	repo     AgendaRepository
	projects ProjectChecker
}

func NewAgendaService(repo AgendaRepository, projects ProjectChecker) *AgendaService {
	return &AgendaService{
		repo:     repo,
		projects: projects,
	}
}

func (s *AgendaService) GetAgenda(ctx context.Context, projectID uint) ([]domain.AgendaDay, error) {
	days, err := s.repo.Tree(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Tree -> %w", err)
	}

	return days, nil
}

func (s *AgendaService) CreateDay(ctx context.Context, projectID uint, day domain.AgendaDay) (domain.AgendaDay, error) {
	exists, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return domain.AgendaDay{}, fmt.Errorf("s.projects.Exists -> %w", err)
	}
	if !exists {
		return domain.AgendaDay{}, ErrProjectNotFound
	}

	day.ProjectID = projectID
	created, err := s.repo.CreateDay(ctx, day)
	if err != nil {
		return domain.AgendaDay{}, fmt.Errorf("s.repo.CreateDay -> %w", err)
	}

	return created, nil
}

func (s *AgendaService) UpdateDay(ctx context.Context, projectID, dayID uint, day domain.AgendaDay) (domain.AgendaDay, error) {
	updated, err := s.repo.UpdateDay(ctx, projectID, dayID, day)
	if err != nil {
		return domain.AgendaDay{}, fmt.Errorf("s.repo.UpdateDay -> %w", err)
	}

	return updated, nil
}

func (s *AgendaService) DeleteDay(ctx context.Context, projectID, dayID uint) error {
	if err := s.repo.DeleteDay(ctx, projectID, dayID); err != nil {
		return fmt.Errorf("s.repo.DeleteDay -> %w", err)
	}

	return nil
}

func (s *AgendaService) CreateSession(ctx context.Context, projectID, dayID uint, session domain.AgendaSession) (domain.AgendaSession, error) {
	session.AgendaDayID = dayID
	created, err := s.repo.CreateSession(ctx, projectID, session)
	if err != nil {
		return domain.AgendaSession{}, fmt.Errorf("s.repo.CreateSession -> %w", err)
	}

	return created, nil
}

func (s *AgendaService) UpdateSession(ctx context.Context, projectID, sessionID uint, session domain.AgendaSession) (domain.AgendaSession, error) {
	updated, err := s.repo.UpdateSession(ctx, projectID, sessionID, session)
	if err != nil {
		return domain.AgendaSession{}, fmt.Errorf("s.repo.UpdateSession -> %w", err)
	}

	return updated, nil
}

func (s *AgendaService) DeleteSession(ctx context.Context, projectID, sessionID uint) error {
	if err := s.repo.DeleteSession(ctx, projectID, sessionID); err != nil {
		return fmt.Errorf("s.repo.DeleteSession -> %w", err)
	}

	return nil
}

func (s *AgendaService) CreateItem(ctx context.Context, projectID, sessionID uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error) {
	item.AgendaSessionID = sessionID
	created, err := s.repo.CreateItem(ctx, projectID, item, dedupe(speakerIDs))
	if err != nil {
		return domain.AgendaItem{}, fmt.Errorf("s.repo.CreateItem -> %w", err)
	}

	return created, nil
}

func (s *AgendaService) UpdateItem(ctx context.Context, projectID, itemID uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error) {
	updated, err := s.repo.UpdateItem(ctx, projectID, itemID, item, dedupe(speakerIDs))
	if err != nil {
		return domain.AgendaItem{}, fmt.Errorf("s.repo.UpdateItem -> %w", err)
	}

	return updated, nil
}

func (s *AgendaService) DeleteItem(ctx context.Context, projectID, itemID uint) error {
	if err := s.repo.DeleteItem(ctx, projectID, itemID); err != nil {
		return fmt.Errorf("s.repo.DeleteItem -> %w", err)
	}

	return nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
