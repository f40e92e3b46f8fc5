package repository

import (
	"context"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

type AgendaDAO interface {
	FindTree(ctx context.Context, projectID uint) ([]domain.AgendaDay, error)

	InsertDay(ctx context.Context, day domain.AgendaDay) (domain.AgendaDay, error)
	FindDayByID(ctx context.Context, projectID, dayID uint) (domain.AgendaDay, error)
	UpdateDay(ctx context.Context, projectID, dayID uint, day domain.AgendaDay) (domain.AgendaDay, error)
	DeleteDay(ctx context.Context, projectID, dayID uint) error

	InsertSession(ctx context.Context, projectID uint, session domain.AgendaSession) (domain.AgendaSession, error)
	FindSessionByID(ctx context.Context, projectID, sessionID uint) (domain.AgendaSession, error)
	UpdateSession(ctx context.Context, projectID, sessionID uint, session domain.AgendaSession) (domain.AgendaSession, error)
	DeleteSession(ctx context.Context, projectID, sessionID uint) error

	InsertItem(ctx context.Context, projectID uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error)
	FindItemByID(ctx context.Context, projectID, itemID uint) (domain.AgendaItem, error)
	UpdateItem(ctx context.Context, projectID, itemID uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error)
	DeleteItem(ctx context.Context, projectID, itemID uint) error
}

type AgendaRepository struct {
	dao AgendaDAO
}

func NewAgendaRepository(dao AgendaDAO) *AgendaRepository {
	return &AgendaRepository{
		dao: dao,
	}
}

func (r *AgendaRepository) Tree(ctx context.Context, projectID uint) ([]domain.AgendaDay, error) {
	return r.dao.FindTree(ctx, projectID)
}

func (r *AgendaRepository) CreateDay(ctx context.Context, day domain.AgendaDay) (domain.AgendaDay, error) {
	return r.dao.InsertDay(ctx, day)
}

func (r *AgendaRepository) GetDay(ctx context.Context, projectID, dayID uint) (domain.AgendaDay, error) {
	return r.dao.FindDayByID(ctx, projectID, dayID)
}

func (r *AgendaRepository) UpdateDay(ctx context.Context, projectID, dayID uint, day domain.AgendaDay) (domain.AgendaDay, error) {
	return r.dao.UpdateDay(ctx, projectID, dayID, day)
}

func (r *AgendaRepository) DeleteDay(ctx context.Context, projectID, dayID uint) error {
	return r.dao.DeleteDay(ctx, projectID, dayID)
}

func (r *AgendaRepository) CreateSession(ctx context.Context, projectID uint, session domain.AgendaSession) (domain.AgendaSession, error) {
	return r.dao.InsertSession(ctx, projectID, session)
}

func (r *AgendaRepository) GetSession(ctx context.Context, projectID, sessionID uint) (domain.AgendaSession, error) {
	return r.dao.FindSessionByID(ctx, projectID, sessionID)
}

func (r *AgendaRepository) UpdateSession(ctx context.Context, projectID, sessionID uint, session domain.AgendaSession) (domain.AgendaSession, error) {
	return r.dao.UpdateSession(ctx, projectID, sessionID, session)
}

func (r *AgendaRepository) DeleteSession(ctx context.Context, projectID, sessionID uint) error {
	return r.dao.DeleteSession(ctx, projectID, sessionID)
}

func (r *AgendaRepository) CreateItem(ctx context.Context, projectID uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error) {
	return r.dao.InsertItem(ctx, projectID, item, speakerIDs)
}

func (r *AgendaRepository) GetItem(ctx context.Context, projectID, itemID uint) (domain.AgendaItem, error) {
	return r.dao.FindItemByID(ctx, projectID, itemID)
}

func (r *AgendaRepository) UpdateItem(ctx context.Context, projectID, itemID uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error) {
	return r.dao.UpdateItem(ctx, projectID, itemID, item, speakerIDs)
}

func (r *AgendaRepository) DeleteItem(ctx context.Context, projectID, itemID uint) error {
	return r.dao.DeleteItem(ctx, projectID, itemID)
}
