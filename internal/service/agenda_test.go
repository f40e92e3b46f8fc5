package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

// fakeAgendaRepo records the arguments of the last item write so tests
// can observe speaker id handling.
type fakeAgendaRepo struct {
	days map[uint]domain.AgendaDay

	lastItemSpeakerIDs []uint
}

func newFakeAgendaRepo() *fakeAgendaRepo {
	return &fakeAgendaRepo{days: map[uint]domain.AgendaDay{}}
}

func (f *fakeAgendaRepo) Tree(_ context.Context, projectID uint) ([]domain.AgendaDay, error) {
	var out []domain.AgendaDay
	for _, day := range f.days {
		if day.ProjectID == projectID {
			out = append(out, day)
		}
	}

	return out, nil
}

func (f *fakeAgendaRepo) CreateDay(_ context.Context, day domain.AgendaDay) (domain.AgendaDay, error) {
	day.ID = uint(len(f.days) + 1)
	f.days[day.ID] = day

	return day, nil
}

func (f *fakeAgendaRepo) GetDay(_ context.Context, projectID, dayID uint) (domain.AgendaDay, error) {
	day, ok := f.days[dayID]
	if !ok || day.ProjectID != projectID {
		return domain.AgendaDay{}, ErrNotFound
	}

	return day, nil
}

func (f *fakeAgendaRepo) UpdateDay(_ context.Context, projectID, dayID uint, day domain.AgendaDay) (domain.AgendaDay, error) {
	existing, err := f.GetDay(context.Background(), projectID, dayID)
	if err != nil {
		return domain.AgendaDay{}, err
	}

	day.ID = existing.ID
	day.ProjectID = existing.ProjectID
	f.days[dayID] = day

	return day, nil
}

func (f *fakeAgendaRepo) DeleteDay(_ context.Context, projectID, dayID uint) error {
	if _, err := f.GetDay(context.Background(), projectID, dayID); err != nil {
		return err
	}

	delete(f.days, dayID)
	return nil
}

func (f *fakeAgendaRepo) CreateSession(_ context.Context, _ uint, session domain.AgendaSession) (domain.AgendaSession, error) {
	session.ID = 1
	return session, nil
}

func (f *fakeAgendaRepo) GetSession(_ context.Context, _, _ uint) (domain.AgendaSession, error) {
	return domain.AgendaSession{}, ErrNotFound
}

func (f *fakeAgendaRepo) UpdateSession(_ context.Context, _, _ uint, session domain.AgendaSession) (domain.AgendaSession, error) {
	return session, nil
}

func (f *fakeAgendaRepo) DeleteSession(_ context.Context, _, _ uint) error {
	return nil
}

func (f *fakeAgendaRepo) CreateItem(_ context.Context, _ uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error) {
	f.lastItemSpeakerIDs = speakerIDs
	item.ID = 1

	return item, nil
}

func (f *fakeAgendaRepo) GetItem(_ context.Context, _, _ uint) (domain.AgendaItem, error) {
	return domain.AgendaItem{}, ErrNotFound
}

func (f *fakeAgendaRepo) UpdateItem(_ context.Context, _, _ uint, item domain.AgendaItem, speakerIDs []uint) (domain.AgendaItem, error) {
	f.lastItemSpeakerIDs = speakerIDs

	return item, nil
}

func (f *fakeAgendaRepo) DeleteItem(_ context.Context, _, _ uint) error {
	return nil
}

func TestAgendaServiceCreateDay(t *testing.T) {
	repo := newFakeAgendaRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}
	svc := NewAgendaService(repo, projects)

	created, err := svc.CreateDay(context.Background(), 1, domain.AgendaDay{Title: "Day One"})
	require.NoError(t, err)

	assert.Equal(t, uint(1), created.ProjectID)
	assert.Equal(t, "Day One", created.Title)
}

func TestAgendaServiceCreateDayMissingProject(t *testing.T) {
	repo := newFakeAgendaRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{}}
	svc := NewAgendaService(repo, projects)

	_, err := svc.CreateDay(context.Background(), 99, domain.AgendaDay{Title: "Day One"})

	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.Empty(t, repo.days)
}

func TestAgendaServiceCreateSessionSetsDay(t *testing.T) {
	repo := newFakeAgendaRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}
	svc := NewAgendaService(repo, projects)

	created, err := svc.CreateSession(context.Background(), 1, 5, domain.AgendaSession{Title: "Morning"})
	require.NoError(t, err)

	assert.Equal(t, uint(5), created.AgendaDayID)
}

func TestAgendaServiceCreateItemDedupesSpeakers(t *testing.T) {
	repo := newFakeAgendaRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}
	svc := NewAgendaService(repo, projects)

	created, err := svc.CreateItem(context.Background(), 1, 3, domain.AgendaItem{Title: "Keynote"}, []uint{2, 2, 7, 2, 7})
	require.NoError(t, err)

	assert.Equal(t, uint(3), created.AgendaSessionID)
	assert.Equal(t, []uint{2, 7}, repo.lastItemSpeakerIDs)
}

func TestAgendaServiceUpdateItemDedupesSpeakers(t *testing.T) {
	repo := newFakeAgendaRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}
	svc := NewAgendaService(repo, projects)

	_, err := svc.UpdateItem(context.Background(), 1, 9, domain.AgendaItem{Title: "Keynote"}, []uint{1, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, []uint{1}, repo.lastItemSpeakerIDs)
}

func TestAgendaServiceDeleteDay(t *testing.T) {
	repo := newFakeAgendaRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}
	svc := NewAgendaService(repo, projects)

	created, err := svc.CreateDay(context.Background(), 1, domain.AgendaDay{Title: "Day One"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDay(context.Background(), 1, created.ID))
	assert.ErrorIs(t, svc.DeleteDay(context.Background(), 1, created.ID), ErrNotFound)
}
