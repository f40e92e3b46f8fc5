package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

// fakeResourceRepo is an in-memory ResourceRepository used across the
// service tests.
type fakeResourceRepo[M any] struct {
	items   map[uint]M
	nextID  uint
	withID  func(m M, id uint) M
	scope   func(m M) uint
	failing error
}

func newFakeResourceRepo[M any](scope func(m M) uint, withID func(m M, id uint) M) *fakeResourceRepo[M] {
	return &fakeResourceRepo[M]{
		items:  map[uint]M{},
		nextID: 1,
		scope:  scope,
		withID: withID,
	}
}

func (f *fakeResourceRepo[M]) Create(_ context.Context, m M) (M, error) {
	if f.failing != nil {
		var zero M
		return zero, f.failing
	}

	id := f.nextID
	f.nextID++
	m = f.withID(m, id)
	f.items[id] = m

	return m, nil
}

func (f *fakeResourceRepo[M]) ListByProject(_ context.Context, projectID uint) ([]M, error) {
	if f.failing != nil {
		return nil, f.failing
	}

	var out []M
	for id := uint(1); id < f.nextID; id++ {
		if m, ok := f.items[id]; ok && f.scope(m) == projectID {
			out = append(out, m)
		}
	}

	return out, nil
}

func (f *fakeResourceRepo[M]) GetByID(_ context.Context, projectID, id uint) (M, error) {
	m, ok := f.items[id]
	if !ok || f.scope(m) != projectID {
		var zero M
		return zero, ErrNotFound
	}

	return m, nil
}

func (f *fakeResourceRepo[M]) Update(_ context.Context, projectID, id uint, m M) (M, error) {
	existing, ok := f.items[id]
	if !ok || f.scope(existing) != projectID {
		var zero M
		return zero, ErrNotFound
	}

	m = f.withID(m, id)
	f.items[id] = m

	return m, nil
}

func (f *fakeResourceRepo[M]) Delete(_ context.Context, projectID, id uint) error {
	existing, ok := f.items[id]
	if !ok || f.scope(existing) != projectID {
		return ErrNotFound
	}

	delete(f.items, id)
	return nil
}

func (f *fakeResourceRepo[M]) CountByProject(_ context.Context, projectID uint) (int64, error) {
	var count int64
	for _, m := range f.items {
		if f.scope(m) == projectID {
			count++
		}
	}

	return count, nil
}

type fakeProjectChecker struct {
	existing map[uint]bool
	err      error
}

func (f *fakeProjectChecker) Exists(_ context.Context, id uint) (bool, error) {
	return f.existing[id], f.err
}

func newAttendeeRepo() *fakeResourceRepo[domain.Attendee] {
	return newFakeResourceRepo(
		func(a domain.Attendee) uint { return a.ProjectID },
		func(a domain.Attendee, id uint) domain.Attendee { a.ID = id; return a },
	)
}

func TestResourceServiceCreate(t *testing.T) {
	repo := newAttendeeRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}
	svc := NewResourceService[domain.Attendee](repo, projects)

	created, err := svc.Create(context.Background(), 1, domain.Attendee{ProjectID: 1, Name: "Grace"})
	require.NoError(t, err)

	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Grace", created.Name)
}

func TestResourceServiceCreateMissingProject(t *testing.T) {
	repo := newAttendeeRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{}}
	svc := NewResourceService[domain.Attendee](repo, projects)

	_, err := svc.Create(context.Background(), 99, domain.Attendee{ProjectID: 99, Name: "Grace"})

	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.Empty(t, repo.items)
}

func TestResourceServiceGetScopedToProject(t *testing.T) {
	repo := newAttendeeRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true, 2: true}}
	svc := NewResourceService[domain.Attendee](repo, projects)

	created, err := svc.Create(context.Background(), 1, domain.Attendee{ProjectID: 1, Name: "Grace"})
	require.NoError(t, err)

	// Same id under the wrong project must not leak across tenants.
	_, err = svc.Get(context.Background(), 2, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestResourceServiceUpdateMissingIsNotUpsert(t *testing.T) {
	repo := newAttendeeRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}
	svc := NewResourceService[domain.Attendee](repo, projects)

	_, err := svc.Update(context.Background(), 1, 42, domain.Attendee{ProjectID: 1, Name: "Grace"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, repo.items)
}

func TestResourceServiceDelete(t *testing.T) {
	repo := newAttendeeRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}
	svc := NewResourceService[domain.Attendee](repo, projects)

	created, err := svc.Create(context.Background(), 1, domain.Attendee{ProjectID: 1, Name: "Grace"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1, created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1, created.ID), ErrNotFound)
}

func TestResourceServiceListWrapsRepoError(t *testing.T) {
	repo := newAttendeeRepo()
	repo.failing = errors.New("connection refused")
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}
	svc := NewResourceService[domain.Attendee](repo, projects)

	_, err := svc.List(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "s.repo.ListByProject")
}
