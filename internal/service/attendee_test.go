package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

func TestAttendeeServiceToggleCheckIn(t *testing.T) {
	repo := newAttendeeRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}
	svc := NewAttendeeService(repo, projects)

	created, err := svc.Create(context.Background(), 1, domain.Attendee{ProjectID: 1, Name: "Grace"})
	require.NoError(t, err)
	require.False(t, created.CheckedIn)

	checkedIn, err := svc.ToggleCheckIn(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.True(t, checkedIn.CheckedIn)
	require.NotNil(t, checkedIn.CheckedInAt)

	checkedOut, err := svc.ToggleCheckIn(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.False(t, checkedOut.CheckedIn)
	assert.Nil(t, checkedOut.CheckedInAt)
}

func TestAttendeeServiceToggleCheckInMissing(t *testing.T) {
	repo := newAttendeeRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}
	svc := NewAttendeeService(repo, projects)

	_, err := svc.ToggleCheckIn(context.Background(), 1, 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttendeeServiceCheckInStats(t *testing.T) {
	repo := newAttendeeRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}
	svc := NewAttendeeService(repo, projects)

	for _, name := range []string{"Ada", "Grace"} {
		_, err := svc.Create(context.Background(), 1, domain.Attendee{ProjectID: 1, Name: name})
		require.NoError(t, err)
	}
	_, err := svc.ToggleCheckIn(context.Background(), 1, 1)
	require.NoError(t, err)

	stats, err := svc.CheckInStats(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.CheckInStats{Total: 2, CheckedIn: 1, Rate: 50}, stats)
}

func TestAttendeeServiceCheckInStatsEmptyProject(t *testing.T) {
	repo := newAttendeeRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}
	svc := NewAttendeeService(repo, projects)

	stats, err := svc.CheckInStats(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.CheckInStats{}, stats)
}
