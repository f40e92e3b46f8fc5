package service

import (
	"context"
	"fmt"
	"time"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
)

// AttendeeService adds check-in handling on top of the generic
// attendee CRUD.
type AttendeeService struct {
	*ResourceService[domain.Attendee]

	repo ResourceRepository[domain.Attendee]
}

func NewAttendeeService(repo ResourceRepository[domain.Attendee], projects ProjectChecker) *AttendeeService {
	return &AttendeeService{
		ResourceService: NewResourceService[domain.Attendee](repo, projects),
		repo:            repo,
	}
}

// ToggleCheckIn flips an attendee's check-in flag, stamping or clearing
// the check-in time.
func (s *AttendeeService) ToggleCheckIn(ctx context.Context, projectID, id uint) (domain.Attendee, error) {
	attendee, err := s.repo.GetByID(ctx, projectID, id)
	if err != nil {
		return domain.Attendee{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	attendee.CheckedIn = !attendee.CheckedIn
	if attendee.CheckedIn {
		now := time.Now()
		attendee.CheckedInAt = &now
	} else {
		attendee.CheckedInAt = nil
	}

	updated, err := s.repo.Update(ctx, projectID, id, attendee)
	if err != nil {
		return domain.Attendee{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// CheckInStats summarizes attendance for a project. A project with no
// attendees reports a zero rate.
func (s *AttendeeService) CheckInStats(ctx context.Context, projectID uint) (domain.CheckInStats, error) {
	attendees, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return domain.CheckInStats{}, fmt.Errorf("s.repo.ListByProject -> %w", err)
	}

	return domain.ComputeCheckInStats(attendees), nil
}
