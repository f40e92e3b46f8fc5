package domain

import "time"

type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Year        int        `json:"year"`
	Venue       string     `json:"venue"`
	Website     string     `json:"website"`
	Currency    string     `gorm:"default:USD" json:"currency"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Image       string     `json:"image"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ProjectStats holds the headline counters shown on a project dashboard.
// Counts are derived from the child tables on read rather than stored.
type ProjectStats struct {
	Speakers      int64 `json:"speakers"`
	Sponsors      int64 `json:"sponsors"`
	Exhibitors    int64 `json:"exhibitors"`
	Delegates     int64 `json:"delegates"`
	Partners      int64 `json:"partners"`
	MediaPartners int64 `json:"media_partners"`
	Attendees     int64 `json:"attendees"`
}
