package domain

import "time"

type Attendee struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProjectID   uint       `gorm:"not null;index" json:"project_id"`
	Name        string     `gorm:"not null" json:"name"`
	Email       string     `gorm:"not null" json:"email"`
	Phone       string     `json:"phone"`
	Company     string     `json:"company"`
	JobTitle    string     `json:"job_title"`
	TicketType  string     `json:"ticket_type"`
	CheckedIn   bool       `gorm:"default:false" json:"checked_in"`
	CheckedInAt *time.Time `json:"checked_in_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Delegate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Country   string    `json:"country"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Speaker struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `json:"email"`
	JobTitle  string    `json:"job_title"`
	Company   string    `json:"company"`
	Bio       string    `json:"bio"`
	Photo     string    `json:"photo"`
	Topic     string    `json:"topic"`
	LinkedIn  string    `json:"linkedin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
