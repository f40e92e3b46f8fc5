package domain

import "time"

type AgendaDay struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProjectID uint            `gorm:"not null;index" json:"project_id"`
	Title     string          `gorm:"not null" json:"title"`
	Date      *time.Time      `json:"date"`
	Position  int             `gorm:"default:0" json:"position"`
	Sessions  []AgendaSession `gorm:"foreignKey:AgendaDayID" json:"sessions,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AgendaSession struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	AgendaDayID uint         `gorm:"not null;index" json:"agenda_day_id"`
	Title       string       `gorm:"not null" json:"title"`
	StartTime   string       `json:"start_time"` // "HH:MM"
	EndTime     string       `json:"end_time"`
	Location    string       `json:"location"`
	Items       []AgendaItem `gorm:"foreignKey:AgendaSessionID" json:"items,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type AgendaItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AgendaSessionID uint      `gorm:"not null;index" json:"agenda_session_id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Speakers        []Speaker `gorm:"many2many:agenda_item_speakers;" json:"speakers,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AgendaItemSpeaker is the join row between agenda items and speakers.
// Declared explicitly so cascades can delete link rows inside the same
// transaction as their parent.
type AgendaItemSpeaker struct {
	AgendaItemID uint `gorm:"primaryKey"`
	SpeakerID    uint `gorm:"primaryKey"`
}
