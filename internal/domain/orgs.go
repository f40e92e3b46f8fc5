package domain

import "time"

type Sponsor struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProjectID    uint      `gorm:"not null;index" json:"project_id"`
	Name         string    `gorm:"not null" json:"name"`
	Tier         string    `json:"tier"` // "platinum", "gold", "silver" or "bronze"
	Website      string    `json:"website"`
	Logo         string    `json:"logo"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	Amount       float64   `gorm:"default:0" json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Exhibitor struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProjectID    uint      `gorm:"not null;index" json:"project_id"`
	Name         string    `gorm:"not null" json:"name"`
	BoothNumber  string    `json:"booth_number"`
	Website      string    `json:"website"`
	Logo         string    `json:"logo"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Partner struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProjectID    uint      `gorm:"not null;index" json:"project_id"`
	Name         string    `gorm:"not null" json:"name"`
	Type         string    `json:"type"`
	Website      string    `json:"website"`
	Logo         string    `json:"logo"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MediaPartner struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProjectID    uint      `gorm:"not null;index" json:"project_id"`
	Name         string    `gorm:"not null" json:"name"`
	Outlet       string    `json:"outlet"`
	Website      string    `json:"website"`
	Logo         string    `json:"logo"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
