package domain

import "time"

type OrderStatus string

const (
	OrderPaid       OrderStatus = "PAID"
	OrderIncomplete OrderStatus = "INCOMPLETE"
	OrderComplete   OrderStatus = "COMPLETE"
)

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ProjectID     uint        `gorm:"not null;index" json:"project_id"`
	Reference     string      `gorm:"uniqueIndex;not null" json:"reference"`
	CustomerName  string      `gorm:"not null" json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Amount        float64     `gorm:"default:0" json:"amount"`
	Currency      string      `gorm:"default:USD" json:"currency"`
	Status        OrderStatus `gorm:"default:INCOMPLETE" json:"status"`
	TicketID      *uint       `json:"ticket_id"`
	Quantity      int         `gorm:"default:1" json:"quantity"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Free reports whether the order carries no charge. Zero-amount orders
// form their own bucket in the order statistics.
func (o Order) Free() bool {
	return o.Amount == 0
}

type Ticket struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	ProjectID uint       `gorm:"not null;index" json:"project_id"`
	Name      string     `gorm:"not null" json:"name"`
	Price     float64    `gorm:"default:0" json:"price"`
	Quantity  int        `gorm:"default:0" json:"quantity"`
	Sold      int        `gorm:"default:0" json:"sold"`
	SaleStart *time.Time `json:"sale_start"`
	SaleEnd   *time.Time `json:"sale_end"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
