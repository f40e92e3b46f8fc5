package response

import "time"

// Session describes the authenticated admin identity.
type Session struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
