package response

import "github.com/eventdeskhq/eventdesk-api/internal/domain"

// UtmRecord decorates a stored record with its built tracking link.
type UtmRecord struct {
	domain.UtmRecord
	Link string `json:"link"`
}

type UtmBulkResult struct {
	Action   string `json:"action"`
	Affected int64  `json:"affected"`
}
