package entities

import "time"

// ApiKey is a service-integration credential row, read on every
// X-API-Key request.
type ApiKey struct {
	ApiKey    string    `db:"id"`
	Status    bool      `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
