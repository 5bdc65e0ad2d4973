package session

import (
	"time"

	"cloudvault-api/internal/domain/user"
)

// TTL is the absolute session lifetime from issuance.
const TTL = 7 * 24 * time.Hour

type Session struct {
	Token  string
	UserID user.ID

	CreatedAt time.Time
	ExpiresAt time.Time
}
