package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   = uuid.UUID
	User struct {
		ID           ID
		Email        string
		PasswordHash *string
		Name         string
		AvatarURL    *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
