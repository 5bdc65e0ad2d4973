package file

import (
	"time"

	"github.com/google/uuid"

	"cloudvault-api/internal/domain/user"
)

type (
	ID   = uuid.UUID
	File struct {
		ID     ID
		UserID user.ID

		Name         string
		OriginalName string
		SizeBytes    uint64
		MimeType     string
		PublicID     string
		URL          string
		ThumbnailURL *string

		IsStarred bool
		IsDeleted bool
		DeletedAt *time.Time

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Files []*File
)

// Patch is a partial update: nil fields are left untouched.
// Setting IsDeleted stamps or clears DeletedAt in the same write.
type Patch struct {
	Name      *string
	IsStarred *bool
	IsDeleted *bool
}
