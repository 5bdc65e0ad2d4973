package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID     uuid.UUID
		UserID uuid.UUID

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
