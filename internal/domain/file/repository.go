package file

import (
	"context"

	"cloudvault-api/internal/domain/user"
)

// All operations filter by owner. A mutation aimed at a record the caller
// does not own touches zero rows; existence is never revealed.
type Repository interface {
	FetchFiles(ctx context.Context, userID user.ID) (Files, error)
	CreateFile(ctx context.Context, userID user.ID, req *File) (*File, error)
	UpdateFile(ctx context.Context, userID user.ID, fileID ID, patch Patch) (int64, error)
	DeleteFile(ctx context.Context, userID user.ID, fileID ID) (int64, error)
}
