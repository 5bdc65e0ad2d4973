package ports

import (
	"context"

	"cloudvault-api/internal/domain/file"
	"cloudvault-api/internal/domain/user"
)

type FileService interface {
	ListFiles(ctx context.Context, userID user.ID) (file.Files, error)
	CreateFile(ctx context.Context, userID user.ID, req *file.File) (*file.File, error)
	// UpdateFile and DeleteFile report whether a row was touched; false means
	// the target does not exist for this owner and must read as a no-op.
	UpdateFile(ctx context.Context, userID user.ID, fileID file.ID, patch file.Patch) (bool, error)
	DeleteFile(ctx context.Context, userID user.ID, fileID file.ID) (bool, error)
}
