package ports

import (
	"context"

	"cloudvault-api/internal/infrastructure/cloudinary"
)

type BlobAuthorizer interface {
	Configured() bool
	UserFolder(userID string) string
	SignUpload(userID string) cloudinary.Grant
	Destroy(ctx context.Context, publicID string) (map[string]any, error)
}
