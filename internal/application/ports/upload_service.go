package ports

import (
	"context"

	"cloudvault-api/internal/domain/user"
	"cloudvault-api/internal/infrastructure/cloudinary"
)

type UploadService interface {
	GetSignature(userID user.ID) (*cloudinary.Grant, error)
	DeleteBlob(ctx context.Context, userID user.ID, publicID string) (map[string]any, error)
}
