package services

import (
	"context"
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"cloudvault-api/internal/application/ports"
	"cloudvault-api/internal/domain/user"
	"cloudvault-api/internal/infrastructure/cloudinary"
)

var ErrBlobStoreNotConfigured = errors.New("blob store credentials are not configured")

type UploadService struct {
	blob     ports.BlobAuthorizer
	mCounter *prometheus.CounterVec
}

func NewUploadService(
	blob ports.BlobAuthorizer,
	mCounter *prometheus.CounterVec,
) ports.UploadService {
	return &UploadService{
		blob:     blob,
		mCounter: mCounter,
	}
}

func (us *UploadService) GetSignature(userID user.ID) (*cloudinary.Grant, error) {
	if !us.blob.Configured() {
		return nil, ErrBlobStoreNotConfigured
	}

	grant := us.blob.SignUpload(userID.String())

	us.mCounter.WithLabelValues("upload_grants_total").Inc()

	return &grant, nil
}

func (us *UploadService) DeleteBlob(ctx context.Context, userID user.ID, publicID string) (map[string]any, error) {
	if !us.blob.Configured() {
		return nil, ErrBlobStoreNotConfigured
	}

	// Blobs outside the caller's folder answer exactly like missing ones.
	if !strings.HasPrefix(publicID, us.blob.UserFolder(userID.String())+"/") {
		return map[string]any{"result": "not found"}, nil
	}

	result, err := us.blob.Destroy(ctx, publicID)
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("blob_destroys_total").Inc()

	return result, nil
}
