package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"cloudvault-api/internal/application/ports"
	domain "cloudvault-api/internal/domain/file"
	"cloudvault-api/internal/domain/user"
	"cloudvault-api/internal/infrastructure/mq"
	"cloudvault-api/internal/interface/api/rest/dto/file"
)

// ErrBlankFileName guards names that survive the transport checks but
// sanitize down to nothing, such as control characters only.
var ErrBlankFileName = errors.New("file name must not be blank")

type FileService struct {
	fileRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewFileService(
	fileRepository domain.Repository,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		fileRepository: fileRepository,
		mq:             rabbit,
		mCounter:       mCounter,
	}
}

func (fs *FileService) ListFiles(ctx context.Context, userID user.ID) (domain.Files, error) {
	fls, err := fs.fileRepository.FetchFiles(ctx, userID)
	if err != nil {
		return nil, err
	}

	return fls, nil
}

func (fs *FileService) CreateFile(ctx context.Context, userID user.ID, req *domain.File) (*domain.File, error) {
	req.ID = uuid.New()
	req.Name = sanitizeDisplayName(req.Name)
	if req.Name == "" {
		req.Name = sanitizeDisplayName(req.OriginalName)
	}
	if req.Name == "" {
		return nil, ErrBlankFileName
	}
	if req.MimeType == "" {
		req.MimeType = "application/octet-stream"
	}

	created, err := fs.fileRepository.CreateFile(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	payload := file.ToResponseFile(*created)
	fs.mq.TryPublish(mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Kind:    mq.KindFileUploaded,
		UserID:  userID.String(),
		Payload: &payload,
	})

	fs.mCounter.WithLabelValues("files_created_total").Inc()

	return created, nil
}

func (fs *FileService) UpdateFile(ctx context.Context, userID user.ID, fileID domain.ID, patch domain.Patch) (bool, error) {
	if patch.Name != nil {
		clean := sanitizeDisplayName(*patch.Name)
		if clean == "" {
			return false, ErrBlankFileName
		}
		patch.Name = &clean
	}

	rows, err := fs.fileRepository.UpdateFile(ctx, userID, fileID, patch)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, nil
	}

	if patch.IsDeleted != nil {
		kind := mq.KindFileRestored
		if *patch.IsDeleted {
			kind = mq.KindFileTrashed
		}
		fs.mq.TryPublish(mq.Event{
			Id:     uuid.New(),
			TS:     time.Now(),
			Kind:   kind,
			UserID: userID.String(),
		})
	}

	fs.mCounter.WithLabelValues("files_updated_total").Inc()

	return true, nil
}

func (fs *FileService) DeleteFile(ctx context.Context, userID user.ID, fileID domain.ID) (bool, error) {
	rows, err := fs.fileRepository.DeleteFile(ctx, userID, fileID)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, nil
	}

	fs.mq.TryPublish(mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Kind:   mq.KindFilePurged,
		UserID: userID.String(),
	})

	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return true, nil
}
