package file

import (
	"context"

	"cloudvault-api/internal/domain/file"
	"cloudvault-api/internal/domain/user"
	"cloudvault-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFiles(ctx context.Context, userID user.ID) (file.Files, error) {
	rows, err := r.db.Query(ctx, SelectFiles, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.UserID,

			&f.Name,
			&f.OriginalName,
			&f.SizeBytes,
			&f.MimeType,
			&f.PublicID,
			&f.URL,
			&f.ThumbnailURL,

			&f.IsStarred,
			&f.IsDeleted,
			&f.DeletedAt,

			&f.CreatedAt,
			&f.UpdatedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) CreateFile(ctx context.Context, userID user.ID, req *file.File) (*file.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.ID, userID, req.Name, req.OriginalName, req.SizeBytes, req.MimeType, req.PublicID, req.URL, req.ThumbnailURL,
	).Scan(
		&f.ID,
		&f.UserID,

		&f.Name,
		&f.OriginalName,
		&f.SizeBytes,
		&f.MimeType,
		&f.PublicID,
		&f.URL,
		&f.ThumbnailURL,

		&f.IsStarred,
		&f.IsDeleted,
		&f.DeletedAt,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), err
}

// UpdateFile reports rows affected; zero means the record does not exist
// or belongs to someone else, and the two are indistinguishable on purpose.
func (r *Repository) UpdateFile(ctx context.Context, userID user.ID, fileID file.ID, patch file.Patch) (int64, error) {
	tag, err := r.db.Exec(ctx, UpdateFileByID,
		fileID, userID, patch.Name, patch.IsStarred, patch.IsDeleted,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteFile(ctx context.Context, userID user.ID, fileID file.ID) (int64, error) {
	tag, err := r.db.Exec(ctx, DeleteFileByID, fileID, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
