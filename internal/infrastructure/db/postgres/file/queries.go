package file

const (
	SelectFiles = `
		SELECT id, user_id, name, original_name, size_bytes, mime_type, public_id, url, thumbnail_url, is_starred, is_deleted, deleted_at, created_at, updated_at
		FROM files
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	InsertFile = `
		INSERT INTO files (id, user_id, name, original_name, size_bytes, mime_type, public_id, url, thumbnail_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING
		  id, user_id, name, original_name, size_bytes, mime_type, public_id, url, thumbnail_url, is_starred, is_deleted, deleted_at, created_at, updated_at
	`
	UpdateFileByID = `
		UPDATE files
		SET name = COALESCE($3, name),
		    is_starred = COALESCE($4, is_starred),
		    is_deleted = COALESCE($5, is_deleted),
		    deleted_at = CASE
		      WHEN $5::boolean IS NULL THEN deleted_at
		      WHEN $5 THEN now()
		      ELSE NULL
		    END,
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
	`
	DeleteFileByID = `
		DELETE FROM files
		WHERE id = $1 AND user_id = $2
	`
)
