package file

import (
	"time"
)

type (
	File struct {
		ID           string     `json:"id"`
		UserID       string     `json:"user_id"`
		Name         string     `json:"name"`
		OriginalName string     `json:"original_name"`
		Size         uint64     `json:"size"`
		Type         string     `json:"type"`
		PublicID     string     `json:"cloudinary_public_id"`
		URL          string     `json:"cloudinary_url"`
		ThumbnailURL *string    `json:"thumbnail_url"`
		IsStarred    bool       `json:"is_starred"`
		IsDeleted    bool       `json:"is_deleted"`
		DeletedAt    *time.Time `json:"deleted_at"`
		CreatedAt    time.Time  `json:"created_at"`
		UpdatedAt    time.Time  `json:"updated_at"`
	}
	Files []File

	ListResponse struct {
		Files Files `json:"files"`
	}
	CreateResponse struct {
		File File `json:"file"`
	}
	MutationResponse struct {
		Success bool `json:"success"`
		Updated bool `json:"updated"`
	}
)
