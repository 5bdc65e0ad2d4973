package file

type (
	// Data carries the metadata registered after a successful blob upload,
	// and the mutable flags on update.
	Data struct {
		Name         string `json:"name"`
		OriginalName string `json:"original_name"`
		Size         uint64 `json:"size"`
		Type         string `json:"type"`
		PublicID     string `json:"cloudinary_public_id"`
		URL          string `json:"cloudinary_url"`
		ThumbnailURL string `json:"thumbnail_url"`
		IsStarred    *bool  `json:"is_starred"`
		IsDeleted    *bool  `json:"is_deleted"`
	}
	Request struct {
		Action  string `json:"action"`
		UserID  string `json:"user_id"`
		FileID  string `json:"file_id"`
		NewName string `json:"new_name"`
		Data    *Data  `json:"file_data"`
	}
)
