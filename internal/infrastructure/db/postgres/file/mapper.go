package file

import (
	domain "cloudvault-api/internal/domain/file"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:     model.ID,
		UserID: model.UserID,

		Name:         model.Name,
		OriginalName: model.OriginalName,
		SizeBytes:    model.SizeBytes,
		MimeType:     model.MimeType,
		PublicID:     model.PublicID,
		URL:          model.URL,
		ThumbnailURL: model.ThumbnailURL,

		IsStarred: model.IsStarred,
		IsDeleted: model.IsDeleted,
		DeletedAt: model.DeletedAt,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
