package file

import (
	domain "cloudvault-api/internal/domain/file"
)

func ToResponseFile(fDomain domain.File) File {
	var f = File{
		ID:           fDomain.ID.String(),
		UserID:       fDomain.UserID.String(),
		Name:         fDomain.Name,
		OriginalName: fDomain.OriginalName,
		Size:         fDomain.SizeBytes,
		Type:         fDomain.MimeType,
		PublicID:     fDomain.PublicID,
		URL:          fDomain.URL,
		ThumbnailURL: fDomain.ThumbnailURL,
		IsStarred:    fDomain.IsStarred,
		IsDeleted:    fDomain.IsDeleted,
		DeletedAt:    fDomain.DeletedAt,
		CreatedAt:    fDomain.CreatedAt,
		UpdatedAt:    fDomain.UpdatedAt,
	}

	return f
}

func ToResponseFiles(fsDomain domain.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}

func ToDomainFile(d Data) *domain.File {
	var f = &domain.File{
		Name:         d.Name,
		OriginalName: d.OriginalName,
		SizeBytes:    d.Size,
		MimeType:     d.Type,
		PublicID:     d.PublicID,
		URL:          d.URL,
	}
	if d.ThumbnailURL != "" {
		t := d.ThumbnailURL
		f.ThumbnailURL = &t
	}

	return f
}
