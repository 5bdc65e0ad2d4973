package client

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

var ErrBlankName = errors.New("file name must not be blank")

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

type Folder string

const (
	FolderAll     Folder = "all"
	FolderStarred Folder = "starred"
	FolderTrash   Folder = "trash"
)

// FileCache mirrors the signed-in user's file records. Mutations are
// server-first: local state changes only after the call succeeds, and a
// rejected call leaves the list untouched. The error goes back to the
// UI, nothing retries.
type FileCache struct {
	session *SessionCache
	api     API

	files    []File
	viewMode ViewMode
	folder   Folder
	search   string
}

func NewFileCache(api API, session *SessionCache) *FileCache {
	return &FileCache{
		session:  session,
		api:      api,
		viewMode: ViewGrid,
		folder:   FolderAll,
	}
}

func (fc *FileCache) identity() (token, userID string, err error) {
	u := fc.session.User()
	token = fc.session.Token()
	if u == nil || token == "" {
		return "", "", ErrNotSignedIn
	}
	return token, u.ID, nil
}

func (fc *FileCache) Load(ctx context.Context) error {
	token, userID, err := fc.identity()
	if err != nil {
		return err
	}

	files, err := fc.api.ListFiles(ctx, token, userID)
	if err != nil {
		return err
	}

	fc.files = files
	return nil
}

// Rename rejects blank names before any network call.
func (fc *FileCache) Rename(ctx context.Context, fileID, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return ErrBlankName
	}

	token, userID, err := fc.identity()
	if err != nil {
		return err
	}

	if err = fc.api.UpdateFile(ctx, token, userID, fileID, Patch{NewName: newName}); err != nil {
		return err
	}

	fc.mutate(fileID, func(f *File) {
		f.Name = newName
		f.UpdatedAt = time.Now()
	})
	return nil
}

func (fc *FileCache) ToggleStar(ctx context.Context, fileID string) error {
	token, userID, err := fc.identity()
	if err != nil {
		return err
	}

	f := fc.find(fileID)
	if f == nil {
		return errors.New("unknown file")
	}
	starred := !f.IsStarred

	if err = fc.api.UpdateFile(ctx, token, userID, fileID, Patch{IsStarred: &starred}); err != nil {
		return err
	}

	fc.mutate(fileID, func(f *File) { f.IsStarred = starred })
	return nil
}

func (fc *FileCache) Trash(ctx context.Context, fileID string) error {
	return fc.setDeleted(ctx, fileID, true)
}

func (fc *FileCache) Restore(ctx context.Context, fileID string) error {
	return fc.setDeleted(ctx, fileID, false)
}

func (fc *FileCache) setDeleted(ctx context.Context, fileID string, deleted bool) error {
	token, userID, err := fc.identity()
	if err != nil {
		return err
	}

	if err = fc.api.UpdateFile(ctx, token, userID, fileID, Patch{IsDeleted: &deleted}); err != nil {
		return err
	}

	fc.mutate(fileID, func(f *File) {
		f.IsDeleted = deleted
		if deleted {
			now := time.Now()
			f.DeletedAt = &now
		} else {
			f.DeletedAt = nil
		}
	})
	return nil
}

// PermanentlyDelete destroys the blob first, then the metadata row. A
// failed blob destroy is not fatal: the metadata delete proceeds and the
// orphan is left for a reconciliation sweep.
func (fc *FileCache) PermanentlyDelete(ctx context.Context, fileID string) error {
	token, userID, err := fc.identity()
	if err != nil {
		return err
	}

	f := fc.find(fileID)
	if f == nil {
		return errors.New("unknown file")
	}

	_ = fc.api.DeleteBlob(ctx, token, userID, f.PublicID)

	if err = fc.api.DeleteFile(ctx, token, userID, fileID); err != nil {
		return err
	}

	kept := fc.files[:0]
	for _, x := range fc.files {
		if x.ID != fileID {
			kept = append(kept, x)
		}
	}
	fc.files = kept
	return nil
}

// Upload runs the three-step saga: signed grant, direct blob upload,
// metadata registration. If registration fails the freshly uploaded blob
// is deleted best-effort so it does not orphan.
func (fc *FileCache) Upload(ctx context.Context, name, mimeType string, size uint64, r io.Reader, uploader BlobUploader) (*File, error) {
	token, userID, err := fc.identity()
	if err != nil {
		return nil, err
	}

	grant, err := fc.api.GetUploadGrant(ctx, token, userID)
	if err != nil {
		return nil, err
	}

	res, err := uploader.Upload(ctx, *grant, name, r)
	if err != nil {
		return nil, err
	}

	created, err := fc.api.CreateFile(ctx, token, userID, FileData{
		Name:         name,
		OriginalName: name,
		Size:         size,
		Type:         mimeType,
		PublicID:     res.PublicID,
		URL:          res.URL,
		ThumbnailURL: res.ThumbnailURL,
	})
	if err != nil {
		_ = fc.api.DeleteBlob(ctx, token, userID, res.PublicID)
		return nil, err
	}

	fc.files = append([]File{*created}, fc.files...)
	return created, nil
}

// Filtered applies the folder filter and the substring name search.
func (fc *FileCache) Filtered() []File {
	q := strings.ToLower(strings.TrimSpace(fc.search))

	var out []File
	for _, f := range fc.files {
		switch fc.folder {
		case FolderTrash:
			if !f.IsDeleted {
				continue
			}
		case FolderStarred:
			if f.IsDeleted || !f.IsStarred {
				continue
			}
		default:
			if f.IsDeleted {
				continue
			}
		}
		if q != "" && !strings.Contains(strings.ToLower(f.Name), q) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (fc *FileCache) Files() []File          { return fc.files }
func (fc *FileCache) ViewMode() ViewMode     { return fc.viewMode }
func (fc *FileCache) SetViewMode(v ViewMode) { fc.viewMode = v }
func (fc *FileCache) Folder() Folder         { return fc.folder }
func (fc *FileCache) SetFolder(f Folder)     { fc.folder = f }
func (fc *FileCache) Search() string         { return fc.search }
func (fc *FileCache) SetSearch(q string)     { fc.search = q }

func (fc *FileCache) find(fileID string) *File {
	for i := range fc.files {
		if fc.files[i].ID == fileID {
			return &fc.files[i]
		}
	}
	return nil
}

func (fc *FileCache) mutate(fileID string, fn func(*File)) {
	if f := fc.find(fileID); f != nil {
		fn(f)
	}
}
