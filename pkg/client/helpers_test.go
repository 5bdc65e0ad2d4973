package client

import (
	"context"
	"errors"
	"io"
)

// fakeAPI counts calls so tests can assert which network effects fired.
type fakeAPI struct {
	SignupFunc     func(ctx context.Context, email, password, name string) (*Auth, error)
	LoginFunc      func(ctx context.Context, email, password string) (*Auth, error)
	VerifyFunc     func(ctx context.Context, token string) (*User, error)
	LogoutFunc     func(ctx context.Context, token string) error
	ListFilesFunc  func(ctx context.Context, token, userID string) ([]File, error)
	CreateFileFunc func(ctx context.Context, token, userID string, data FileData) (*File, error)
	UpdateFileFunc func(ctx context.Context, token, userID, fileID string, patch Patch) error
	DeleteFileFunc func(ctx context.Context, token, userID, fileID string) error
	GrantFunc      func(ctx context.Context, token, userID string) (*Grant, error)
	DeleteBlobFunc func(ctx context.Context, token, userID, publicID string) error

	updateCalls     int
	deleteBlobCalls []string
	logoutCalls     int
}

var errNotWired = errors.New("not wired")

func (f *fakeAPI) Signup(ctx context.Context, email, password, name string) (*Auth, error) {
	if f.SignupFunc == nil {
		return nil, errNotWired
	}
	return f.SignupFunc(ctx, email, password, name)
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*Auth, error) {
	if f.LoginFunc == nil {
		return nil, errNotWired
	}
	return f.LoginFunc(ctx, email, password)
}

func (f *fakeAPI) Verify(ctx context.Context, token string) (*User, error) {
	if f.VerifyFunc == nil {
		return nil, errNotWired
	}
	return f.VerifyFunc(ctx, token)
}

func (f *fakeAPI) Logout(ctx context.Context, token string) error {
	f.logoutCalls++
	if f.LogoutFunc == nil {
		return errNotWired
	}
	return f.LogoutFunc(ctx, token)
}

func (f *fakeAPI) ListFiles(ctx context.Context, token, userID string) ([]File, error) {
	if f.ListFilesFunc == nil {
		return nil, errNotWired
	}
	return f.ListFilesFunc(ctx, token, userID)
}

func (f *fakeAPI) CreateFile(ctx context.Context, token, userID string, data FileData) (*File, error) {
	if f.CreateFileFunc == nil {
		return nil, errNotWired
	}
	return f.CreateFileFunc(ctx, token, userID, data)
}

func (f *fakeAPI) UpdateFile(ctx context.Context, token, userID, fileID string, patch Patch) error {
	f.updateCalls++
	if f.UpdateFileFunc == nil {
		return errNotWired
	}
	return f.UpdateFileFunc(ctx, token, userID, fileID, patch)
}

func (f *fakeAPI) DeleteFile(ctx context.Context, token, userID, fileID string) error {
	if f.DeleteFileFunc == nil {
		return errNotWired
	}
	return f.DeleteFileFunc(ctx, token, userID, fileID)
}

func (f *fakeAPI) GetUploadGrant(ctx context.Context, token, userID string) (*Grant, error) {
	if f.GrantFunc == nil {
		return nil, errNotWired
	}
	return f.GrantFunc(ctx, token, userID)
}

func (f *fakeAPI) DeleteBlob(ctx context.Context, token, userID, publicID string) error {
	f.deleteBlobCalls = append(f.deleteBlobCalls, publicID)
	if f.DeleteBlobFunc == nil {
		return errNotWired
	}
	return f.DeleteBlobFunc(ctx, token, userID, publicID)
}

type fakeUploader struct {
	UploadFunc func(ctx context.Context, grant Grant, name string, r io.Reader) (*BlobResult, error)
}

func (f *fakeUploader) Upload(ctx context.Context, grant Grant, name string, r io.Reader) (*BlobResult, error) {
	return f.UploadFunc(ctx, grant, name, r)
}

func signedInSession(api API, userID string) *SessionCache {
	s := NewSessionCache(api, &MemoryTokenStore{})
	s.adopt(&Auth{
		User:  User{ID: userID, Email: "user@example.com", Name: "Test User"},
		Token: "tok_live",
	})
	return s
}
