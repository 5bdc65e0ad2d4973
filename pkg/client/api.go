// Package client holds the dashboard-side state containers: a session
// cache and a file cache mirroring the server's records. All network
// effects sit behind the API interface so the transition logic is
// testable without a server.
package client

import (
	"context"
	"fmt"
	"io"
	"time"
)

type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

type Auth struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type Grant struct {
	Signature string `json:"signature"`
	Timestamp string `json:"timestamp"`
	APIKey    string `json:"api_key"`
	CloudName string `json:"cloud_name"`
	Folder    string `json:"folder"`
}

type File struct {
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

type FileData struct {
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
	Size         uint64 `json:"size"`
	Type         string `json:"type"`
	PublicID     string `json:"cloudinary_public_id"`
	URL          string `json:"cloudinary_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Patch is a partial file update; zero fields are not sent.
type Patch struct {
	NewName   string
	IsStarred *bool
	IsDeleted *bool
}

type API interface {
	Signup(ctx context.Context, email, password, name string) (*Auth, error)
	Login(ctx context.Context, email, password string) (*Auth, error)
	Verify(ctx context.Context, token string) (*User, error)
	Logout(ctx context.Context, token string) error

	ListFiles(ctx context.Context, token, userID string) ([]File, error)
	CreateFile(ctx context.Context, token, userID string, data FileData) (*File, error)
	UpdateFile(ctx context.Context, token, userID, fileID string, patch Patch) error
	DeleteFile(ctx context.Context, token, userID, fileID string) error

	GetUploadGrant(ctx context.Context, token, userID string) (*Grant, error)
	DeleteBlob(ctx context.Context, token, userID, publicID string) error
}

// TokenStore persists the bearer token between page loads. The browser
// build backs this with local storage; tests use an in-memory one.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

type BlobResult struct {
	PublicID     string
	URL          string
	ThumbnailURL string
}

// BlobUploader pushes the binary straight to the blob store using a
// signed grant; payload bytes never pass through the API server.
type BlobUploader interface {
	Upload(ctx context.Context, grant Grant, name string, r io.Reader) (*BlobResult, error)
}

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}
