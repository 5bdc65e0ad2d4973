// helpers_test.go
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"cloudvault-api/internal/domain/file"
	"cloudvault-api/internal/domain/user"
	"cloudvault-api/internal/infrastructure/cloudinary"
)

type FakeAuthService struct {
	SignupFunc        func(ctx context.Context, email, password, name string) (*user.User, string, error)
	LoginFunc         func(ctx context.Context, email, password string) (*user.User, string, error)
	VerifyFunc        func(ctx context.Context, token string) (*user.User, error)
	LogoutFunc        func(ctx context.Context, token string) error
	UpdateProfileFunc func(ctx context.Context, token, name string, avatarURL *string) (*user.User, error)
}

func (f *FakeAuthService) Signup(ctx context.Context, email, password, name string) (*user.User, string, error) {
	return f.SignupFunc(ctx, email, password, name)
}

func (f *FakeAuthService) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	return f.LoginFunc(ctx, email, password)
}

func (f *FakeAuthService) Verify(ctx context.Context, token string) (*user.User, error) {
	return f.VerifyFunc(ctx, token)
}

func (f *FakeAuthService) Logout(ctx context.Context, token string) error {
	return f.LogoutFunc(ctx, token)
}

func (f *FakeAuthService) UpdateProfile(ctx context.Context, token, name string, avatarURL *string) (*user.User, error) {
	return f.UpdateProfileFunc(ctx, token, name, avatarURL)
}

type FakeFileService struct {
	ListFilesFunc  func(ctx context.Context, userID user.ID) (file.Files, error)
	CreateFileFunc func(ctx context.Context, userID user.ID, req *file.File) (*file.File, error)
	UpdateFileFunc func(ctx context.Context, userID user.ID, fileID file.ID, patch file.Patch) (bool, error)
	DeleteFileFunc func(ctx context.Context, userID user.ID, fileID file.ID) (bool, error)
}

func (f *FakeFileService) ListFiles(ctx context.Context, userID user.ID) (file.Files, error) {
	return f.ListFilesFunc(ctx, userID)
}

func (f *FakeFileService) CreateFile(ctx context.Context, userID user.ID, req *file.File) (*file.File, error) {
	return f.CreateFileFunc(ctx, userID, req)
}

func (f *FakeFileService) UpdateFile(ctx context.Context, userID user.ID, fileID file.ID, patch file.Patch) (bool, error) {
	return f.UpdateFileFunc(ctx, userID, fileID, patch)
}

func (f *FakeFileService) DeleteFile(ctx context.Context, userID user.ID, fileID file.ID) (bool, error) {
	return f.DeleteFileFunc(ctx, userID, fileID)
}

type FakeUploadService struct {
	GetSignatureFunc func(userID user.ID) (*cloudinary.Grant, error)
	DeleteBlobFunc   func(ctx context.Context, userID user.ID, publicID string) (map[string]any, error)
}

func (f *FakeUploadService) GetSignature(userID user.ID) (*cloudinary.Grant, error) {
	return f.GetSignatureFunc(userID)
}

func (f *FakeUploadService) DeleteBlob(ctx context.Context, userID user.ID, publicID string) (map[string]any, error) {
	return f.DeleteBlobFunc(ctx, userID, publicID)
}

// sessionVerifier is a Verify-only auth fake for the bearer middleware:
// one good token mapped to one user.
func sessionVerifier(goodToken string, u *user.User) *FakeAuthService {
	return &FakeAuthService{
		SignupFunc: func(ctx context.Context, email, password, name string) (*user.User, string, error) {
			return nil, "", errors.New("not used")
		},
		LoginFunc: func(ctx context.Context, email, password string) (*user.User, string, error) {
			return nil, "", errors.New("not used")
		},
		VerifyFunc: func(ctx context.Context, token string) (*user.User, error) {
			if token == goodToken {
				return u, nil
			}
			return nil, errors.New("not used")
		},
		LogoutFunc: func(ctx context.Context, token string) error { return errors.New("not used") },
		UpdateProfileFunc: func(ctx context.Context, token, name string, avatarURL *string) (*user.User, error) {
			return nil, errors.New("not used")
		},
	}
}

func doPOST(t *testing.T, r *gin.Engine, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var b []byte
	switch v := body.(type) {
	case string:
		b = []byte(v)
	default:
		var err error
		b, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func doOPTIONS(t *testing.T, r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}
