package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	pathAuth   = "/functions/auth"
	pathFiles  = "/functions/files"
	pathUpload = "/functions/upload"
)

// HTTPAPI talks to the action-dispatch endpoints.
type HTTPAPI struct {
	base  string
	httpc *http.Client
}

func NewHTTPAPI(base string, httpc *http.Client) *HTTPAPI {
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPAPI{base: base, httpc: httpc}
}

func (a *HTTPAPI) post(ctx context.Context, path, token string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.base+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Error == "" {
			errBody.Error = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (a *HTTPAPI) Signup(ctx context.Context, email, password, name string) (*Auth, error) {
	out := new(Auth)
	err := a.post(ctx, pathAuth, "", map[string]string{
		"action":   "signup",
		"email":    email,
		"password": password,
		"name":     name,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *HTTPAPI) Login(ctx context.Context, email, password string) (*Auth, error) {
	out := new(Auth)
	err := a.post(ctx, pathAuth, "", map[string]string{
		"action":   "login",
		"email":    email,
		"password": password,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *HTTPAPI) Verify(ctx context.Context, token string) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	err := a.post(ctx, pathAuth, "", map[string]string{
		"action": "verify",
		"token":  token,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (a *HTTPAPI) Logout(ctx context.Context, token string) error {
	return a.post(ctx, pathAuth, "", map[string]string{
		"action": "logout",
		"token":  token,
	}, nil)
}

func (a *HTTPAPI) ListFiles(ctx context.Context, token, userID string) ([]File, error) {
	var out struct {
		Files []File `json:"files"`
	}
	err := a.post(ctx, pathFiles, token, map[string]any{
		"action":  "list",
		"user_id": userID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Files, nil
}

func (a *HTTPAPI) CreateFile(ctx context.Context, token, userID string, data FileData) (*File, error) {
	var out struct {
		File File `json:"file"`
	}
	err := a.post(ctx, pathFiles, token, map[string]any{
		"action":    "create",
		"user_id":   userID,
		"file_data": data,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.File, nil
}

func (a *HTTPAPI) UpdateFile(ctx context.Context, token, userID, fileID string, patch Patch) error {
	body := map[string]any{
		"action":  "update",
		"user_id": userID,
		"file_id": fileID,
	}
	if patch.NewName != "" {
		body["new_name"] = patch.NewName
	}
	fileData := map[string]any{}
	if patch.IsStarred != nil {
		fileData["is_starred"] = *patch.IsStarred
	}
	if patch.IsDeleted != nil {
		fileData["is_deleted"] = *patch.IsDeleted
	}
	if len(fileData) > 0 {
		body["file_data"] = fileData
	}

	return a.post(ctx, pathFiles, token, body, nil)
}

func (a *HTTPAPI) DeleteFile(ctx context.Context, token, userID, fileID string) error {
	return a.post(ctx, pathFiles, token, map[string]any{
		"action":  "delete",
		"user_id": userID,
		"file_id": fileID,
	}, nil)
}

func (a *HTTPAPI) GetUploadGrant(ctx context.Context, token, userID string) (*Grant, error) {
	out := new(Grant)
	err := a.post(ctx, pathUpload, token, map[string]any{
		"action":  "get_signature",
		"user_id": userID,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *HTTPAPI) DeleteBlob(ctx context.Context, token, userID, publicID string) error {
	return a.post(ctx, pathUpload, token, map[string]any{
		"action":    "delete",
		"user_id":   userID,
		"public_id": publicID,
	}, nil)
}
