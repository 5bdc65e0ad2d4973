package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"cloudvault-api/config"
)

const defaultAPIBase = "https://api.cloudinary.com/v1_1"

// Grant is the signed parameter set a browser needs for a direct upload.
// It never carries the API secret.
type Grant struct {
	Signature string `json:"signature"`
	Timestamp string `json:"timestamp"`
	APIKey    string `json:"api_key"`
	CloudName string `json:"cloud_name"`
	Folder    string `json:"folder"`
}

type Client struct {
	logger  *zap.Logger
	cfg     config.Cloudinary
	httpc   *http.Client
	apiBase string
	now     func() time.Time
}

type Option func(*Client)

func WithAPIBase(base string) Option {
	return func(c *Client) { c.apiBase = base }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func New(logger *zap.Logger, cfg config.Cloudinary, opts ...Option) *Client {
	c := &Client{
		logger:  logger,
		cfg:     cfg,
		httpc:   &http.Client{Timeout: 15 * time.Second},
		apiBase: defaultAPIBase,
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Configured() bool {
	return c.cfg.CloudName != "" && c.cfg.APIKey != "" && c.cfg.APISecret != ""
}

// UserFolder is the per-user namespace all of the user's blobs live under.
func (c *Client) UserFolder(userID string) string {
	return c.cfg.Folder + "/" + userID
}

// SignUpload issues a time-boxed grant scoped to the user's folder.
func (c *Client) SignUpload(userID string) Grant {
	ts := strconv.FormatInt(c.now().Unix(), 10)
	folder := c.UserFolder(userID)

	params := map[string]string{
		"folder":    folder,
		"timestamp": ts,
	}

	return Grant{
		Signature: Sign(params, c.cfg.APISecret),
		Timestamp: ts,
		APIKey:    c.cfg.APIKey,
		CloudName: c.cfg.CloudName,
		Folder:    folder,
	}
}

// Destroy signs and submits a destroy call for a blob and returns the
// provider's response verbatim.
func (c *Client) Destroy(ctx context.Context, publicID string) (map[string]any, error) {
	ts := strconv.FormatInt(c.now().Unix(), 10)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": ts,
	}
	signature := Sign(params, c.cfg.APISecret)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range map[string]string{
		"public_id": publicID,
		"signature": signature,
		"api_key":   c.cfg.APIKey,
		"timestamp": ts,
	} {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("build destroy form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build destroy form: %w", err)
	}

	url := fmt.Sprintf("%s/%s/image/destroy", c.apiBase, c.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudinary destroy call: %w", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode cloudinary response: %w", err)
	}

	c.logger.Info("cloudinary destroy submitted",
		zap.String("public_id", publicID),
		zap.Int("status", resp.StatusCode),
	)

	return result, nil
}
