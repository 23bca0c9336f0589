// File: internal/versioneye/client.go
package versioneye

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/xkilldash9x/veye-maven/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	uploadField    = "upload"
	uploadFilename = "pom.json"
	// maxErrorBody caps how much of a failed response is kept on APIError.
	maxErrorBody = 64 << 10
)

// ErrMissingProjectID is returned when the service accepts a new project but the
// response carries no id.
var ErrMissingProjectID = errors.New("response does not contain a project id")

// HTTPDoer is the part of *http.Client the service client needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Body)
	var parsed struct {
		Error string `json:"error"`
	}
	if json.UnmarshalFromString(msg, &parsed) == nil && parsed.Error != "" {
		msg = parsed.Error
	}
	if msg == "" {
		return fmt.Sprintf("service responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("service responded with status %d: %s", e.StatusCode, msg)
}

// Config addresses one service installation.
type Config struct {
	BaseURL string
	APIPath string
	APIKey  string
}

// Client uploads project documents to the tracking service.
type Client struct {
	http   HTTPDoer
	cfg    Config
	logger *zap.Logger
}

// NewClient creates a service client sending its requests through doer.
func NewClient(doer HTTPDoer, cfg Config, logger *zap.Logger) *Client {
	return &Client{
		http:   doer,
		cfg:    cfg,
		logger: logger.Named("versioneye"),
	}
}

// CreateProject uploads document as a new project.
func (c *Client) CreateProject(ctx context.Context, document []byte) (*schemas.ProjectResponse, error) {
	resp, err := c.upload(ctx, "/projects", document)
	if err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return nil, ErrMissingProjectID
	}
	return resp, nil
}

// UpdateProject replaces the document of an existing project.
func (c *Client) UpdateProject(ctx context.Context, projectID string, document []byte) (*schemas.ProjectResponse, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, errors.New("project id must not be empty")
	}
	return c.upload(ctx, "/projects/"+url.PathEscape(projectID), document)
}

func (c *Client) endpoint(resource string) (string, error) {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	path := "/" + strings.Trim(c.cfg.APIPath, "/")
	if path == "/" {
		path = ""
	}
	u, err := url.Parse(base + path + resource)
	if err != nil {
		return "", fmt.Errorf("invalid service url: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.cfg.APIKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) upload(ctx context.Context, resource string, document []byte) (*schemas.ProjectResponse, error) {
	endpoint, err := c.endpoint(resource)
	if err != nil {
		return nil, err
	}

	body, contentType, err := multipartBody(document)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Uploading project document",
		zap.String("resource", resource), zap.Int("bytes", len(document)))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var project schemas.ProjectResponse
	if err := json.NewDecoder(resp.Body).Decode(&project); err != nil {
		return nil, fmt.Errorf("failed to decode service response: %w", err)
	}
	c.logger.Debug("Service accepted project document",
		zap.String("project_id", project.ID), zap.Int("dep_number", project.DepNumber))
	return &project, nil
}

// multipartBody wraps document as the single file part of a multipart form.
func multipartBody(document []byte) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, uploadField, uploadFilename))
	header.Set("Content-Type", "application/json")

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create upload part: %w", err)
	}
	if _, err := part.Write(document); err != nil {
		return nil, "", fmt.Errorf("failed to write upload part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
