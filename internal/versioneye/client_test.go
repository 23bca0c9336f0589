package versioneye_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/xkilldash9x/veye-maven/internal/versioneye"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const document = `{"name":"demo","dependencies":[],"plugins":[]}`

// recordedUpload captures what the fake service received.
type recordedUpload struct {
	method   string
	path     string
	apiKey   string
	filename string
	partType string
	content  string
}

func newFakeService(t *testing.T, status int, response string) (*httptest.Server, *recordedUpload) {
	t.Helper()
	rec := &recordedUpload{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.apiKey = r.URL.Query().Get("api_key")

		file, header, err := r.FormFile("upload")
		if assert.NoError(t, err) {
			defer file.Close()
			data, _ := io.ReadAll(file)
			rec.filename = header.Filename
			rec.partType = header.Header.Get("Content-Type")
			rec.content = string(data)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(server.Close)
	return server, rec
}

func newClient(t *testing.T, server *httptest.Server, apiPath string) *versioneye.Client {
	t.Helper()
	httpClient := server.Client()
	t.Cleanup(httpClient.CloseIdleConnections)
	return versioneye.NewClient(httpClient, versioneye.Config{
		BaseURL: server.URL + "/",
		APIPath: apiPath,
		APIKey:  "secret",
	}, zaptest.NewLogger(t))
}

func TestCreateProject(t *testing.T) {
	server, rec := newFakeService(t, http.StatusCreated,
		`{"id":"5f1c","name":"demo","dep_number":4,"out_number":1}`)
	client := newClient(t, server, "/api/v2")

	resp, err := client.CreateProject(context.Background(), []byte(document))
	require.NoError(t, err)

	assert.Equal(t, "5f1c", resp.ID)
	assert.Equal(t, "demo", resp.Name)
	assert.Equal(t, 4, resp.DepNumber)
	assert.Equal(t, 1, resp.OutNumber)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/v2/projects", rec.path)
	assert.Equal(t, "secret", rec.apiKey)
	assert.Equal(t, "pom.json", rec.filename)
	assert.Equal(t, "application/json", rec.partType)
	assert.JSONEq(t, document, rec.content)
}

func TestCreateProject_MissingID(t *testing.T) {
	server, _ := newFakeService(t, http.StatusOK, `{"name":"demo"}`)
	client := newClient(t, server, "api/v2/")

	_, err := client.CreateProject(context.Background(), []byte(document))
	assert.ErrorIs(t, err, versioneye.ErrMissingProjectID)
}

func TestUpdateProject(t *testing.T) {
	server, rec := newFakeService(t, http.StatusOK,
		`{"id":"5f1c","name":"demo","dep_number":5,"out_number":0}`)
	client := newClient(t, server, "/api/v2")

	resp, err := client.UpdateProject(context.Background(), "5f1c", []byte(document))
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/projects/5f1c", rec.path)
	assert.Equal(t, 5, resp.DepNumber)
}

func TestUpdateProject_EmptyID(t *testing.T) {
	client := versioneye.NewClient(http.DefaultClient, versioneye.Config{BaseURL: "http://unused"}, zaptest.NewLogger(t))

	_, err := client.UpdateProject(context.Background(), " ", []byte(document))
	assert.Error(t, err)
}

func TestUpload_APIError(t *testing.T) {
	server, _ := newFakeService(t, http.StatusUnauthorized, `{"error":"API key is not valid"}`)
	client := newClient(t, server, "/api/v2")

	_, err := client.CreateProject(context.Background(), []byte(document))
	require.Error(t, err)

	var apiErr *versioneye.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "API key is not valid")
	assert.Equal(t, "service responded with status 401: API key is not valid", err.Error())
}

func TestAPIError_PlainBody(t *testing.T) {
	assert.Equal(t, "service responded with status 500: boom", (&versioneye.APIError{StatusCode: 500, Body: "boom\n"}).Error())
	assert.Equal(t, "service responded with status 502", (&versioneye.APIError{StatusCode: 502}).Error())
}

func TestUpload_MalformedResponse(t *testing.T) {
	server, _ := newFakeService(t, http.StatusOK, `not json`)
	client := newClient(t, server, "/api/v2")

	_, err := client.UpdateProject(context.Background(), "1", []byte(document))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode service response")
}

func TestUpload_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := newClient(t, server, "/api/v2")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.CreateProject(ctx, []byte(document))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
