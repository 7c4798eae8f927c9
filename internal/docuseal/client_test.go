package docuseal

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperfold/formsync/internal/transport"
	"github.com/paperfold/formsync/pkg/catalogs"
	"github.com/paperfold/formsync/pkg/errors"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New("https://example.com", "")
	require.ErrorIs(t, err, errors.ErrAPIKeyRequired)
}

func TestListTemplatesPaginates(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get(transport.AuthHeader))
		after := r.URL.Query().Get("after")
		var resp listResponse
		switch after {
		case "":
			resp.Data = remoteTemplates(1, 2)
			resp.Pagination.Next = 2
		case "2":
			resp.Data = remoteTemplates(3)
			resp.Pagination.Next = 0
		default:
			t.Errorf("unexpected cursor %q", after)
			http.NotFound(w, r)
			return
		}
		writeJSON(t, w, resp)
	}))
	defer srv.Close()

	client, err := New(srv.URL, "secret", WithPageSize(2))
	require.NoError(t, err)

	templates, err := client.ListTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, templates, 3)
	assert.Equal(t, int64(1), templates[0].ID)
	assert.Equal(t, int64(3), templates[2].ID)
	for _, auth := range gotAuth {
		assert.Equal(t, "secret", auth)
	}
}

func TestCreateSubmission(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/submissions", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get(transport.AuthHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		key := r.Header.Get(IdempotencyHeader)
		_, err := uuid.Parse(key)
		assert.NoError(t, err, "idempotency key must be a valid uuid")

		var req submissionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(7), req.TemplateID)
		require.Len(t, req.Submitters, 1)
		assert.Equal(t, "an.nguyen@example.com", req.Submitters[0].Email)
		assert.Equal(t, "Nguyễn Văn An", req.Submitters[0].Values["Họ và tên"])

		writeJSON(t, w, []createdSubmitter{{ID: 11, SubmissionID: 42, Status: "pending"}})
	}))
	defer srv.Close()

	client, err := New(srv.URL, "secret")
	require.NoError(t, err)

	id, err := client.CreateSubmission(context.Background(), 7, map[string]string{
		"Họ và tên": "Nguyễn Văn An",
		"Email":     "an.nguyen@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestCreateSubmissionRejectsBadID(t *testing.T) {
	client, err := New("https://example.com", "secret")
	require.NoError(t, err)

	_, err = client.CreateSubmission(context.Background(), 0, nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSubmissionStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/submissions/42", r.URL.Path)
		writeJSON(t, w, Submission{ID: 42, Status: "completed", Documents: []Document{{Name: "contract", URL: "https://example.com/contract.pdf"}}})
	}))
	defer srv.Close()

	client, err := New(srv.URL, "secret")
	require.NoError(t, err)

	sub, err := client.Submission(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, sub.Completed())
	require.Len(t, sub.Documents, 1)
}

func TestDownloadDocuments(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/submissions/42":
			writeJSON(t, w, Submission{ID: 42, Status: "completed", Documents: []Document{
				{Name: "hop-dong-lao-dong", URL: srv.URL + "/files/1"},
			}})
		case "/files/1":
			_, _ = w.Write([]byte("%PDF-1.4 fake"))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client, err := New(srv.URL, "secret")
	require.NoError(t, err)

	dir := t.TempDir()
	paths, err := client.DownloadDocuments(context.Background(), 42, dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "hop-dong-lao-dong.pdf"), paths[0])

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
}

func TestAPIErrorCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := New(srv.URL, "bad")
	require.NoError(t, err)

	_, err = client.ListTemplates(context.Background())
	require.Error(t, err)
	var apiErr *errors.APIError
	require.True(t, stderrors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func remoteTemplates(ids ...int64) []catalogs.RemoteTemplate {
	out := make([]catalogs.RemoteTemplate, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalogs.RemoteTemplate{
			ID:   id,
			Name: fmt.Sprintf("Template %d", id),
			Fields: []catalogs.RemoteField{
				{Name: "Họ và tên", Type: "text"},
			},
		})
	}
	return out
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}
