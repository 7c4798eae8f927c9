// Package docuseal implements the client for the remote e-signature service:
// listing the template catalog, creating submissions with generated values,
// polling submission status, and downloading completed documents.
package docuseal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/paperfold/formsync/internal/transport"
	"github.com/paperfold/formsync/pkg/catalogs"
	"github.com/paperfold/formsync/pkg/errors"
	"github.com/paperfold/formsync/pkg/logging"
)

// DefaultPageSize is the page size requested from the list endpoint.
const DefaultPageSize = 100

// IdempotencyHeader carries a client-generated key so a retried submission
// cannot double-create on the service side.
const IdempotencyHeader = "X-Idempotency-Key"

// Client talks to the remote service API.
type Client struct {
	baseURL   string
	apiKey    string
	transport *transport.Client
	logger    *zerolog.Logger
	email     string
	pageSize  int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.transport = transport.New(c.apiKey, transport.WithHTTPClient(hc))
	}
}

// WithLogger sets the logger used by the client.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSubmitterEmail sets the fallback submitter email used when a
// submission's values carry none.
func WithSubmitterEmail(email string) Option {
	return func(c *Client) { c.email = email }
}

// WithPageSize overrides the list page size.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// New creates a client for the service at baseURL, authenticating with
// apiKey.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		transport: transport.New(apiKey),
		logger:    logging.Default(),
		email:     "signer@example.com",
		pageSize:  DefaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListTemplates fetches the full remote template catalog, following the
// "after" cursor until the service reports no further page.
func (c *Client) ListTemplates(ctx context.Context) ([]catalogs.RemoteTemplate, error) {
	var all []catalogs.RemoteTemplate
	after := int64(0)
	for {
		url := fmt.Sprintf("%s/templates?limit=%d", c.baseURL, c.pageSize)
		if after > 0 {
			url = fmt.Sprintf("%s&after=%d", url, after)
		}
		resp, err := c.transport.Get(ctx, url)
		if err != nil {
			return nil, err
		}
		var page listResponse
		if err := decode(resp, "/templates", &page); err != nil {
			return nil, err
		}
		all = append(all, page.Data...)
		if len(page.Data) < c.pageSize || page.Pagination.Next == 0 {
			break
		}
		after = page.Pagination.Next
	}
	c.logger.Debug().Int("templates", len(all)).Msg("fetched remote template catalog")
	return all, nil
}

// CreateSubmission creates a submission for templateID with the given field
// values and returns the submission ID. The submitter email is taken from an
// "email" field in values when present.
func (c *Client) CreateSubmission(ctx context.Context, templateID int64, values map[string]string) (int64, error) {
	if templateID <= 0 {
		return 0, errors.NewValidationError("template_id", templateID, "must be positive")
	}
	body, err := json.Marshal(submissionRequest{
		TemplateID: templateID,
		SendEmail:  false,
		Submitters: []submissionSubmitter{{
			Email:  c.submitterEmail(values),
			Values: values,
		}},
	})
	if err != nil {
		return 0, errors.WrapResource("encode", "submission", fmt.Sprintf("%d", templateID), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/submissions", strings.NewReader(string(body)))
	if err != nil {
		return 0, errors.WrapResource("create", "request", "POST /submissions", err)
	}
	req.Header.Set(IdempotencyHeader, uuid.NewString())
	resp, err := c.transport.Do(req)
	if err != nil {
		return 0, err
	}
	var created []createdSubmitter
	if err := decode(resp, "/submissions", &created); err != nil {
		return 0, err
	}
	if len(created) == 0 {
		return 0, errors.NewAPIError("/submissions", resp.StatusCode, "empty response")
	}
	id := created[0].SubmissionID
	c.logger.Info().Int64("submission_id", id).Int64("template_id", templateID).Msg("submission created")
	return id, nil
}

// Submission fetches the current status of a submission.
func (c *Client) Submission(ctx context.Context, id int64) (*Submission, error) {
	endpoint := fmt.Sprintf("/submissions/%d", id)
	resp, err := c.transport.Get(ctx, c.baseURL+endpoint)
	if err != nil {
		return nil, err
	}
	var sub Submission
	if err := decode(resp, endpoint, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// DownloadDocuments fetches every completed document of a submission into
// dir and returns the written paths.
func (c *Client) DownloadDocuments(ctx context.Context, id int64, dir string) ([]string, error) {
	sub, err := c.Submission(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(sub.Documents) == 0 {
		return nil, errors.NewNotFoundError("documents", fmt.Sprintf("submission %d", id))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}
	paths := make([]string, 0, len(sub.Documents))
	for _, doc := range sub.Documents {
		path, err := c.download(ctx, doc, dir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (c *Client) download(ctx context.Context, doc Document, dir string) (string, error) {
	resp, err := c.transport.Get(ctx, doc.URL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.NewAPIError(doc.URL, resp.StatusCode, "document download failed")
	}

	name := filepath.Base(doc.Name)
	if filepath.Ext(name) == "" {
		name += ".pdf"
	}
	path := filepath.Join(dir, name)
	out, err := os.Create(path)
	if err != nil {
		return "", errors.WrapIO("create", path, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	c.logger.Debug().Str("path", path).Msg("document downloaded")
	return path, nil
}

func (c *Client) submitterEmail(values map[string]string) string {
	for name, value := range values {
		if strings.EqualFold(strings.TrimSpace(name), "email") && value != "" {
			return value
		}
	}
	return c.email
}

// decode checks the response status and unmarshals the JSON body into v.
func decode(resp *http.Response, endpoint string, v any) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(body))
		if len(msg) > 200 {
			msg = msg[:200]
		}
		return errors.NewAPIError(endpoint, resp.StatusCode, msg)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.WrapParse("json", endpoint, err)
	}
	return nil
}
