// Package formsync keeps a locally persisted catalog of document templates
// synchronized with the template catalog of a remote e-signature service,
// preserving user-authored generation expressions across syncs and driving
// the fill-and-submit workflow built on top of the catalog.
package formsync

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/paperfold/formsync/internal/docuseal"
	"github.com/paperfold/formsync/pkg/catalogs"
	"github.com/paperfold/formsync/pkg/errors"
	"github.com/paperfold/formsync/pkg/fill"
	"github.com/paperfold/formsync/pkg/logging"
	"github.com/paperfold/formsync/pkg/reconcile"
)

// Version is the formsync release version.
const Version = "0.3.1"

// Client is the high level entry point for catalog synchronization and the
// submission workflow.
type Client interface {
	// Sync reconciles the local catalog with the remote service and
	// persists the result unless WithDryRun is given.
	Sync(ctx context.Context, opts ...SyncOption) (*reconcile.Stats, error)

	// Templates loads the local catalog.
	Templates() ([]catalogs.Template, error)

	// Template looks up a local catalog entry by ID.
	Template(id int64) (*catalogs.Template, error)

	// Stale reports local entries that no longer exist remotely.
	Stale(ctx context.Context) ([]string, error)

	// Fill generates a value for every field of a local template.
	Fill(ctx context.Context, templateID int64) (map[string]string, error)

	// Submit generates values and creates a submission on the remote
	// service, returning the submission ID.
	Submit(ctx context.Context, templateID int64) (int64, error)

	// Submission fetches the current status of a submission.
	Submission(ctx context.Context, id int64) (*docuseal.Submission, error)

	// Download fetches the completed documents of a submission into dir.
	Download(ctx context.Context, id int64, dir string) ([]string, error)
}

// remoteService is the slice of the service client the orchestration needs.
type remoteService interface {
	ListTemplates(ctx context.Context) ([]catalogs.RemoteTemplate, error)
	CreateSubmission(ctx context.Context, templateID int64, values map[string]string) (int64, error)
	Submission(ctx context.Context, id int64) (*docuseal.Submission, error)
	DownloadDocuments(ctx context.Context, id int64, dir string) ([]string, error)
}

type client struct {
	options *options
	logger  *zerolog.Logger
	remote  remoteService
	filler  *fill.Filler
}

// New creates a formsync client. An API key is only required for operations
// that reach the remote service.
func New(opts ...Option) (Client, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	c := &client{
		options: options,
		logger:  options.logger,
		filler:  fill.New(options.fillOptions...),
	}
	if c.logger == nil {
		c.logger = logging.Default()
	}

	if options.apiKey != "" {
		var dsOpts []docuseal.Option
		if options.httpClient != nil {
			dsOpts = append(dsOpts, docuseal.WithHTTPClient(options.httpClient))
		}
		dsOpts = append(dsOpts, docuseal.WithLogger(c.logger))
		remote, err := docuseal.New(options.baseURL, options.apiKey, dsOpts...)
		if err != nil {
			return nil, err
		}
		c.remote = remote
	}
	return c, nil
}

// Templates loads the local catalog from disk.
func (c *client) Templates() ([]catalogs.Template, error) {
	return catalogs.LoadOrEmpty(c.options.catalogPath)
}

// Template looks up a local catalog entry by ID.
func (c *client) Template(id int64) (*catalogs.Template, error) {
	templates, err := c.Templates()
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if templates[i].ID == id {
			t := templates[i].Copy()
			return &t, nil
		}
	}
	return nil, errors.NewNotFoundError("template", formatID(id))
}

// Stale fetches the remote catalog and reports local entries with no remote
// counterpart. The local catalog is not modified.
func (c *client) Stale(ctx context.Context) ([]string, error) {
	remote, err := c.service()
	if err != nil {
		return nil, err
	}
	local, err := c.Templates()
	if err != nil {
		return nil, err
	}
	remotes, err := remote.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	return reconcile.Stale(local, remotes), nil
}

// Submission fetches the current status of a submission.
func (c *client) Submission(ctx context.Context, id int64) (*docuseal.Submission, error) {
	remote, err := c.service()
	if err != nil {
		return nil, err
	}
	return remote.Submission(ctx, id)
}

// Download fetches the completed documents of a submission into dir.
func (c *client) Download(ctx context.Context, id int64, dir string) ([]string, error) {
	remote, err := c.service()
	if err != nil {
		return nil, err
	}
	return remote.DownloadDocuments(ctx, id, dir)
}

// service returns the remote client, failing when no API key was configured.
func (c *client) service() (remoteService, error) {
	if c.remote == nil {
		return nil, errors.ErrAPIKeyRequired
	}
	return c.remote, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
