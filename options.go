package formsync

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/paperfold/formsync/pkg/fill"
	"github.com/paperfold/formsync/pkg/reconcile"
)

// options holds the client configuration assembled by Option funcs.
type options struct {
	catalogPath string
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	logger      *zerolog.Logger
	policy      reconcile.CollisionPolicy
	fillOptions []fill.Option
}

func defaultOptions() *options {
	return &options{
		catalogPath: "templates.json",
		baseURL:     "https://api.docuseal.com",
		policy:      reconcile.CollisionWarn,
	}
}

// Option configures the formsync client.
type Option func(*options)

// WithCatalogPath sets the local catalog file path. The extension selects
// the serialization format, .json or .yaml.
func WithCatalogPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.catalogPath = path
		}
	}
}

// WithBaseURL sets the remote service base URL.
func WithBaseURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.baseURL = url
		}
	}
}

// WithAPIKey sets the remote service API key. Operations that reach the
// service require it.
func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = key }
}

// WithHTTPClient replaces the HTTP client used for service requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithLogger sets the logger used across the client.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithCollisionPolicy selects how a sync handles two remote templates
// resolving to the same local entry.
func WithCollisionPolicy(p reconcile.CollisionPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithFillSeed seeds the value generator for reproducible output.
func WithFillSeed(seed int64) Option {
	return func(o *options) {
		o.fillOptions = append(o.fillOptions, fill.WithSeed(seed))
	}
}

// syncOptions holds per-sync settings.
type syncOptions struct {
	dryRun bool
}

// SyncOption configures a single Sync run.
type SyncOption func(*syncOptions)

// WithDryRun reconciles and reports without persisting the result.
func WithDryRun() SyncOption {
	return func(o *syncOptions) { o.dryRun = true }
}
