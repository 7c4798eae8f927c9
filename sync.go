package formsync

import (
	"context"

	"github.com/paperfold/formsync/pkg/catalogs"
	"github.com/paperfold/formsync/pkg/reconcile"
)

// Sync reconciles the local catalog with the remote service.
//
// The remote list is fetched completely before any merging happens, so a
// mid-flight failure never leaves a partially synced catalog. The fold is
// non-destructive: user-authored generation expressions survive, and local
// entries missing remotely are reported as stale but never removed.
func (c *client) Sync(ctx context.Context, opts ...SyncOption) (*reconcile.Stats, error) {
	cfg := &syncOptions{}
	for _, opt := range opts {
		opt(cfg)
	}

	remote, err := c.service()
	if err != nil {
		return nil, err
	}

	// Step 1: Load the local catalog, starting empty on first run.
	local, err := catalogs.LoadOrEmpty(c.options.catalogPath)
	if err != nil {
		return nil, err
	}

	// Step 2: Fetch the remote catalog in full.
	remotes, err := remote.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}

	// Step 3: Fold every remote template into the local list.
	r := reconcile.New(
		reconcile.WithCollisionPolicy(c.options.policy),
		reconcile.WithLogger(c.logger),
	)
	merged, stats := r.Run(local, remotes)

	// Step 4: Persist the complete result.
	if cfg.dryRun {
		c.logger.Info().Msg("dry run, catalog not written")
	} else if err := catalogs.Save(c.options.catalogPath, merged); err != nil {
		return nil, err
	}

	c.logger.Info().
		Int("updated", len(stats.Updated)).
		Int("added", len(stats.Added)).
		Int("stale", len(stats.Stale)).
		Int("unresolved", stats.Unresolved).
		Msg("sync complete")
	return stats, nil
}
