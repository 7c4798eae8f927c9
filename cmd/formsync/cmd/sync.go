package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paperfold/formsync"
	"github.com/paperfold/formsync/pkg/reconcile"
)

var (
	syncDryRun      bool
	syncOnCollision string
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the local catalog with the remote template catalog",
	Long: `Sync fetches the full remote template list and folds it into the local
catalog. Matching entries are updated in place with remote ID and name while
authored expressions are kept; fields new on the remote side arrive marked
TODO; remote templates with no local entry are appended with every field
TODO. Local entries missing remotely are reported as stale but never
removed.`,
	Example: `  formsync sync
  formsync sync --dry-run
  formsync sync --catalog ./catalogs/hr.yaml
  formsync sync --on-collision skip`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Report what would change without writing the catalog")
	syncCmd.Flags().StringVar(&syncOnCollision, "on-collision", "warn", "When two remote templates hit the same local entry: warn (merge anyway) or skip")
}

func runSync(cmd *cobra.Command, args []string) error {
	policy := reconcile.CollisionWarn
	switch syncOnCollision {
	case "warn":
	case "skip":
		policy = reconcile.CollisionSkip
	default:
		return fmt.Errorf("unknown --on-collision value %q (want warn or skip)", syncOnCollision)
	}

	client, err := newClient(true, formsync.WithCollisionPolicy(policy))
	if err != nil {
		return err
	}

	var opts []formsync.SyncOption
	if syncDryRun {
		opts = append(opts, formsync.WithDryRun())
	}

	stats, err := client.Sync(cmd.Context(), opts...)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if !stats.HasChanges() {
		fmt.Println("Catalog is up to date")
		return nil
	}
	fmt.Print(stats.Summary())
	if syncDryRun {
		fmt.Println("Dry run: catalog not written")
	}
	return nil
}
