package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/paperfold/formsync"
)

var (
	submitWait     bool
	submitDownload string
	submitTimeout  time.Duration
)

// pollInterval is how often a waited submission is checked.
const pollInterval = 3 * time.Second

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit <template-id>",
	Short: "Generate values and create a submission on the remote service",
	Long: `Submit generates a value for every field of the template and creates a
submission on the remote service. With --wait the command polls until every
signer has finished; with --download the completed documents are fetched into
the given directory (implies --wait).`,
	Example: `  formsync submit 12
  formsync submit 12 --wait
  formsync submit 12 --download ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().BoolVar(&submitWait, "wait", false, "Poll until the submission is completed")
	submitCmd.Flags().StringVar(&submitDownload, "download", "", "Download completed documents into this directory (implies --wait)")
	submitCmd.Flags().DurationVar(&submitTimeout, "timeout", 10*time.Minute, "Give up waiting after this long")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	templateID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid template id %q", args[0])
	}

	client, err := newClient(true)
	if err != nil {
		return err
	}

	id, err := client.Submit(cmd.Context(), templateID)
	if err != nil {
		return fmt.Errorf("submit failed: %w", err)
	}
	fmt.Printf("Submission %d created\n", id)

	if !submitWait && submitDownload == "" {
		return nil
	}

	if err := await(cmd.Context(), client, id); err != nil {
		return err
	}
	fmt.Printf("Submission %d completed\n", id)

	if submitDownload == "" {
		return nil
	}
	paths, err := client.Download(cmd.Context(), id, submitDownload)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	for _, path := range paths {
		fmt.Println(path)
	}
	return nil
}

// await polls the submission until it completes, the timeout elapses, or the
// context is cancelled.
func await(ctx context.Context, client formsync.Client, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		sub, err := client.Submission(ctx, id)
		if err != nil {
			return err
		}
		if sub.Completed() {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("gave up waiting for submission %d: %w", id, ctx.Err())
		case <-ticker.C:
		}
	}
}
