package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/paperfold/formsync"
)

var fillSeed int64

// fillClientOptions seeds the generator only when --seed was given, so the
// default stays nondeterministic.
func fillClientOptions() []formsync.Option {
	if fillCmd.Flags().Changed("seed") {
		return []formsync.Option{formsync.WithFillSeed(fillSeed)}
	}
	return nil
}

// fillCmd represents the fill command
var fillCmd = &cobra.Command{
	Use:   "fill <template-id>",
	Short: "Generate values for every field of a local template",
	Long: `Fill evaluates the generation expression of every field in the template
and prints the resulting values. Fields still holding the TODO sentinel make
the command fail, listing all of them at once.`,
	Example: `  formsync fill 12
  formsync fill 12 --seed 42`,
	Args: cobra.ExactArgs(1),
}

func init() {
	fillCmd.RunE = runFill
	rootCmd.AddCommand(fillCmd)

	fillCmd.Flags().Int64Var(&fillSeed, "seed", 0, "Seed the value generator for reproducible output")
}

func runFill(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid template id %q", args[0])
	}

	client, err := newClient(false, fillClientOptions()...)
	if err != nil {
		return err
	}

	values, err := client.Fill(cmd.Context(), id)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s: %s\n", name, values[name])
	}
	return nil
}
