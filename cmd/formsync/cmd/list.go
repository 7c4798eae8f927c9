package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listStale bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the templates in the local catalog",
	Long: `List prints every entry of the local catalog with its field count and the
number of fields still holding the TODO sentinel. With --stale the remote
catalog is fetched and only entries with no remote counterpart are shown.`,
	Example: `  formsync list
  formsync list --stale`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listStale, "stale", false, "Show only local entries missing from the remote catalog")
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := newClient(listStale)
	if err != nil {
		return err
	}

	if listStale {
		stale, err := client.Stale(cmd.Context())
		if err != nil {
			return err
		}
		if len(stale) == 0 {
			fmt.Println("No stale templates")
			return nil
		}
		for _, name := range stale {
			fmt.Printf("? %s\n", name)
		}
		return nil
	}

	templates, err := client.Templates()
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		fmt.Println("Catalog is empty, run 'formsync sync' first")
		return nil
	}
	for _, t := range templates {
		line := fmt.Sprintf("%d\t%s\t%d fields", t.ID, t.Name, len(t.Fields))
		if n := t.Unresolved(); n > 0 {
			line += fmt.Sprintf("\t%d unresolved", n)
		}
		fmt.Println(line)
	}
	return nil
}
