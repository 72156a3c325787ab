package audit

import "github.com/spf13/cobra"

// NewCommand returns the "audit" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "View and manage audit history",
		Long: "View a local audit trail of hirectl commands that changed something\n" +
			"(applications, postings, purchases, profile and config edits) and\n" +
			"prune old entries.\n\n" +
			"Audit history is stored locally in ~/.config/hirectl/hirectl.db.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
