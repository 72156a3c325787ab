package jobs

import "github.com/spf13/cobra"

// NewCommand returns the "jobs" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Search, post and apply to jobs",
		Long: `Search, post and apply to jobs.

Talent accounts search, view matches and apply. Team accounts create and
manage their own postings.`,
	}

	cmd.AddCommand(SearchCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(ApplyCommand())
	cmd.AddCommand(MineCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(DeleteCommand())
	cmd.AddCommand(MatchesCommand())

	return cmd
}
