package jobs

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

func MatchesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "List jobs matched to your profile",
		Long: `List jobs matched to your talent profile, best first.

Examples:
  hirectl jobs matches
  hirectl jobs matches --limit 5 -o json`,
		RunE:         runMatches,
		SilenceUsage: true,
	}
	cmd.Flags().Int("limit", 20, "Number of matches to display")
	cmdutil.AddOutputFlag(cmd)
	return cmd
}

func runMatches(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}
	output, err := cmdutil.Output(cmd)
	if err != nil {
		return err
	}
	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}

	matches, err := s.API.Matches(cmdutil.Context(cmd), limit)
	if err != nil {
		return cmdutil.Explain("failed to fetch matches", err)
	}
	if output == "json" {
		return cmdutil.PrintJSON(cmd, matches)
	}
	if len(matches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matches yet. Complete your profile to get better matches.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SCORE\tID\tTITLE\tCOMPANY\tMISSING SKILLS")
	fmt.Fprintln(w, "-----\t--\t-----\t-------\t--------------")
	for _, m := range matches {
		missing := strings.Join(m.MissingSkills, ", ")
		fmt.Fprintf(w, "%d%%\t%s\t%s\t%s\t%s\n", m.Score, m.Job.ID, m.Job.Title, dash(m.Job.CompanyName), dash(missing))
	}
	return w.Flush()
}
