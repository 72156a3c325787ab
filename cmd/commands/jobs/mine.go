package jobs

import (
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func MineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "List your postings or applications",
		Long: `List the postings your team published, or with --applications the jobs
you applied to.

Examples:
  hirectl jobs mine
  hirectl jobs mine --applications`,
		RunE:         runMine,
		SilenceUsage: true,
	}
	cmd.Flags().Bool("applications", false, "List your applications instead of postings")
	cmdutil.AddOutputFlag(cmd)
	return cmd
}

func runMine(cmd *cobra.Command, args []string) error {
	output, err := cmdutil.Output(cmd)
	if err != nil {
		return err
	}
	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}
	ctx := cmdutil.Context(cmd)

	if apps, _ := cmd.Flags().GetBool("applications"); apps {
		list, err := s.API.ListApplications(ctx)
		if err != nil {
			return cmdutil.Explain("failed to list applications", err)
		}
		if output == "json" {
			return cmdutil.PrintJSON(cmd, list)
		}
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No applications yet.")
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tJOB\tSTATUS\tAPPLIED")
		fmt.Fprintln(w, "--\t---\t------\t-------")
		for _, a := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.JobID, a.Status, humanize.Time(a.CreatedAt))
		}
		return w.Flush()
	}

	jobs, err := s.API.ListMyJobs(ctx)
	if err != nil {
		return cmdutil.Explain("failed to list postings", err)
	}
	if output == "json" {
		return cmdutil.PrintJSON(cmd, jobs)
	}
	if len(jobs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No postings yet.")
		return nil
	}
	printJobsTable(cmd, jobs)
	return nil
}
