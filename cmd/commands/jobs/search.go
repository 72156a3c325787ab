package jobs

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/domain"

	"github.com/spf13/cobra"
)

func SearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search open jobs",
		Long: `Search open jobs by keyword, location and employment type.

Examples:
  hirectl jobs search golang
  hirectl jobs search "platform engineer" --location Berlin --remote
  hirectl jobs search --type contract -o json`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runSearch,
		SilenceUsage: true,
	}

	cmd.Flags().String("location", "", "Filter by location")
	cmd.Flags().Bool("remote", false, "Only remote-friendly jobs")
	cmd.Flags().String("type", "", "Employment type, e.g. full-time or contract")
	cmd.Flags().Int("page", 1, "Result page")
	cmd.Flags().Int("per-page", 20, "Results per page")
	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	output, err := cmdutil.Output(cmd)
	if err != nil {
		return err
	}

	q := domain.JobQuery{}
	if len(args) == 1 {
		q.Text = strings.TrimSpace(args[0])
	}
	q.Location, _ = cmd.Flags().GetString("location")
	q.Remote, _ = cmd.Flags().GetBool("remote")
	q.EmploymentType, _ = cmd.Flags().GetString("type")
	q.Page, _ = cmd.Flags().GetInt("page")
	q.PerPage, _ = cmd.Flags().GetInt("per-page")
	if q.Page < 1 || q.PerPage < 1 {
		return fmt.Errorf("page and per-page must be greater than 0")
	}

	s, err := cmdutil.Open(cmd)
	if err != nil {
		return err
	}
	page, err := s.API.SearchJobs(cmdutil.Context(cmd), q)
	if err != nil {
		return cmdutil.Explain("search failed", err)
	}

	if output == "json" {
		return cmdutil.PrintJSON(cmd, page)
	}
	if len(page.Items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No jobs found.")
		return nil
	}
	printJobsTable(cmd, page.Items)
	if page.Total > len(page.Items) {
		fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d · %d of %d results\n", q.Page, len(page.Items), page.Total)
	}
	return nil
}
