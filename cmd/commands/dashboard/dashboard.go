package dashboard

import (
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/domain"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewCommand returns the "dashboard" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show your dashboard summary",
		Long: `Show the headline numbers for your account: applications and profile
views for talent accounts, postings and applicants for team accounts.`,
		RunE:         runDashboard,
		SilenceUsage: true,
	}
	cmdutil.AddOutputFlag(cmd)
	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	output, err := cmdutil.Output(cmd)
	if err != nil {
		return err
	}
	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}
	ctx := cmdutil.Context(cmd)

	user, err := s.API.Me(ctx)
	if err != nil {
		return cmdutil.Explain("failed to fetch account", err)
	}
	sum, err := s.API.DashboardSummary(ctx, user.Role)
	if err != nil {
		return cmdutil.Explain("failed to fetch dashboard", err)
	}
	if output == "json" {
		return cmdutil.PrintJSON(cmd, sum)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n\n", user.DisplayName(), user.Role)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, m := range metrics(user.Role, sum) {
		fmt.Fprintf(w, "  %s:\t%s\n", m.label, humanize.Comma(int64(m.value)))
	}
	w.Flush()

	if len(sum.ApplicationsTrend) > 1 {
		fmt.Fprintf(out, "\n  Applications trend\n  %s\n", trend(sum.ApplicationsTrend))
	}
	return nil
}

type metric struct {
	label string
	value int
}

func metrics(role domain.Role, s *domain.DashboardSummary) []metric {
	if role == domain.RoleEmployer {
		return []metric{
			{"Active jobs", s.ActiveJobs},
			{"Applicants", s.TotalApplicants},
			{"Interviews", s.Interviews},
			{"Unread", s.UnreadNotices},
		}
	}
	return []metric{
		{"Applications", s.Applications},
		{"Interviews", s.Interviews},
		{"Profile views", s.ProfileViews},
		{"Unread", s.UnreadNotices},
	}
}

func trend(points []float64) string {
	sl := sparkline.New(len(points), 1)
	sl.PushAll(points)
	sl.Draw()
	return sl.View()
}
