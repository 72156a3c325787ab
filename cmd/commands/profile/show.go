package profile

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/domain"

	"github.com/spf13/cobra"
)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "show",
		Short:        "Show your profile",
		RunE:         runShow,
		SilenceUsage: true,
	}
	cmdutil.AddOutputFlag(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	output, err := cmdutil.Output(cmd)
	if err != nil {
		return err
	}
	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}
	ctx := cmdutil.Context(cmd)

	r, err := role(cmd, s.API)
	if err != nil {
		return cmdutil.Explain("failed to fetch account", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	if r == domain.RoleEmployer {
		p, err := s.API.GetEmployerProfile(ctx)
		if err != nil {
			return cmdutil.Explain("failed to fetch profile", err)
		}
		if output == "json" {
			return cmdutil.PrintJSON(cmd, p)
		}
		fmt.Fprintf(w, "  Company:\t%s\n", p.CompanyName)
		fmt.Fprintf(w, "  Website:\t%s\n", dash(p.Website))
		fmt.Fprintf(w, "  Industry:\t%s\n", dash(p.Industry))
		fmt.Fprintf(w, "  Size:\t%s\n", dash(p.Size))
		fmt.Fprintf(w, "  About:\t%s\n", dash(p.About))
		return nil
	}

	p, err := s.API.GetTalentProfile(ctx)
	if err != nil {
		return cmdutil.Explain("failed to fetch profile", err)
	}
	if output == "json" {
		return cmdutil.PrintJSON(cmd, p)
	}
	fmt.Fprintf(w, "  Headline:\t%s\n", dash(p.Headline))
	fmt.Fprintf(w, "  Location:\t%s\n", dash(p.Location))
	fmt.Fprintf(w, "  Experience:\t%d years\n", p.YearsExperience)
	fmt.Fprintf(w, "  Skills:\t%s\n", dash(strings.Join(p.Skills, ", ")))
	for _, e := range p.Experience {
		to := e.To
		if to == "" {
			to = "now"
		}
		fmt.Fprintf(w, "  \t%s, %s (%s – %s)\n", e.Title, e.Company, e.From, to)
	}
	fmt.Fprintf(w, "  Summary:\t%s\n", dash(p.Summary))
	return nil
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
