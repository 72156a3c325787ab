package theme

import (
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/hirectl/internal/theme"

	"github.com/spf13/cobra"
)

func AuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report WCAG contrast ratios for the resolved theme",
		Long: `Report WCAG contrast ratios for the text-carrying colour pairs of the
resolved theme. With --strict, exit non-zero when any pair is below AA.`,
		RunE:         runAudit,
		SilenceUsage: true,
	}
	cmd.Flags().Bool("strict", false, "Fail when any pair is below AA (4.5:1)")
	return cmd
}

func runAudit(cmd *cobra.Command, args []string) error {
	t, err := resolve(cmd)
	if err != nil {
		return err
	}
	checks, err := theme.Audit(t)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PAIR\tFG\tBG\tRATIO\tGRADE")
	failed := 0
	for _, c := range checks {
		grade := "fail"
		switch {
		case c.AAA:
			grade = "AAA"
		case c.AA:
			grade = "AA"
		default:
			failed++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n", c.Name, c.Foreground, c.Background, c.Ratio, grade)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict && failed > 0 {
		return fmt.Errorf("%d of %d pairs below AA for %s/%s/%s", failed, len(checks), t.Variant, t.Mode, t.Scheme)
	}
	return nil
}
