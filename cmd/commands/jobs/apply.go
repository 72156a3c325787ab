package jobs

import (
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

func ApplyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <job-id>",
		Short: "Apply to a job",
		Long: `Apply to a job, optionally with a cover letter.

Examples:
  hirectl jobs apply job_123
  hirectl jobs apply job_123 --cover-letter "I'd love to help"
  hirectl jobs apply job_123 --cover-letter-file letter.md`,
		Args:         cobra.ExactArgs(1),
		RunE:         runApply,
		SilenceUsage: true,
	}

	cmd.Flags().String("cover-letter", "", "Cover letter text")
	cmd.Flags().String("cover-letter-file", "", "Read the cover letter from a file")
	cmd.MarkFlagsMutuallyExclusive("cover-letter", "cover-letter-file")

	return cmdutil.Audited(cmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	id := strings.TrimSpace(args[0])
	cover, _ := cmd.Flags().GetString("cover-letter")
	if path, _ := cmd.Flags().GetString("cover-letter-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read cover letter: %w", err)
		}
		cover = string(data)
	}

	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}

	cmdutil.SetAuditResource(cmd, "job", id, "")
	app, err := s.API.ApplyToJob(cmdutil.Context(cmd), id, strings.TrimSpace(cover))
	if err != nil {
		return cmdutil.Explain("apply failed", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Applied to %s (application %s, %s)\n", id, app.ID, app.Status)
	return nil
}
