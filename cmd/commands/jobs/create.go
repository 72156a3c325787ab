package jobs

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a job posting",
		Long: `Publish a job posting for your team.

Without --title and in a terminal, an interactive wizard collects the
posting. Flags given alongside the wizard become its defaults.

Examples:
  hirectl jobs create
  hirectl jobs create --title "Go engineer" --location Berlin --remote \
    --type full-time --skills go,postgres --salary-min 70000 --salary-max 90000`,
		RunE:         runCreate,
		SilenceUsage: true,
	}

	addJobFlags(cmd)
	cmd.Flags().Bool("draft", false, "Save as a draft instead of publishing")
	cmdutil.AddOutputFlag(cmd)

	return cmdutil.Audited(cmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	output, err := cmdutil.Output(cmd)
	if err != nil {
		return err
	}
	in, err := jobInputFromFlags(cmd)
	if err != nil {
		return err
	}

	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}

	if in.Title == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("--title is required when not running in a terminal")
		}
		filled, err := tui.JobForm(in)
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Job creation cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
		in = *filled
	} else {
		in.Status = domain.JobStatusOpen
		if draft, _ := cmd.Flags().GetBool("draft"); draft {
			in.Status = domain.JobStatusDraft
		}
	}

	job, err := s.API.CreateJob(cmdutil.Context(cmd), in)
	if err != nil {
		return cmdutil.Explain("failed to create job", err)
	}
	cmdutil.SetAuditResource(cmd, "job", job.ID, job.Title)

	if output == "json" {
		return cmdutil.PrintJSON(cmd, job)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created job %s (%s)\n", job.ID, job.Status)
	return nil
}
