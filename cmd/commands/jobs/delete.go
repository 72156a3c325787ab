package jobs

import (
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <job-id>",
		Short: "Delete a job posting",
		Long: `Delete a job posting. Applications to it are withdrawn.

Examples:
  hirectl jobs delete job_123
  hirectl jobs delete job_123 --yes`,
		Args:         cobra.ExactArgs(1),
		RunE:         runDelete,
		SilenceUsage: true,
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmdutil.Audited(cmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := strings.TrimSpace(args[0])
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("refusing to delete without --yes when not running in a terminal")
		}
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete job %s?", id)).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&yes).
			Run()
		if err != nil {
			return err
		}
		if !yes {
			fmt.Fprintln(cmd.ErrOrStderr(), "Deletion cancelled.")
			return nil
		}
	}

	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}
	cmdutil.SetAuditResource(cmd, "job", id, "")
	if err := s.API.DeleteJob(cmdutil.Context(cmd), id); err != nil {
		return cmdutil.Explain("failed to delete job", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted job %s\n", id)
	return nil
}
