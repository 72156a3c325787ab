package jobs

import (
	"fmt"
	"reflect"
	"strings"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/domain"

	"github.com/spf13/cobra"
)

func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <job-id>",
		Short: "Change a job posting",
		Long: `Change fields of a job posting. Only the flags you pass are sent.

Examples:
  hirectl jobs update job_123 --status paused
  hirectl jobs update job_123 --salary-max 95000 --skills go,kubernetes`,
		Args:         cobra.ExactArgs(1),
		RunE:         runUpdate,
		SilenceUsage: true,
	}

	addJobFlags(cmd)
	cmd.Flags().String("status", "", "Posting status (draft, open, paused, closed)")
	cmdutil.AddOutputFlag(cmd)

	return cmdutil.Audited(cmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id := strings.TrimSpace(args[0])
	output, err := cmdutil.Output(cmd)
	if err != nil {
		return err
	}
	in, err := jobInputFromFlags(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("status") {
		raw, _ := cmd.Flags().GetString("status")
		if in.Status, err = parseStatus(raw); err != nil {
			return err
		}
	}
	if reflect.DeepEqual(in, domain.JobInput{}) {
		return fmt.Errorf("nothing to update, pass at least one field flag")
	}

	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}

	cmdutil.SetAuditResource(cmd, "job", id, in.Title)
	job, err := s.API.UpdateJob(cmdutil.Context(cmd), id, in)
	if err != nil {
		return cmdutil.Explain("failed to update job", err)
	}

	if output == "json" {
		return cmdutil.PrintJSON(cmd, job)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated job %s\n", job.ID)
	return nil
}
