package jobs

import (
	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show a job posting",
		Long: `Show the full details of a job posting.

Examples:
  hirectl jobs show job_123
  hirectl jobs show job_123 -o json`,
		Args:         cobra.ExactArgs(1),
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
	s, err := cmdutil.Open(cmd)
	if err != nil {
		return err
	}

	job, err := s.API.GetJob(cmdutil.Context(cmd), args[0])
	if err != nil {
		return cmdutil.Explain("failed to fetch job", err)
	}
	if output == "json" {
		return cmdutil.PrintJSON(cmd, job)
	}
	printJobDetail(cmd, job)
	return nil
}
