package auth

import (
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

func WhoamiCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "whoami",
		Short:        "Show the signed-in account",
		RunE:         runWhoami,
		SilenceUsage: true,
	}
	cmdutil.AddOutputFlag(cmd)
	return cmd
}

func runWhoami(cmd *cobra.Command, args []string) error {
	output, err := cmdutil.Output(cmd)
	if err != nil {
		return err
	}
	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}

	user, err := s.API.Me(cmdutil.Context(cmd))
	if err != nil {
		return cmdutil.Explain("failed to fetch account", err)
	}
	if output == "json" {
		return cmdutil.PrintJSON(cmd, user)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID:\t%s\n", user.ID)
	fmt.Fprintf(w, "  Name:\t%s\n", user.DisplayName())
	fmt.Fprintf(w, "  Email:\t%s\n", user.Email)
	fmt.Fprintf(w, "  Role:\t%s\n", user.Role)
	if !user.CreatedAt.IsZero() {
		fmt.Fprintf(w, "  Joined:\t%s\n", user.CreatedAt.UTC().Format("2006-01-02"))
	}
	return w.Flush()
}
