package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/domain"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a session is stored and still valid",
		Long: `Show whether a session is stored and still valid.

Example:
  hirectl auth status`,
		RunE:         runStatus,
		SilenceUsage: true,
	}
	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := cmdutil.Open(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "API: %s\n", s.Config.BaseURL())

	if !s.Tokens.HasSession() {
		fmt.Fprintln(out, "Session: not signed in")
		return nil
	}

	user, err := s.API.Me(cmdutil.Context(cmd))
	switch {
	case err == nil:
		fmt.Fprintf(out, "Session: signed in as %s (%s)\n", user.DisplayName(), user.Role)
	case errors.Is(err, domain.ErrUnauthorized):
		fmt.Fprintln(out, "Session: expired")
	default:
		fmt.Fprintf(out, "Session: stored, backend unreachable (%v)\n", err)
	}
	return nil
}
