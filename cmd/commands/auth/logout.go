package auth

import (
	"fmt"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/swrcache"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and remove the stored session",
		Long: `Sign out and remove the stored session.

The server is told about the logout on a best-effort basis. The local
tokens and cached API responses are removed either way.`,
		RunE:         runLogout,
		SilenceUsage: true,
	}
	return cmdutil.Audited(cmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	s, err := cmdutil.Open(cmd)
	if err != nil {
		return err
	}
	if err := swrcache.NewDefault().Clear(); err != nil {
		s.Logger.Debug("failed to clear cache", zap.Error(err))
	}
	if !s.Tokens.HasSession() {
		fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
		return nil
	}

	if err := s.API.Logout(cmdutil.Context(cmd)); err != nil {
		s.Logger.Debug("server logout failed", zap.Error(err))
	}
	if err := s.Tokens.ClearTokens(); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
	return nil
}
