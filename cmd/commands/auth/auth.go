package auth

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in and manage your session",
		Long: `Sign in and manage your session.

Session tokens are stored in the system keychain under the "hirectl" service.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(LogoutCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(WhoamiCommand())

	return cmd
}
