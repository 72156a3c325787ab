package profile

import (
	"fmt"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/backend"
	"nathanbeddoewebdev/hirectl/internal/domain"

	"github.com/spf13/cobra"
)

// NewCommand returns the "profile" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your profile",
		Long: `View and edit your profile.

Talent accounts have a talent profile; team accounts have a company
profile. The right one is picked from the signed-in account's role.`,
	}

	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(PictureCommand())

	return cmd
}

// role returns the signed-in account's role and records the account
// for auditing.
func role(cmd *cobra.Command, api backend.API) (domain.Role, error) {
	user, err := api.Me(cmdutil.Context(cmd))
	if err != nil {
		return "", err
	}
	cmdutil.SetAuditUser(cmd, *user)
	if user.Role == "" {
		return "", fmt.Errorf("account has no role")
	}
	return user.Role, nil
}
