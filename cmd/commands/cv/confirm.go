package cv

import (
	"fmt"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func ConfirmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirm <upload-id>",
		Short: "Apply a parsed CV to your profile",
		Long: `Apply a parsed CV to your profile, overwriting the headline, summary,
skills and experience. Prompts first unless --yes is given.`,
		Args:         cobra.ExactArgs(1),
		RunE:         runConfirm,
		SilenceUsage: true,
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmdutil.Audited(cmd)
}

func runConfirm(cmd *cobra.Command, args []string) error {
	uploadID := args[0]
	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}
	ctx := cmdutil.Context(cmd)
	cmdutil.SetAuditResource(cmd, "cv", uploadID, "")

	parsed, err := waitForParse(ctx, s.API, uploadID)
	if err != nil {
		return cmdutil.Explain("failed to load parsed CV", err)
	}
	printParsed(cmd.OutOrStdout(), parsed)

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		if !cmdutil.Interactive() {
			return fmt.Errorf("refusing to overwrite the profile without --yes in a non-interactive session")
		}
		ok := false
		err := huh.NewConfirm().
			Title("Overwrite your profile with this CV?").
			Affirmative("Apply").
			Negative("Cancel").
			Value(&ok).
			Run()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if _, err := s.API.ConfirmCV(ctx, *parsed); err != nil {
		return cmdutil.Explain("confirm failed", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Profile updated from CV.")
	return nil
}
