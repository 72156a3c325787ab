package profile

import (
	"fmt"
	"reflect"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/util"

	"github.com/spf13/cobra"
)

func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		Long: `Update your profile. Only the flags you pass are sent.

Talent flags: --headline, --summary, --location, --skills, --years.
Team flags: --company, --website, --industry, --about.

Examples:
  hirectl profile update --headline "Backend engineer" --skills go,grpc
  hirectl profile update --company "Acme" --website https://acme.io`,
		RunE:         runUpdate,
		SilenceUsage: true,
	}

	cmd.Flags().String("headline", "", "Talent headline")
	cmd.Flags().String("summary", "", "Talent summary")
	cmd.Flags().String("location", "", "Location")
	cmd.Flags().String("skills", "", "Comma-separated skills")
	cmd.Flags().Int("years", 0, "Years of experience")
	cmd.Flags().String("company", "", "Company name")
	cmd.Flags().String("website", "", "Company website")
	cmd.Flags().String("industry", "", "Industry")
	cmd.Flags().String("about", "", "About the company")

	return cmdutil.Audited(cmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	var in domain.ProfileUpdate
	in.Headline, _ = f.GetString("headline")
	in.Summary, _ = f.GetString("summary")
	in.Location, _ = f.GetString("location")
	if raw, _ := f.GetString("skills"); raw != "" {
		in.Skills = util.SplitList(raw)
	}
	in.YearsExperience, _ = f.GetInt("years")
	in.CompanyName, _ = f.GetString("company")
	in.Website, _ = f.GetString("website")
	in.Industry, _ = f.GetString("industry")
	in.About, _ = f.GetString("about")

	if in.YearsExperience < 0 {
		return fmt.Errorf("years must not be negative")
	}
	if reflect.DeepEqual(in, domain.ProfileUpdate{}) {
		return fmt.Errorf("nothing to update, pass at least one field flag")
	}

	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}
	ctx := cmdutil.Context(cmd)

	r, err := role(cmd, s.API)
	if err != nil {
		return cmdutil.Explain("failed to fetch account", err)
	}
	cmdutil.SetAuditResource(cmd, "profile", string(r), "")

	if r == domain.RoleEmployer {
		if _, err := s.API.UpdateEmployerProfile(ctx, in); err != nil {
			return cmdutil.Explain("failed to update profile", err)
		}
	} else {
		if _, err := s.API.UpdateTalentProfile(ctx, in); err != nil {
			return cmdutil.Explain("failed to update profile", err)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")
	return nil
}
