package jobs

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/util"

	"github.com/spf13/cobra"
)

// addJobFlags registers the posting fields shared by create and update.
func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Job title")
	cmd.Flags().String("location", "", "Location")
	cmd.Flags().Bool("remote", false, "Remote friendly")
	cmd.Flags().String("type", "", "Employment type (full-time, part-time, contract, internship, temporary)")
	cmd.Flags().String("skills", "", "Comma-separated skills")
	cmd.Flags().Int("salary-min", 0, "Salary minimum")
	cmd.Flags().Int("salary-max", 0, "Salary maximum")
	cmd.Flags().String("currency", "", "Salary currency, e.g. EUR")
	cmd.Flags().String("description", "", "Job description")
}

// jobInputFromFlags reads the posting flags. Only flags the user set are
// copied, so the result works as a partial update.
func jobInputFromFlags(cmd *cobra.Command) (domain.JobInput, error) {
	var in domain.JobInput
	f := cmd.Flags()

	if f.Changed("title") {
		in.Title, _ = f.GetString("title")
		in.Title = strings.TrimSpace(in.Title)
	}
	if f.Changed("location") {
		in.Location, _ = f.GetString("location")
	}
	if f.Changed("remote") {
		remote, _ := f.GetBool("remote")
		in.Remote = &remote
	}
	if f.Changed("type") {
		in.EmploymentType, _ = f.GetString("type")
		in.EmploymentType = util.NormalizeKey(in.EmploymentType)
	}
	if f.Changed("skills") {
		raw, _ := f.GetString("skills")
		in.Skills = util.SplitList(raw)
	}
	in.SalaryMin, _ = f.GetInt("salary-min")
	in.SalaryMax, _ = f.GetInt("salary-max")
	if err := util.ValidateSalaryRange(in.SalaryMin, in.SalaryMax); err != nil {
		return in, err
	}
	if f.Changed("currency") {
		in.Currency, _ = f.GetString("currency")
		in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	}
	if f.Changed("description") {
		in.Description, _ = f.GetString("description")
	}
	return in, nil
}

func parseStatus(s string) (domain.JobStatus, error) {
	switch st := domain.JobStatus(util.NormalizeKey(s)); st {
	case domain.JobStatusDraft, domain.JobStatusOpen, domain.JobStatusPaused, domain.JobStatusClosed:
		return st, nil
	}
	return "", fmt.Errorf("unknown status %q (valid: draft, open, paused, closed)", s)
}
