package tui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/util"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when a user cancels an interactive flow.
var ErrAborted = errors.New("aborted by user")

// EmploymentTypes lists the employment types the backend accepts.
var EmploymentTypes = []string{"full-time", "part-time", "contract", "internship", "temporary"}

// JobForm runs an interactive wizard that collects a job posting. Values
// in prefill are used as defaults.
func JobForm(prefill domain.JobInput) (*domain.JobInput, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	in := prefill
	remote := in.Remote != nil && *in.Remote
	if in.EmploymentType == "" {
		in.EmploymentType = EmploymentTypes[0]
	}
	skills := strings.Join(in.Skills, ", ")
	salaryMin := intString(in.SalaryMin)
	salaryMax := intString(in.SalaryMax)

	typeOpts := make([]huh.Option[string], 0, len(EmploymentTypes))
	for _, t := range EmploymentTypes {
		typeOpts = append(typeOpts, huh.NewOption(t, t))
	}

	basics := huh.NewGroup(
		huh.NewInput().
			Title("Job title").
			Value(&in.Title).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("title is required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Location").
			Placeholder("Berlin, DE").
			Value(&in.Location),
		huh.NewConfirm().
			Title("Remote friendly?").
			Value(&remote),
		huh.NewSelect[string]().
			Title("Employment type").
			Options(typeOpts...).
			Value(&in.EmploymentType),
	)

	details := huh.NewGroup(
		huh.NewInput().
			Title("Skills").
			Description("Comma separated").
			Value(&skills),
		huh.NewInput().
			Title("Salary minimum").
			Value(&salaryMin).
			Validate(validateOptionalInt),
		huh.NewInput().
			Title("Salary maximum").
			Value(&salaryMax).
			Validate(func(s string) error {
				if err := validateOptionalInt(s); err != nil {
					return err
				}
				lo, _ := parseOptionalInt(salaryMin)
				hi, _ := parseOptionalInt(s)
				return util.ValidateSalaryRange(lo, hi)
			}),
		huh.NewText().
			Title("Description").
			Value(&in.Description).
			Lines(6),
	)

	publish := true
	confirm := huh.NewGroup(
		huh.NewNote().
			Title("Summary").
			DescriptionFunc(func() string {
				return fmt.Sprintf("%s · %s · %s", strings.TrimSpace(in.Title), in.Location, in.EmploymentType)
			}, &in),
		huh.NewConfirm().
			Title("Publish now?").
			Description("No saves the posting as a draft.").
			Value(&publish),
	)

	if err := runForm(accessible, basics, details, confirm); err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	in.Remote = &remote
	in.Skills = util.SplitList(skills)
	in.SalaryMin, _ = parseOptionalInt(salaryMin)
	in.SalaryMax, _ = parseOptionalInt(salaryMax)
	in.Status = domain.JobStatusDraft
	if publish {
		in.Status = domain.JobStatusOpen
	}
	return &in, nil
}

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

func intString(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func parseOptionalInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func validateOptionalInt(s string) error {
	if _, err := parseOptionalInt(s); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}
