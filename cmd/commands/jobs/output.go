package jobs

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/hirectl/internal/domain"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// printJobsTable prints one row per job.
func printJobsTable(cmd *cobra.Command, jobs []domain.Job) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tTYPE\tSTATUS\tPOSTED")
	fmt.Fprintln(w, "--\t-----\t-------\t--------\t----\t------\t------")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			j.ID,
			j.Title,
			dash(j.CompanyName),
			location(j),
			dash(j.EmploymentType),
			dash(string(j.Status)),
			since(j),
		)
	}
	w.Flush()
}

// printJobDetail prints a vertical key-value table of a job.
func printJobDetail(cmd *cobra.Command, j *domain.Job) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  ID:\t%s\n", j.ID)
	fmt.Fprintf(w, "  Title:\t%s\n", j.Title)
	if j.CompanyName != "" {
		fmt.Fprintf(w, "  Company:\t%s\n", j.CompanyName)
	}
	fmt.Fprintf(w, "  Location:\t%s\n", location(*j))
	if j.EmploymentType != "" {
		fmt.Fprintf(w, "  Type:\t%s\n", j.EmploymentType)
	}
	if j.Status != "" {
		fmt.Fprintf(w, "  Status:\t%s\n", j.Status)
	}
	if s := salary(*j); s != "" {
		fmt.Fprintf(w, "  Salary:\t%s\n", s)
	}
	if len(j.Skills) > 0 {
		fmt.Fprintf(w, "  Skills:\t%s\n", strings.Join(j.Skills, ", "))
	}
	if j.Applicants > 0 {
		fmt.Fprintf(w, "  Applicants:\t%d\n", j.Applicants)
	}
	if !j.CreatedAt.IsZero() {
		fmt.Fprintf(w, "  Posted:\t%s\n", j.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	w.Flush()

	if d := strings.TrimSpace(j.Description); d != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", d)
	}
}

func location(j domain.Job) string {
	switch {
	case j.Location == "" && j.Remote:
		return "remote"
	case j.Remote:
		return j.Location + " (remote ok)"
	}
	return dash(j.Location)
}

func salary(j domain.Job) string {
	if j.SalaryMin == 0 && j.SalaryMax == 0 {
		return ""
	}
	cur := ""
	if j.Currency != "" {
		cur = j.Currency + " "
	}
	switch {
	case j.SalaryMax == 0:
		return fmt.Sprintf("from %s%s", cur, humanize.Comma(int64(j.SalaryMin)))
	case j.SalaryMin == 0:
		return fmt.Sprintf("up to %s%s", cur, humanize.Comma(int64(j.SalaryMax)))
	}
	return fmt.Sprintf("%s%s – %s", cur, humanize.Comma(int64(j.SalaryMin)), humanize.Comma(int64(j.SalaryMax)))
}

func since(j domain.Job) string {
	if j.CreatedAt.IsZero() {
		return "-"
	}
	return humanize.Time(j.CreatedAt)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
