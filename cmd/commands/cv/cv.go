package cv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"nathanbeddoewebdev/hirectl/internal/backend"
	"nathanbeddoewebdev/hirectl/internal/domain"

	"github.com/spf13/cobra"
)

// Parse polling. Variables so tests can shorten the wait.
var (
	parsePolls    = 10
	parseInterval = 2 * time.Second
)

// NewCommand returns the "cv" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cv",
		Short: "Import a CV into your talent profile",
		Long: `Import a CV into your talent profile.

The CV is parsed on the server. Review the parsed result, then confirm it
to overwrite your profile's headline, summary, skills and experience.`,
	}

	cmd.AddCommand(UploadCommand())
	cmd.AddCommand(ConfirmCommand())

	return cmd
}

// waitForParse polls ParseCV until the parser produces a result.
func waitForParse(ctx context.Context, api backend.API, uploadID string) (*domain.ParsedCV, error) {
	var err error
	for i := range parsePolls {
		var parsed *domain.ParsedCV
		if parsed, err = api.ParseCV(ctx, uploadID); err == nil || !notReady(err) {
			return parsed, err
		}
		if i == parsePolls-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(parseInterval):
		}
	}
	return nil, fmt.Errorf("CV %s is still being processed, try `hirectl cv confirm %s` shortly: %w", uploadID, uploadID, err)
}

func notReady(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict)
}

func printParsed(out io.Writer, p *domain.ParsedCV) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "  Upload:\t%s\n", p.UploadID)
	fmt.Fprintf(w, "  Headline:\t%s\n", p.Headline)
	fmt.Fprintf(w, "  Experience:\t%d years\n", p.YearsExperience)
	fmt.Fprintf(w, "  Skills:\t%s\n", strings.Join(p.Skills, ", "))
	for _, e := range p.Experience {
		fmt.Fprintf(w, "  \t%s, %s\n", e.Title, e.Company)
	}
	if p.Confidence > 0 {
		fmt.Fprintf(w, "  Confidence:\t%.0f%%\n", p.Confidence*100)
	}
}
