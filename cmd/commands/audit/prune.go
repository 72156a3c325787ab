package audit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nathanbeddoewebdev/hirectl/internal/auditlog"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
)

func PruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete audit entries older than a duration",
		Long: `Delete audit entries older than a duration, optionally only those of
one account or outcome. --dry-run reports the count without deleting.

Examples:
  hirectl audit prune --older-than 30d
  hirectl audit prune --older-than 72h --outcome error
  hirectl audit prune --older-than 90d --user 42 --dry-run`,
		RunE:         runPrune,
		SilenceUsage: true,
	}

	cmd.Flags().String("older-than", "", "Remove entries older than this duration (e.g. 30d, 72h)")
	cmd.Flags().Bool("dry-run", false, "Only report how many entries would be removed")
	addFilterFlags(cmd)
	cmd.MarkFlagRequired("older-than")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("older-than")
	olderThan, err := parseDuration(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	repo, err := auditlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	if dryRun {
		n, err := repo.CountOlder(olderThan, filter)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Would remove %s.\n", english.Plural(int(n), "audit entry", "audit entries"))
		return nil
	}

	removed, err := repo.Prune(olderThan, filter)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", english.Plural(int(removed), "audit entry", "audit entries"))
	return nil
}

// addFilterFlags registers the filters shared by list and prune.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("user", "", "Only entries recorded for this account id")
	cmd.Flags().String("outcome", "", "Only entries with this outcome (success, error)")
}

func filterFromFlags(cmd *cobra.Command) (auditlog.Filter, error) {
	user, _ := cmd.Flags().GetString("user")
	outcome, _ := cmd.Flags().GetString("outcome")
	outcome = strings.ToLower(strings.TrimSpace(outcome))
	switch outcome {
	case "", auditlog.OutcomeSuccess, auditlog.OutcomeError:
	default:
		return auditlog.Filter{}, fmt.Errorf("invalid outcome %q, expected success or error", outcome)
	}
	return auditlog.Filter{UserID: strings.TrimSpace(user), Outcome: outcome}, nil
}

// parseDuration accepts Go durations plus a whole-day "Nd" form.
func parseDuration(input string) (time.Duration, error) {
	if input == "" {
		return 0, fmt.Errorf("--older-than is required")
	}
	d, err := time.ParseDuration(input)
	if days, ok := strings.CutSuffix(input, "d"); ok {
		var n int
		n, err = strconv.Atoi(days)
		d = time.Duration(n) * 24 * time.Hour
	}
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", input)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return d, nil
}
