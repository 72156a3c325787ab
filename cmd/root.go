package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"nathanbeddoewebdev/hirectl/cmd/commands/audit"
	"nathanbeddoewebdev/hirectl/cmd/commands/auth"
	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	cfgcmd "nathanbeddoewebdev/hirectl/cmd/commands/config"
	"nathanbeddoewebdev/hirectl/cmd/commands/credits"
	"nathanbeddoewebdev/hirectl/cmd/commands/cv"
	"nathanbeddoewebdev/hirectl/cmd/commands/dashboard"
	"nathanbeddoewebdev/hirectl/cmd/commands/jobs"
	"nathanbeddoewebdev/hirectl/cmd/commands/notifications"
	"nathanbeddoewebdev/hirectl/cmd/commands/profile"
	themecmd "nathanbeddoewebdev/hirectl/cmd/commands/theme"
	"nathanbeddoewebdev/hirectl/cmd/commands/ui"
	"nathanbeddoewebdev/hirectl/internal/auditlog"
	"nathanbeddoewebdev/hirectl/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "hirectl",
		Short: "A terminal client for the hiring platform",
		Long: `hirectl is a terminal client for the hiring platform. Talent accounts
search and apply to jobs, import a CV and follow their matches; team
accounts post and manage jobs and review applicants.

Quick start:
  hirectl auth login --email you@example.com
  hirectl jobs search golang --remote
  hirectl jobs matches
  hirectl ui                         # interactive dashboard`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			jsonLogs, _ := cmd.Flags().GetBool("log-json")
			log, err := logger.New(logger.Options{Debug: debug, JSON: jsonLogs, Writer: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			if !debug {
				// Command output stays clean unless asked for.
				log = log.WithOptions(zap.IncreaseLevel(zap.WarnLevel))
			}
			cmd.SetContext(logger.IntoContext(cmd.Context(), log.Named("cli")))
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "Log debug output to stderr")
	cmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(jobs.NewCommand())
	cmd.AddCommand(profile.NewCommand())
	cmd.AddCommand(cv.NewCommand())
	cmd.AddCommand(credits.NewCommand())
	cmd.AddCommand(notifications.NewCommand())
	cmd.AddCommand(dashboard.NewCommand())
	cmd.AddCommand(themecmd.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(audit.NewCommand())
	cmd.AddCommand(ui.NewCommand())

	return cmd
}

// Execute runs the root command and records audited commands.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := rootCmd()
	start := time.Now()
	executed, err := root.ExecuteContextC(ctx)

	if cmdutil.IsAudited(executed) {
		entry := auditlog.NewEntry(executed.Context(), executed.CommandPath(), os.Args[1:], start, err)
		if recErr := auditlog.Record(entry); recErr != nil {
			logger.FromContext(executed.Context()).Debug("audit record failed", zap.Error(recErr))
		}
	}

	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
