package ui

import (
	"fmt"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/backend"
	"nathanbeddoewebdev/hirectl/internal/guard"
	"nathanbeddoewebdev/hirectl/internal/logger"
	"nathanbeddoewebdev/hirectl/internal/services/themeprefs"
	"nathanbeddoewebdev/hirectl/internal/state"
	"nathanbeddoewebdev/hirectl/internal/swrcache"
	"nathanbeddoewebdev/hirectl/internal/theme"
	prefsrepo "nathanbeddoewebdev/hirectl/internal/themeprefs"
	"nathanbeddoewebdev/hirectl/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewCommand returns the "ui" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard",
		Long: `Open the interactive dashboard.

Signed-out users land on the login screen. After signing in, talent
accounts see job matches (or CV onboarding if their profile is not
finished) and team accounts see their postings.

Global keys: t switches the brand variant, m the light/dark mode, c the
colour scheme, s opens theme settings, q quits.

Logs are written to the file set by the log-file config key.`,
		RunE:         runUI,
		SilenceUsage: true,
	}
	cmd.Flags().String("route", "", "Initial route, e.g. /talent or /team")
	return cmd
}

func runUI(cmd *cobra.Command, args []string) error {
	if !cmdutil.Interactive() {
		return fmt.Errorf("hirectl ui needs an interactive terminal")
	}
	route, _ := cmd.Flags().GetString("route")
	if route != "" {
		route = guard.Clean(route)
	}

	// Open once with a discard logger to learn the log path, then swap in
	// the file logger so nothing is written over the UI.
	s, err := backend.Open(zap.NewNop())
	if err != nil {
		return err
	}
	debug, _ := cmd.Flags().GetBool("debug")
	log, err := logger.New(logger.Options{File: s.Config.LogPath(), Debug: debug, JSON: true})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer log.Sync()

	s, err = backend.Open(log)
	if err != nil {
		return err
	}

	prefs := themeprefs.NewService(nil, log)
	if repo, err := prefsrepo.Open(); err == nil {
		prefs = themeprefs.NewService(repo, log)
	} else {
		log.Warn("theme preferences unavailable", zap.Error(err))
	}
	defer prefs.Close()

	variant, fixedVariant := theme.ParseVariant(s.Config.BrandVariant)
	mode, _ := theme.ParseMode(s.Config.ThemeMode)
	scheme, _ := theme.ParseColorScheme(s.Config.ColorScheme)
	provider := theme.NewProvider(theme.ProviderOptions{Variant: variant, Mode: mode, Scheme: scheme})

	store := state.NewStore(state.Options{
		API:    s.API,
		Tokens: s.Tokens,
		Logger: log,
		Cache:  swrcache.NewDefault(),
	})

	log.Info("starting ui", zap.String("api", s.Config.BaseURL()), zap.String("route", route))
	return tui.RunApp(cmdutil.Context(cmd), tui.Options{
		Store:    store,
		Provider: provider,
		Prefs:    prefs,
		Logger:   log,
		Route:    route,

		FixedVariant: fixedVariant,
	})
}
