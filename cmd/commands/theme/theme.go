package theme

import (
	"fmt"

	"nathanbeddoewebdev/hirectl/internal/config"
	"nathanbeddoewebdev/hirectl/internal/theme"

	"github.com/spf13/cobra"
)

// NewCommand returns the "theme" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and export brand themes",
		Long: `Inspect and export brand themes.

Each subcommand resolves a (variant, mode, scheme) triple. Values come from
--variant/--mode/--scheme, then the config keys brand-variant, theme-mode
and color-scheme, then the defaults (teams, auto, default).`,
	}

	cmd.PersistentFlags().String("variant", "", "Brand variant (teams, talent)")
	cmd.PersistentFlags().String("mode", "", "Theme mode (light, dark, auto)")
	cmd.PersistentFlags().String("scheme", "", "Colour scheme (default, high-contrast, colorblind-friendly)")

	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(CSSCommand())
	cmd.AddCommand(AuditCommand())

	return cmd
}

// resolve picks the triple from flags and config. Unlike the UI, which
// falls back silently, an invalid value here is reported.
func resolve(cmd *cobra.Command) (theme.ResolvedTheme, error) {
	cfg, err := config.Load()
	if err != nil {
		return theme.ResolvedTheme{}, fmt.Errorf("failed to load config: %w", err)
	}

	pick := func(flag, fromConfig, fallback string) string {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			return v
		}
		if fromConfig != "" {
			return fromConfig
		}
		return fallback
	}

	rawVariant := pick("variant", cfg.BrandVariant, string(theme.VariantTeams))
	variant, ok := theme.ParseVariant(rawVariant)
	if !ok {
		return theme.ResolvedTheme{}, fmt.Errorf("invalid variant %q", rawVariant)
	}
	rawMode := pick("mode", cfg.ThemeMode, string(theme.ModeAuto))
	mode, ok := theme.ParseMode(rawMode)
	if !ok {
		return theme.ResolvedTheme{}, fmt.Errorf("invalid mode %q", rawMode)
	}
	rawScheme := pick("scheme", cfg.ColorScheme, string(theme.SchemeDefault))
	scheme, ok := theme.ParseColorScheme(rawScheme)
	if !ok {
		return theme.ResolvedTheme{}, fmt.Errorf("invalid colour scheme %q", rawScheme)
	}

	return theme.Resolve(variant, mode, scheme, theme.DefaultPreference()), nil
}
