package theme

import (
	"fmt"
	"os"

	"nathanbeddoewebdev/hirectl/internal/theme"

	"github.com/spf13/cobra"
)

func CSSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Export the resolved theme as CSS custom properties",
		Long: `Export the resolved theme as CSS custom properties.

Examples:
  hirectl theme css --variant talent --mode dark
  hirectl theme css --selector '[data-theme="dark"]' --out brand.css`,
		RunE:         runCSS,
		SilenceUsage: true,
	}
	cmd.Flags().String("selector", ":root", "CSS selector for the rule block")
	cmd.Flags().String("out", "", "Write to a file instead of stdout")
	return cmd
}

func runCSS(cmd *cobra.Command, args []string) error {
	t, err := resolve(cmd)
	if err != nil {
		return err
	}
	fp, err := theme.Fingerprint(t)
	if err != nil {
		return err
	}
	selector, _ := cmd.Flags().GetString("selector")

	css := fmt.Sprintf("/* %s %s %s, fingerprint %s */\n", t.Variant, t.Mode, t.Scheme, fp) +
		theme.RenderCSS(theme.ToCSSVariables(t), selector)

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), css)
		return err
	}
	if err := os.WriteFile(out, []byte(css), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", out)
	return nil
}
