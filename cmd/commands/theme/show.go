package theme

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/hirectl/internal/theme"

	"github.com/spf13/cobra"
)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "show",
		Short:        "Show the resolved theme",
		RunE:         runShow,
		SilenceUsage: true,
	}
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	t, err := resolve(cmd)
	if err != nil {
		return err
	}
	if err := theme.Validate(t); err != nil {
		return err
	}

	switch output, _ := cmd.Flags().GetString("output"); output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case "table", "":
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}

	fp, err := theme.Fingerprint(t)
	if err != nil {
		return err
	}

	c := t.Colors
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintf(w, "  Variant:\t%s\n", t.Variant)
	fmt.Fprintf(w, "  Mode:\t%s\n", t.Mode)
	fmt.Fprintf(w, "  Scheme:\t%s\n", t.Scheme)
	fmt.Fprintf(w, "  Fingerprint:\t%s\n", fp)
	fmt.Fprintf(w, "  Font:\t%s\n", t.Typography.FontFamily)
	fmt.Fprintf(w, "  Primary:\t%s\n", c.Primary)
	fmt.Fprintf(w, "  Secondary:\t%s\n", c.Secondary)
	fmt.Fprintf(w, "  Background:\t%s\n", c.Background)
	fmt.Fprintf(w, "  Surface:\t%s\n", c.Surface)
	fmt.Fprintf(w, "  Text:\t%s\n", c.Text.Primary)
	fmt.Fprintf(w, "  Status:\t%s %s %s %s\n", c.Status.Success, c.Status.Warning, c.Status.Error, c.Status.Info)
	return nil
}
