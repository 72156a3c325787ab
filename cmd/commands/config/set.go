package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/config"
	"nathanbeddoewebdev/hirectl/internal/util"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value. An empty value unsets the key.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  hirectl config set theme-mode dark\n" +
			"  hirectl config set api-url https://staging.hirectl.app/v1",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmdutil.Audited(cmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	value := strings.TrimSpace(args[1])

	spec := config.Lookup(util.NormalizeKey(args[0]))
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	// Enum keys are stored normalized; URLs and paths keep their case.
	if spec.Name == "brand-variant" || spec.Name == "theme-mode" || spec.Name == "color-scheme" {
		value = util.NormalizeKey(value)
	}

	if value != "" && spec.Validate != nil {
		if err := spec.Validate(value); err != nil {
			return err
		}
	}

	// LoadFile, not Load: environment overrides must not leak into the file.
	cfg, err := config.LoadFile()
	if err != nil {
		return err
	}

	spec.Set(cfg, value)
	if err := cfg.Save(); err != nil {
		return err
	}
	cmdutil.SetAuditResource(cmd, "config", spec.Name, value)

	if value == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s unset\n", spec.Name)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, value)
	return nil
}
