package config

import (
	"nathanbeddoewebdev/hirectl/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage hirectl configuration",
		Long: "View and modify persistent hirectl settings.\n\n" +
			"Configuration is stored at ~/.config/hirectl/config.json. Every key\n" +
			"can be overridden with a HIRECTL_* environment variable, e.g.\n" +
			"HIRECTL_API_URL.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
