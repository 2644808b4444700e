package config

import (
	"nathanbeddoewebdev/cwgraph/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cwgraph configuration",
		Long: "View and modify persistent cwgraph defaults.\n\n" +
			"Configuration is stored at ~/.config/cwgraph/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
