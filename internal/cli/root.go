package cli

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

// NewRoot корневая команда сервиса
func NewRoot() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "availability",
		Short:         "SMC availability service: rooms, restaurant slots and dashboards",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to TOML config")

	cmd.AddCommand(NewServeCmd(&configPath))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	return cmd
}
