// Package cli wires the keyvault commands: the settings TUI and the
// attachment maintenance subcommands.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "keyvault",
		Short: "Password database settings",
		Long: `keyvault opens the database settings screen.

Confirmed changes are saved right away unless settings.auto_save is false
in the config file, in which case ctrl+s saves them.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runTUI,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: ~/.config/keyvault/config.toml)")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "database file (overrides database.path)")

	root.AddCommand(newAttachmentsCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
