package commands

import (
	"github.com/spf13/cobra"

	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/config"
	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] [paths...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt asset files",
		Long: `Decrypt asset files carrying the Bin2.0 header. Files without the header
pass through unchanged, since many assets are legitimately stored plain.`,
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return preRun(cfg)(cmd, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}
}
