package commands

import (
	"github.com/spf13/cobra"

	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/config"
	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] [paths...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt asset files",
		Long: `Encrypt asset files with the Bin2.0 scheme. Zip containers are rewritten
entry by entry. Files already carrying the header are reported as errors,
never encrypted twice.`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}
}
