package commands

import (
	"github.com/spf13/cobra"

	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/config"
	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/logic"
)

// NewStatusCommand creates a new cobra command for the status subcommand.
func NewStatusCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "status [flags] [paths...]",
		Short: "Report whether files carry the Bin2.0 header",
		Long: `Report, per file and per container entry, whether the Bin2.0 header is
present. Only the leading 8 bytes of each source are read.`,
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Status = true

			return preRun(cfg)(cmd, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunStatus(cfg)
		},
	}
}
