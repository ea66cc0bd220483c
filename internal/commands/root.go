package commands

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "btdb2 [flags] command [flags]",
		Short: "BTD Battles 2 asset codec",
		Long: `A codec for the Bin2.0 obfuscation scheme BTD Battles 2 applies to its
asset files. Provides commands for encrypting, decrypting, and inspecting
assets, both as plain files and inside the game's zip containers.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			viper.SetEnvPrefix("BTDB2")
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()

			return viper.BindPFlags(cmd.Root().PersistentFlags())
		},
	}

	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	root.PersistentFlags().Bool("dry-run", false, "Preview the work without transforming anything")
	root.PersistentFlags().Bool("stats", false, "Print a summary after the run")
	root.PersistentFlags().Bool("preserve-timestamps", false, "Carry input modification times over to outputs")
	root.PersistentFlags().String("log-level", "off", "Diagnostic log level (trace, debug, info, warn, error, off)")

	root.PersistentFlags().String("encrypt-ext", ".bin2", "Suffix to append to encrypted files")
	root.PersistentFlags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.PersistentFlags().StringSliceP("include", "i", nil, "Only process paths matching these patterns when walking directories")
	root.PersistentFlags().StringSliceP("exclude", "e", nil, "Skip paths matching these patterns when walking directories")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg), NewStatusCommand(cfg))

	return root
}
