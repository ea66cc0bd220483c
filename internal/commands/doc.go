// Package commands provides the command-line interface for the Bin2.0
// asset tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - status reporting (header detection only)
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
