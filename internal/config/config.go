// Package config holds the runtime configuration for the Bin2.0 tool.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Suffixes controls how output file names are derived from input names.
type Suffixes struct {
	// Encrypt is appended to encrypted files.
	Encrypt string `mapstructure:"encrypt-ext"`

	// Decrypt is appended to decrypted files, after stripping the
	// encrypted suffix.
	Decrypt string `mapstructure:"decrypt-ext"`
}

// Config is populated from flags and environment variables by the
// commands package and validated before any file is touched.
type Config struct {
	// Parallel is the number of concurrent workers.
	Parallel int `mapstructure:"parallel" validate:"min=1"`

	// Quiet suppresses non-error output.
	Quiet bool `mapstructure:"quiet"`

	// Delete removes the input file after successful processing.
	Delete bool `mapstructure:"delete"`

	// Dry previews the work without transforming anything.
	Dry bool `mapstructure:"dry-run"`

	// Stats prints a summary after the run.
	Stats bool `mapstructure:"stats"`

	// PreserveTimestamps carries the input modification time over to
	// the output file.
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// LogLevel selects the hclog level for diagnostic output.
	LogLevel string `mapstructure:"log-level" validate:"oneof=trace debug info warn error off"`

	// Suffixes holds the output naming suffixes.
	Suffixes Suffixes `mapstructure:",squash"`

	// Include restricts directory walks to matching paths.
	Include []string `mapstructure:"include"`

	// Exclude removes matching paths from directory walks.
	Exclude []string `mapstructure:"exclude"`

	// Decrypt selects the decryption direction.
	Decrypt bool `mapstructure:"-"`

	// Status selects detection-only mode.
	Status bool `mapstructure:"-"`

	// Files are the resolved positional arguments.
	Files []string `mapstructure:"-" validate:"min=1"`
}

// Validate checks the configuration against the struct tags plus the
// cross-field rules the tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if c.Suffixes.Encrypt != "" && c.Suffixes.Encrypt == c.Suffixes.Decrypt {
		return errors.New("encrypt and decrypt suffixes must differ")
	}

	return nil
}
