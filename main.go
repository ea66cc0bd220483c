// Command btdb2 encrypts, decrypts, and inspects BTD Battles 2 asset
// files stored in the game's Bin2.0 format.
package main

import (
	"os"

	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/commands"
	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		os.Exit(1)
	}
}
