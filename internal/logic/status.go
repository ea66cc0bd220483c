package logic

import (
	"fmt"
	"os"

	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/archive"
	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/bin2"
	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/config"
)

// RunStatus reports, per resolved file, whether it carries the Bin2.0
// header. Containers are reported entry by entry. Only the leading 8
// bytes of each source are read.
func RunStatus(cfg *config.Config) error {
	if _, err := resolveFiles(cfg); err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	var failures int

	for _, file := range cfg.Files {
		if archive.IsArchive(file) {
			if err := statusArchive(file, cfg); err != nil {
				failures++

				fmt.Fprintf(os.Stderr, "Error inspecting %q: %v\n", file, err)
			}

			continue
		}

		encrypted, err := bin2.IsEncrypted(bin2.NewFileSource(file))
		if err != nil {
			failures++

			fmt.Fprintf(os.Stderr, "Error inspecting %q: %v\n", file, err)

			continue
		}

		printStatus(file, encrypted, cfg.Quiet)
	}

	if failures > 0 {
		return fmt.Errorf("%d file(s) could not be inspected", failures)
	}

	return nil
}

// statusArchive reports the state of every entry in a container.
func statusArchive(path string, cfg *config.Config) error {
	arc, err := archive.Open(path, newLogger(cfg))
	if err != nil {
		return err
	}
	defer arc.Close()

	for _, name := range arc.Entries() {
		entry, err := arc.Entry(name)
		if err != nil {
			return err
		}

		encrypted, err := bin2.IsEncrypted(entry)
		if err != nil {
			return err
		}

		printStatus(path+"!"+name, encrypted, cfg.Quiet)
	}

	return nil
}

func printStatus(name string, encrypted bool, quiet bool) {
	if quiet {
		return
	}

	state := "plain"
	if encrypted {
		state = "encrypted"
	}

	fmt.Printf("%-9s %s\n", state, name) //nolint:forbidigo
}
