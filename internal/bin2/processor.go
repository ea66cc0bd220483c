package bin2

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/archive"
	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/config"
	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/fileutil"
)

// Processor runs the codec over a batch of files and asset containers.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// logger receives diagnostic output
	logger hclog.Logger

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a new Processor with the given configuration.
// A nil logger is replaced with a null logger.
func NewProcessor(cfg *config.Config, logger hclog.Logger) *Processor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Processor{
		cfg:     cfg,
		logger:  logger.Named("processor"),
		results: make(chan Result, len(cfg.Files)),
	}
}

// ProcessFiles concurrently processes all files specified in the
// configuration. Returns the number of successfully processed files, the
// number of errors, and the total output size.
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++

			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Printf("Processed %q -> %q\n", result.Input, result.Output) //nolint:forbidigo
			}

			if p.cfg.Delete {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Printf("Deleted %q\n", result.Input) //nolint:forbidigo
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		file := file

		group.Go(func() error {
			outPath := p.outputPath(file)

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// transform applies the configured direction to one buffer. Decryption of
// a buffer without the header is a passthrough, since many assets are
// legitimately stored plain.
func (p *Processor) transform(data []byte) ([]byte, error) {
	if p.cfg.Decrypt {
		if !HasHeader(data) {
			return data, nil
		}

		return Decrypt(data)
	}

	return Encrypt(data)
}

// processFile transforms a single file or asset container. The output is
// staged in a temp file and renamed into place on completion.
func (p *Processor) processFile(filename, outPath string) (size int64, err error) {
	tc, err := fileutil.NewTempContext(filename, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	if archive.IsArchive(filename) {
		err = p.processArchive(filename, tc)
	} else {
		err = p.processPlain(filename, tc)
	}

	if err != nil {
		return 0, err
	}

	if err := tc.Commit(outPath); err != nil {
		return 0, err
	}

	size, err = fileutil.FinalizeOutput(outPath, p.cfg.PreserveTimestamps, tc.SrcInfo.ModTime())
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}

// processPlain transforms a plain asset file into the staged temp file.
func (p *Processor) processPlain(filename string, tc *fileutil.TempContext) error {
	data, err := NewFileSource(filename).ReadAll()
	if err != nil {
		return err
	}

	output, err := p.transform(data)
	if err != nil {
		return err
	}

	if _, err := tc.TmpFile.Write(output); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	p.logger.Debug("transformed file", "name", filename, "in", len(data), "out", len(output))

	return nil
}

// processArchive rewrites an asset container entry by entry into the
// staged temp file.
func (p *Processor) processArchive(filename string, tc *fileutil.TempContext) error {
	arc, err := archive.Open(filename, p.logger)
	if err != nil {
		return err
	}
	defer arc.Close()

	return arc.Rewrite(tc.TmpFile, func(_ string, data []byte) ([]byte, error) {
		return p.transform(data)
	})
}

// outputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func (p *Processor) outputPath(filename string) string {
	ext := p.cfg.Suffixes.Encrypt

	if p.cfg.Decrypt {
		filename = strings.TrimSuffix(filename, p.cfg.Suffixes.Encrypt)
		ext = p.cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename),
		filepath.Base(filename)+ext)
}
