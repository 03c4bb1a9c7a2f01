package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hightemp/searchpresets/internal/config"
	"github.com/hightemp/searchpresets/internal/countries"
	"github.com/hightemp/searchpresets/internal/output"
	"github.com/hightemp/searchpresets/internal/presets"
)

func runExtract(cmd *cobra.Command, opts *options) error {
	// Check if stdin is a terminal
	if opts.inputPath == "" && isTerminal(cmd.InOrStdin()) {
		return cmd.Help()
	}

	result, err := opts.extract(cmd)
	if err != nil {
		return err
	}

	// Encode fully before writing anything
	data, err := output.NewDocument(result).FormatJSON(opts.cfg.JSONIndent())
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), opts.outputPath, data)
}

// extract reads the input and runs the extraction pipeline.
func (o *options) extract(cmd *cobra.Command) (*presets.Result, error) {
	text, err := readInput(cmd.InOrStdin(), o.inputPath)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("Read input", zap.String("path", o.inputPath), zap.Int("bytes", len(text)))

	result, err := presets.Extract(text, presets.Options{Logger: o.logger})
	if err != nil {
		return nil, fmt.Errorf("extract presets: %w", err)
	}

	if o.cfg.WarnUnknownCountries {
		for _, code := range countries.Unknown(result.CountryMapping) {
			o.logger.Warn("Country code is not an ISO-3166 country", zap.String("code", code))
		}
	}

	return result, nil
}

// readInput reads the whole input from path, or from stdin when path is
// empty or "-".
func readInput(stdin io.Reader, path string) (string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("%w: read input: %v", errInvalidInput, err)
	}
	return string(data), nil
}

// writeOutput writes data to stdout, or atomically replaces path.
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := os.Chmod(tmpName, config.OutputFileMode); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
