package steps

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// emitOptions selects the per-profile side effects around the append.
type emitOptions struct {
	echo  bool
	mkdir bool
}

func resolvePath(workDir, p string) string {
	if workDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(workDir, p)
}

func readInput(ctx StepContext, filename string) (string, error) {
	path := resolvePath(ctx.WorkDir, filename)

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrReadInput, filename, err)
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w %s: not valid UTF-8 text", ErrReadInput, filename)
	}

	slog.Debug("read input file", "file", path, "bytes", len(content))
	return normalizeNewlines(string(content)), nil
}

// normalizeNewlines folds CRLF and lone CR line endings into LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// emit echoes result and appends it to outputFile.
func emit(ctx StepContext, stepName, result, outputFile string, opts emitOptions) (*StepResult, error) {
	if opts.echo && ctx.Stdout != nil {
		if _, err := fmt.Fprintln(ctx.Stdout, result); err != nil {
			return nil, fmt.Errorf("printing result: %w", err)
		}
	}

	outPath := resolvePath(ctx.WorkDir, outputFile)
	if opts.mkdir {
		if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
			return nil, fmt.Errorf("%w: creating parent directories: %w", ErrWriteOutput, err)
		}
	}

	if err := appendFile(outPath, result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	slog.Info("step appended result", "step", stepName, "output", outPath, "bytes", len(result))
	return &StepResult{Result: result, OutputFile: outPath}, nil
}

func appendFile(path, text string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("closing output file: %w", closeErr))
		}
	}()

	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("appending to output file: %w", err)
	}
	return nil
}
