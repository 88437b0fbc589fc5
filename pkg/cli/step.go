package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/systemstart/toy-components/pkg/api"
	"github.com/systemstart/toy-components/pkg/processing"
)

// StepCommand returns the entry point of the executable for kind.
func StepCommand(kind string) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		return RunStep(kind, args, stdout, stderr)
	}
}

// RunStep parses args as the options of a single step of the given kind,
// runs it and returns the process exit code.
func RunStep(kind string, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(kind, flag.ContinueOnError)
	setUsage(fs, stderr, "[options]")

	var common commonFlags
	common.register(fs)

	cfg, required, err := bindStepFlags(fs, kind)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalidStep
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitUsage
	}

	if common.showVersion {
		fmt.Fprintln(stdout, Version)
		return 0
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return exitUsage
	}

	if missing := missingFlags(fs, required); len(missing) > 0 {
		fmt.Fprintf(stderr, "missing required option(s): --%s\n", strings.Join(missing, ", --"))
		fs.Usage()
		return exitUsage
	}

	if code := initLogging(stderr, common); code != 0 {
		return code
	}

	result, err := processing.RunStep(*cfg, "", stdout)
	if err != nil {
		var cfgErr *processing.ConfigError
		if errors.As(err, &cfgErr) {
			slog.Error("invalid step configuration", "kind", kind, "error", err)
			return exitInvalidStep
		}
		slog.Error("step failed", "kind", kind, "error", err)
		return exitStepFailed
	}

	slog.Debug("done", "kind", kind, "output", result.OutputFile)
	return 0
}

// bindStepFlags registers the kind's options on fs and returns the config
// they populate together with the names of the required flags.
func bindStepFlags(fs *flag.FlagSet, kind string) (*api.StepConfig, []string, error) {
	cfg := &api.StepConfig{Name: kind, Kind: kind}
	fs.StringVar(&cfg.Profile, "profile", api.DefaultProfile, "behaviour profile: standard or legacy")

	switch kind {
	case api.StepKindConcatFiles:
		c := &api.ConcatFilesConfig{}
		fs.StringVar(&c.InputFile1, "input-file-1", "", "Input file 1 (required)")
		fs.StringVar(&c.InputFile2, "input-file-2", "", "Input file 2 (required)")
		fs.StringVar(&c.OutputFile, "output-file", api.DefaultOutputFile, "Output file")
		cfg.ConcatFiles = c
		return cfg, []string{"input-file-1", "input-file-2"}, nil
	case api.StepKindConcatMessages:
		c := &api.ConcatMessagesConfig{}
		fs.StringVar(&c.Message1, "message-1", "", "Message 1 (required)")
		fs.StringVar(&c.Message2, "message-2", "", "Message 2 (required)")
		fs.StringVar(&c.OutputFile, "output-file", api.DefaultOutputFile, "Output file")
		cfg.ConcatMessages = c
		return cfg, []string{"message-1", "message-2"}, nil
	case api.StepKindCountLetters:
		c := &api.CountLettersConfig{}
		fs.StringVar(&c.InputFile, "input-file", "", "Input file with the message (required)")
		fs.StringVar(&c.OutputFile, "output-file", api.DefaultOutputFile, "Output file")
		cfg.CountLetters = c
		return cfg, []string{"input-file"}, nil
	default:
		return nil, nil, fmt.Errorf("unknown step kind: %s", kind)
	}
}

// missingFlags returns the required flags that were not given on the command
// line. An explicitly empty value counts as given.
func missingFlags(fs *flag.FlagSet, required []string) []string {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var missing []string
	for _, name := range required {
		if !set[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
