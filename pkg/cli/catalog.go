package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/systemstart/toy-components/pkg/api"
	"github.com/systemstart/toy-components/pkg/processing"
	"gopkg.in/yaml.v3"
)

// RunCatalog implements the toy-components executable:
//
//	toy-components [options] describe [KIND...]
//	toy-components [options] validate [-root DIR] [PATTERN...]
func RunCatalog(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("toy-components", flag.ContinueOnError)
	setUsage(fs, stderr, "[options] describe [KIND...] | validate [-root DIR] [PATTERN...]")

	var common commonFlags
	common.register(fs)

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

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "missing command")
		fs.Usage()
		return exitUsage
	}

	if code := initLogging(stderr, common); code != 0 {
		return code
	}

	switch cmd, rest := fs.Arg(0), fs.Args()[1:]; cmd {
	case "describe":
		return describe(rest, stdout)
	case "validate":
		return validate(rest, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return exitUsage
	}
}

func describe(kinds []string, stdout io.Writer) int {
	if len(kinds) == 0 {
		kinds = api.StepKinds()
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)

	for _, kind := range kinds {
		c, err := api.BuiltinComponent(kind)
		if err != nil {
			slog.Error("cannot describe component", "kind", kind, "error", err)
			return exitInvalidStep
		}
		if err := enc.Encode(c); err != nil {
			slog.Error("failed to encode component", "kind", kind, "error", err)
			return exitStepFailed
		}
	}

	if err := enc.Close(); err != nil {
		slog.Error("failed to flush output", "error", err)
		return exitStepFailed
	}
	return 0
}

func validate(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	setUsage(fs, stderr, "[-root DIR] [PATTERN...]")
	root := fs.String("root", ".", "directory searched for component manifests")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitUsage
	}

	paths, err := processing.DiscoverComponents(*root, fs.Args())
	if err != nil {
		slog.Error("discovering component manifests failed", "root", *root, "error", err)
		return exitUsage
	}

	if len(paths) == 0 {
		slog.Warn("no component manifests found", "root", *root)
		return 0
	}

	components, failures := processing.ValidateComponents(paths)
	for _, c := range components {
		slog.Info("component manifest valid", "path", c.FilePath, "id", c.ID)
	}

	if len(failures) > 0 {
		failed := make([]string, 0, len(failures))
		for p := range failures {
			failed = append(failed, p)
		}
		slices.Sort(failed)
		for _, p := range failed {
			slog.Error("component manifest invalid", "path", p, "error", failures[p])
		}
		slog.Error("validation failed", "failed", len(failures), "total", len(paths))
		return exitValidationFailed
	}

	slog.Info("validated component manifests", "count", len(components))
	return 0
}
