package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/systemstart/toy-components/pkg/logging"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

const (
	_ = iota
	exitUsage
	exitDotenvError
	exitLoggingSetupFailed
	exitInvalidStep
	exitStepFailed
	exitValidationFailed
)

const (
	envLoggingType = "TOY_LOGGING_TYPE"
	envLogLevel    = "TOY_LOG_LEVEL"
)

// commonFlags are shared by every executable.
type commonFlags struct {
	loggingType string
	logLevel    string
	showVersion bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(
		&c.loggingType,
		"logging-type",
		envOr(envLoggingType, logging.Tint),
		"logging type: json, text or tint")
	fs.StringVar(
		&c.logLevel,
		"log-level",
		envOr(envLogLevel, "info"),
		"logging level: debug, info, warn, error")
	fs.BoolVar(
		&c.showVersion,
		"version",
		false,
		"print version and exit")
}

// Main loads an optional .env file and runs fn with the process arguments
// and standard streams. Its result is meant for os.Exit.
func Main(fn func(args []string, stdout, stderr io.Writer) int) int {
	if err := includeEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		return exitDotenvError
	}
	return fn(os.Args[1:], os.Stdout, os.Stderr)
}

func includeEnv() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func initLogging(stderr io.Writer, c commonFlags) int {
	if err := logging.Initialize(stderr, c.loggingType, c.logLevel); err != nil {
		fmt.Fprintf(stderr, "failed to initialize logging: %v\n", err)
		return exitLoggingSetupFailed
	}
	slog.Debug("configuration", "loggingType", c.loggingType, "logLevel", c.logLevel, "version", Version)
	return 0
}

func setUsage(fs *flag.FlagSet, output io.Writer, synopsis string) {
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage:\n  %s %s\n\nOptions:\n", fs.Name(), synopsis)
		fs.PrintDefaults()
	}
}
