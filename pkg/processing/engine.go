package processing

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/systemstart/toy-components/pkg/api"
	"github.com/systemstart/toy-components/pkg/steps"
)

// ConfigError reports a step configuration that was rejected before anything
// was read or written.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// RunStep validates cfg, builds the matching step and runs it once. Relative
// paths resolve against workDir and the result is echoed to stdout.
func RunStep(cfg api.StepConfig, workDir string, stdout io.Writer) (*steps.StepResult, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("validating step: %w", err)}
	}

	step, err := steps.NewStep(cfg)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("creating step %q: %w", cfg.Name, err)}
	}

	slog.Info("running step", "step", cfg.Name, "kind", cfg.Kind, "profile", cfg.Profile, "output", cfg.OutputFile())

	result, err := step.Run(steps.StepContext{WorkDir: workDir, Stdout: stdout})
	if err != nil {
		return nil, fmt.Errorf("step %q failed: %w", cfg.Name, err)
	}
	return result, nil
}
