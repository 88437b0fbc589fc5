package steps

import (
	"fmt"

	"github.com/systemstart/toy-components/pkg/api"
)

type concatMessagesStep struct {
	name string
	cfg  *api.ConcatMessagesConfig
	opts emitOptions
}

// NewConcatMessagesStep creates a step that joins two literal messages with a
// single space.
func NewConcatMessagesStep(name string, cfg *api.ConcatMessagesConfig) Step {
	return &concatMessagesStep{name: name, cfg: cfg, opts: emitOptions{echo: true, mkdir: true}}
}

// NewLegacyConcatMessagesStep creates the concat-messages variant of the
// legacy profile. It neither prints the result nor creates the output
// directory.
func NewLegacyConcatMessagesStep(name string, cfg *api.ConcatMessagesConfig) Step {
	return &concatMessagesStep{name: name, cfg: cfg}
}

func (s *concatMessagesStep) Name() string { return s.name }

func (s *concatMessagesStep) Run(ctx StepContext) (*StepResult, error) {
	result, err := render(s.name, concatTemplate, concatData{First: s.cfg.Message1, Second: s.cfg.Message2})
	if err != nil {
		return nil, fmt.Errorf("rendering result: %w", err)
	}

	return emit(ctx, s.name, result, s.cfg.OutputFile, s.opts)
}
