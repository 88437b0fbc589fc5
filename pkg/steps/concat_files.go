package steps

import (
	"fmt"

	"github.com/systemstart/toy-components/pkg/api"
)

type concatFilesStep struct {
	name string
	cfg  *api.ConcatFilesConfig
	opts emitOptions
}

// NewConcatFilesStep creates a step that joins the contents of two files with
// a single space.
func NewConcatFilesStep(name string, cfg *api.ConcatFilesConfig) Step {
	return &concatFilesStep{name: name, cfg: cfg, opts: emitOptions{echo: true, mkdir: true}}
}

func (s *concatFilesStep) Name() string { return s.name }

func (s *concatFilesStep) Run(ctx StepContext) (*StepResult, error) {
	first, err := readInput(ctx, s.cfg.InputFile1)
	if err != nil {
		return nil, err
	}
	second, err := readInput(ctx, s.cfg.InputFile2)
	if err != nil {
		return nil, err
	}

	result, err := render(s.name, concatTemplate, concatData{First: first, Second: second})
	if err != nil {
		return nil, fmt.Errorf("rendering result: %w", err)
	}

	return emit(ctx, s.name, result, s.cfg.OutputFile, s.opts)
}

type concatData struct {
	First  string
	Second string
}
