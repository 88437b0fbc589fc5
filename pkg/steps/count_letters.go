package steps

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/systemstart/toy-components/pkg/api"
)

type countLettersStep struct {
	name string
	cfg  *api.CountLettersConfig
}

// NewCountLettersStep creates a step that reports the number of characters in
// a file. Every code point counts, whitespace and newlines included.
func NewCountLettersStep(name string, cfg *api.CountLettersConfig) Step {
	return &countLettersStep{name: name, cfg: cfg}
}

func (s *countLettersStep) Name() string { return s.name }

func (s *countLettersStep) Run(ctx StepContext) (*StepResult, error) {
	message, err := readInput(ctx, s.cfg.InputFile)
	if err != nil {
		return nil, err
	}

	result, err := render(s.name, countTemplate, countData{Count: utf8.RuneCountInString(message)})
	if err != nil {
		return nil, fmt.Errorf("rendering result: %w", err)
	}

	return emit(ctx, s.name, result, s.cfg.OutputFile, emitOptions{echo: true, mkdir: true})
}

type countData struct {
	Count int
}

type buggyCountLettersStep struct {
	name string
	cfg  *api.CountLettersConfig
}

// NewBuggyCountLettersStep creates the count-letters variant of the legacy
// profile. It reads its input and then always fails with
// ErrCountMissingArgument, leaving the output file untouched.
func NewBuggyCountLettersStep(name string, cfg *api.CountLettersConfig) Step {
	return &buggyCountLettersStep{name: name, cfg: cfg}
}

func (s *buggyCountLettersStep) Name() string { return s.name }

func (s *buggyCountLettersStep) Run(ctx StepContext) (*StepResult, error) {
	if _, err := readInput(ctx, s.cfg.InputFile); err != nil {
		return nil, err
	}

	slog.Warn("legacy count-letters cannot produce a result", "step", s.name)
	return nil, fmt.Errorf("counting letters in %s: %w", s.cfg.InputFile, ErrCountMissingArgument)
}
