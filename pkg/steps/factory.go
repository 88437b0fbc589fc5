package steps

import (
	"fmt"

	"github.com/systemstart/toy-components/pkg/api"
)

// NewStep creates a Step implementation from a StepConfig. The profile picks
// between the standard and the legacy variant of a kind.
func NewStep(cfg api.StepConfig) (Step, error) {
	legacy := cfg.Profile == api.ProfileLegacy

	switch cfg.Kind {
	case api.StepKindConcatFiles:
		if legacy {
			return nil, fmt.Errorf("step kind %q is not available in profile %q", cfg.Kind, cfg.Profile)
		}
		return NewConcatFilesStep(cfg.Name, cfg.ConcatFiles), nil
	case api.StepKindConcatMessages:
		if legacy {
			return NewLegacyConcatMessagesStep(cfg.Name, cfg.ConcatMessages), nil
		}
		return NewConcatMessagesStep(cfg.Name, cfg.ConcatMessages), nil
	case api.StepKindCountLetters:
		if legacy {
			return NewBuggyCountLettersStep(cfg.Name, cfg.CountLetters), nil
		}
		return NewCountLettersStep(cfg.Name, cfg.CountLetters), nil
	default:
		return nil, fmt.Errorf("unknown step kind: %s", cfg.Kind)
	}
}
