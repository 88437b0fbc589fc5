package api

import (
	"fmt"
	"slices"
	"strings"
)

var validStepKinds = map[string]bool{
	StepKindConcatFiles:    true,
	StepKindConcatMessages: true,
	StepKindCountLetters:   true,
}

// kinds available per profile; the legacy dataset never shipped concat-files.
var profileKinds = map[string]map[string]bool{
	ProfileStandard: validStepKinds,
	ProfileLegacy: {
		StepKindConcatMessages: true,
		StepKindCountLetters:   true,
	},
}

var validPutTypes = map[string]bool{
	PutTypeString:  true,
	PutTypeInteger: true,
	PutTypeFloat:   true,
	PutTypeBool:    true,
}

// Validate checks the step configuration for errors.
func (c *StepConfig) Validate() error {
	if !validStepKinds[c.Kind] {
		return fmt.Errorf("unknown step kind %q (valid: %s)", c.Kind, strings.Join(sortedKeys(validStepKinds), ", "))
	}

	kinds, ok := profileKinds[c.Profile]
	if !ok {
		return fmt.Errorf("unknown profile %q (valid: %s)", c.Profile, strings.Join(sortedKeys(profileKinds), ", "))
	}
	if !kinds[c.Kind] {
		return fmt.Errorf("step kind %q is not available in profile %q", c.Kind, c.Profile)
	}

	if err := validateKindConfig(c); err != nil {
		return fmt.Errorf("step %q: %w", c.Name, err)
	}
	return nil
}

func validateKindConfig(c *StepConfig) error {
	set := map[string]bool{
		StepKindConcatFiles:    c.ConcatFiles != nil,
		StepKindConcatMessages: c.ConcatMessages != nil,
		StepKindCountLetters:   c.CountLetters != nil,
	}
	for _, kind := range sortedKeys(set) {
		if set[kind] && kind != c.Kind {
			return fmt.Errorf("unexpected %s config for kind %q", kind, c.Kind)
		}
	}

	switch c.Kind {
	case StepKindConcatFiles:
		return validateConcatFilesConfig(c.ConcatFiles)
	case StepKindConcatMessages:
		return validateConcatMessagesConfig(c.ConcatMessages)
	case StepKindCountLetters:
		return validateCountLettersConfig(c.CountLetters)
	}
	return nil
}

func validateConcatFilesConfig(cfg *ConcatFilesConfig) error {
	if cfg == nil {
		return fmt.Errorf("concatFiles config is required")
	}
	if cfg.InputFile1 == "" {
		return fmt.Errorf("concatFiles.inputFile1 is required")
	}
	if cfg.InputFile2 == "" {
		return fmt.Errorf("concatFiles.inputFile2 is required")
	}
	if cfg.OutputFile == "" {
		return fmt.Errorf("concatFiles.outputFile is required")
	}
	return nil
}

// Messages may legitimately be empty strings.
func validateConcatMessagesConfig(cfg *ConcatMessagesConfig) error {
	if cfg == nil {
		return fmt.Errorf("concatMessages config is required")
	}
	if cfg.OutputFile == "" {
		return fmt.Errorf("concatMessages.outputFile is required")
	}
	return nil
}

func validateCountLettersConfig(cfg *CountLettersConfig) error {
	if cfg == nil {
		return fmt.Errorf("countLetters config is required")
	}
	if cfg.InputFile == "" {
		return fmt.Errorf("countLetters.inputFile is required")
	}
	if cfg.OutputFile == "" {
		return fmt.Errorf("countLetters.outputFile is required")
	}
	return nil
}

// Validate checks the component manifest for errors.
func (c *Component) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.APIVersion == "" {
		return fmt.Errorf("apiVersion is required")
	}
	if c.Container.Image == "" {
		return fmt.Errorf("container.image is required")
	}
	if err := validatePuts("inputs", c.Inputs); err != nil {
		return err
	}
	return validatePuts("outputs", c.Outputs)
}

func validatePuts(field string, puts []Put) error {
	names := make(map[string]int)
	for i, p := range puts {
		if p.Name == "" {
			return fmt.Errorf("%s[%d]: name is required", field, i)
		}
		if prev, exists := names[p.Name]; exists {
			return fmt.Errorf("%s[%d]: duplicate name %q (first defined at %d)", field, i, p.Name, prev)
		}
		names[p.Name] = i
		if !validPutTypes[p.Type] {
			return fmt.Errorf("%s[%d]: type %q is not valid (valid: %s)", field, i, p.Type, strings.Join(sortedKeys(validPutTypes), ", "))
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
