package api

import (
	"fmt"
	"strings"
)

const imageRepository = "ghcr.io/systemstart/toy-components"

// StepKinds lists every step kind in catalog order.
func StepKinds() []string {
	return []string{StepKindConcatFiles, StepKindConcatMessages, StepKindCountLetters}
}

// BuiltinComponent returns the manifest for a step kind. Input names are the
// executable's flag names with dashes replaced by underscores.
func BuiltinComponent(kind string) (*Component, error) {
	var inputs []Put
	switch kind {
	case StepKindConcatFiles:
		inputs = stringPuts("input_file_1", "input_file_2", "output_file")
	case StepKindConcatMessages:
		inputs = stringPuts("message_1", "message_2", "output_file")
	case StepKindCountLetters:
		inputs = stringPuts("input_file", "output_file")
	default:
		return nil, fmt.Errorf("unknown step kind %q", kind)
	}

	return &Component{
		ID:         kind,
		Name:       strings.ReplaceAll(kind, "-", "_"),
		APIVersion: ComponentAPIVersion,
		Inputs:     inputs,
		Outputs:    stringPuts("output_file"),
		Container: Container{
			Image:   imageRepository + "/" + kind + ":latest",
			Command: []string{"/usr/local/bin/" + kind},
		},
	}, nil
}

func stringPuts(names ...string) []Put {
	puts := make([]Put, 0, len(names))
	for _, n := range names {
		puts = append(puts, Put{Name: n, Type: PutTypeString})
	}
	return puts
}
