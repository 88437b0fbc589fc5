package steps

import "io"

// StepContext provides the runtime context for a step.
type StepContext struct {
	WorkDir string    // relative paths resolve against it; empty means the process cwd
	Stdout  io.Writer // receives the echoed result
}

// StepResult holds the output of a step.
type StepResult struct {
	Result     string
	OutputFile string // resolved path the result was appended to
}

// Step is the interface all pipeline steps implement.
type Step interface {
	Name() string
	Run(ctx StepContext) (*StepResult, error)
}
