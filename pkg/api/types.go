package api

const (
	DefaultOutputFile = "output.txt"
	DefaultProfile    = ProfileStandard

	StepKindConcatFiles    = "concat-files"
	StepKindConcatMessages = "concat-messages"
	StepKindCountLetters   = "count-letters"

	// ProfileStandard prints results and creates missing output directories.
	ProfileStandard = "standard"
	// ProfileLegacy reproduces the historical kubernetes dataset: no echo,
	// no directory creation, and the defective letter count.
	ProfileLegacy = "legacy"

	ComponentAPIVersion = "v1"

	PutTypeString  = "string"
	PutTypeInteger = "integer"
	PutTypeFloat   = "float"
	PutTypeBool    = "bool"
)

// StepConfig defines a single step invocation.
type StepConfig struct {
	Name           string                `yaml:"name"`
	Kind           string                `yaml:"kind"`
	Profile        string                `yaml:"profile,omitempty"`
	ConcatFiles    *ConcatFilesConfig    `yaml:"concatFiles,omitempty"`
	ConcatMessages *ConcatMessagesConfig `yaml:"concatMessages,omitempty"`
	CountLetters   *CountLettersConfig   `yaml:"countLetters,omitempty"`
}

// ConcatFilesConfig configures the concat-files step.
type ConcatFilesConfig struct {
	InputFile1 string `yaml:"inputFile1"`
	InputFile2 string `yaml:"inputFile2"`
	OutputFile string `yaml:"outputFile"`
}

// ConcatMessagesConfig configures the concat-messages step.
type ConcatMessagesConfig struct {
	Message1   string `yaml:"message1"`
	Message2   string `yaml:"message2"`
	OutputFile string `yaml:"outputFile"`
}

// CountLettersConfig configures the count-letters step.
type CountLettersConfig struct {
	InputFile  string `yaml:"inputFile"`
	OutputFile string `yaml:"outputFile"`
}

// Component is the manifest an orchestrator uses to schedule a step as a
// container task.
type Component struct {
	ID         string    `yaml:"id"`
	Name       string    `yaml:"name"`
	APIVersion string    `yaml:"apiVersion"`
	Inputs     []Put     `yaml:"inputs"`
	Outputs    []Put     `yaml:"outputs"`
	Container  Container `yaml:"container"`

	// Set by the loader, not from YAML.
	FilePath string `yaml:"-"`
}

// Put is a named, typed input or output of a component.
type Put struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Container describes the image a component runs in.
type Container struct {
	Dockerfile string   `yaml:"dockerfile,omitempty"`
	Image      string   `yaml:"image"`
	Command    []string `yaml:"command,omitempty"`
}
