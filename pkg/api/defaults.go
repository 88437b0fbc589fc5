package api

// ApplyDefaults fills in the output file of every sub-config that left it
// empty, and the profile when none was chosen.
func (c *StepConfig) ApplyDefaults() {
	if c.Profile == "" {
		c.Profile = DefaultProfile
	}
	if c.Name == "" {
		c.Name = c.Kind
	}

	if c.ConcatFiles != nil && c.ConcatFiles.OutputFile == "" {
		c.ConcatFiles.OutputFile = DefaultOutputFile
	}
	if c.ConcatMessages != nil && c.ConcatMessages.OutputFile == "" {
		c.ConcatMessages.OutputFile = DefaultOutputFile
	}
	if c.CountLetters != nil && c.CountLetters.OutputFile == "" {
		c.CountLetters.OutputFile = DefaultOutputFile
	}
}

// OutputFile returns the output path of whichever sub-config is set.
func (c *StepConfig) OutputFile() string {
	switch {
	case c.ConcatFiles != nil:
		return c.ConcatFiles.OutputFile
	case c.ConcatMessages != nil:
		return c.ConcatMessages.OutputFile
	case c.CountLetters != nil:
		return c.CountLetters.OutputFile
	}
	return ""
}
