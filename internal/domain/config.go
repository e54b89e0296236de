package domain

// DefaultInput is the log file read when neither a flag nor a config file names one.
const DefaultInput = "results.txt"

// DefaultDecimalSeparator replaces "." in localized values.
const DefaultDecimalSeparator = ","

// Config is the effective create-stats configuration, optionally loaded from a YAML file.
type Config struct {
	Input            string
	DecimalSeparator string
	Rules            []Rule
}

// DefaultConfig provides the built-in behaviour used when no config file is given
// or when the file leaves fields empty.
func DefaultConfig() Config {
	return Config{
		Input:            DefaultInput,
		DecimalSeparator: DefaultDecimalSeparator,
		Rules:            DefaultRules(),
	}
}
