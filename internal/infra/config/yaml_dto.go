package config

type YAMLConfig struct {
	Input            string     `yaml:"input"`
	DecimalSeparator *string    `yaml:"decimal_separator"`
	Rules            []YAMLRule `yaml:"rules"`
}

type YAMLRule struct {
	Name       string     `yaml:"name"`
	Marker     string     `yaml:"marker"`
	Action     string     `yaml:"action"`
	Field      *YAMLField `yaml:"field"`
	BlankAfter bool       `yaml:"blank_after"`
}

type YAMLField struct {
	Sep       string `yaml:"sep"`
	Index     *int   `yaml:"index"`
	TrimRight string `yaml:"trim_right"`
	DropLast  bool   `yaml:"drop_last"`
	Localize  bool   `yaml:"localize"`
}
