package domain

import "strings"

// Action says what to print for a matched line.
type Action string

const (
	// ActionEcho prints the line unchanged.
	ActionEcho Action = "echo"
	// ActionField prints a single field extracted from the line.
	ActionField Action = "field"
)

// FieldSpec describes how a single value is cut out of a line.
type FieldSpec struct {
	// Sep is split on exactly: empty fields are kept and whitespace is not collapsed.
	Sep   string
	Index int
	// TrimRight is a cutset removed from the right of the selected field.
	TrimRight string
	// DropLast removes the final character of the selected field, e.g. a "%" suffix.
	DropLast bool
	// Localize replaces the decimal point with the configured separator.
	Localize bool
}

// Rule pairs a marker substring with the action applied to lines containing it.
type Rule struct {
	Name       string
	Marker     string
	Action     Action
	Field      FieldSpec
	BlankAfter bool
}

// Matches reports whether line contains the rule's marker.
func (r Rule) Matches(line string) bool {
	return strings.Contains(line, r.Marker)
}

// Match returns the first rule matching line. Order is priority: when markers
// overlap only the earliest rule fires.
func Match(rules []Rule, line string) (Rule, bool) {
	for _, r := range rules {
		if r.Matches(line) {
			return r, true
		}
	}
	return Rule{}, false
}

// DefaultRules returns the table for logs written by the compression benchmark:
// algorithm banners, the input file path and the three mean values.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "lzo", Marker: "* LZO *", Action: ActionEcho},
		{Name: "bzip2", Marker: "* BZIP2 *", Action: ActionEcho},
		{Name: "zlib", Marker: "* ZLIB *", Action: ActionEcho},
		{Name: "snappy", Marker: "* SNAPPY *", Action: ActionEcho},
		{
			Name:   "file",
			Marker: "file:",
			Action: ActionField,
			Field:  FieldSpec{Sep: "/", Index: 2, TrimRight: "\r\n"},
		},
		{
			Name:   "compression_time",
			Marker: "Mean compression time:",
			Action: ActionField,
			Field:  FieldSpec{Sep: " ", Index: 3, Localize: true},
		},
		{
			Name:   "compression_ratio",
			Marker: "Mean compression ratio:",
			Action: ActionField,
			Field:  FieldSpec{Sep: " ", Index: 3, DropLast: true, Localize: true},
		},
		{
			Name:       "decompression_time",
			Marker:     "Mean decompression time:",
			Action:     ActionField,
			Field:      FieldSpec{Sep: " ", Index: 3, Localize: true},
			BlankAfter: true,
		},
	}
}
