package extract

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/benchstats/internal/domain"
)

// Field cuts a single value out of line according to spec.
//
// Policy:
// - The line is split on spec.Sep exactly, so "a  b" has an empty field between a and b.
// - Fewer fields than spec.Index+1 -> malformed_line error; nothing is guessed.
// - DropLast on an empty field leaves it empty.
func Field(line string, spec domain.FieldSpec, decimalSep string) (string, error) {
	if spec.Sep == "" {
		return "", &domain.OpError{
			Op:   "extract.field",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("empty separator: %w", domain.ErrInvalidConfig),
		}
	}

	parts := strings.Split(line, spec.Sep)
	if spec.Index < 0 || spec.Index >= len(parts) {
		return "", &domain.OpError{
			Op:   "extract.field",
			Kind: domain.KindMalformedLine,
			Err: fmt.Errorf("want field %d of %q-separated line, got %d field(s): %w",
				spec.Index, spec.Sep, len(parts), domain.ErrMalformedLine),
		}
	}

	v := parts[spec.Index]
	if spec.TrimRight != "" {
		v = strings.TrimRight(v, spec.TrimRight)
	}
	if spec.DropLast {
		v = dropLast(v)
	}
	if spec.Localize {
		v = Localize(v, decimalSep)
	}
	return v, nil
}

// Localize swaps every decimal point for sep, e.g. "12.345" -> "12,345".
func Localize(value, sep string) string {
	return strings.ReplaceAll(value, ".", sep)
}

func dropLast(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(r[:len(r)-1])
}
