package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/benchstats/internal/domain"
)

func specFor(t *testing.T, name string) domain.FieldSpec {
	t.Helper()
	for _, r := range domain.DefaultRules() {
		if r.Name == name {
			return r.Field
		}
	}
	t.Fatalf("no default rule %q", name)
	return domain.FieldSpec{}
}

func TestField_DefaultRules(t *testing.T) {
	cases := []struct {
		rule string
		line string
		want string
	}{
		{"file", "file: /a/b/c", "b"},
		{"file", "file: /a/b/c\n", "b"},
		{"file", "file: ./data/vm-disk.img", "vm-disk.img"},
		{"file", "file: ./data/vm-disk.img\r\n", "vm-disk.img"},
		{"compression_time", "Mean compression time: 12.345 seconds", "12,345"},
		{"compression_time", "Mean compression time: 0.812 ms", "0,812"},
		{"compression_ratio", "Mean compression ratio: 45.6%", "45,6"},
		{"compression_ratio", "Mean compression ratio: 38.27%", "38,27"},
		{"decompression_time", "Mean decompression time: 7.89 seconds", "7,89"},
	}
	for _, c := range cases {
		t.Run(c.rule+"/"+c.line, func(t *testing.T) {
			got, err := Field(c.line, specFor(t, c.rule), ",")
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestField_TooFewFields(t *testing.T) {
	cases := []struct {
		rule string
		line string
	}{
		{"file", "file: none"},
		{"file", "file: /only"},
		{"compression_time", "Mean compression time:"},
		{"compression_ratio", "Mean compression ratio:"},
		{"decompression_time", "Mean decompression time:"},
	}
	for _, c := range cases {
		_, err := Field(c.line, specFor(t, c.rule), ",")
		require.Error(t, err, c.line)
		assert.True(t, domain.IsKind(err, domain.KindMalformedLine), "kind for %q: %v", c.line, err)
		assert.True(t, errors.Is(err, domain.ErrMalformedLine))
	}
}

func TestField_SplitsExactly(t *testing.T) {
	// A doubled space shifts the tokens: index 3 is now empty.
	got, err := Field("Mean compression time:  1.5 ms", specFor(t, "compression_time"), ",")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestField_DropLastEmpty(t *testing.T) {
	got, err := Field("a  b", domain.FieldSpec{Sep: " ", Index: 1, DropLast: true}, ",")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestField_DropLastMultibyte(t *testing.T) {
	got, err := Field("ratio 12.5‰", domain.FieldSpec{Sep: " ", Index: 1, DropLast: true}, ",")
	require.NoError(t, err)
	assert.Equal(t, "12.5", got)
}

func TestField_NegativeIndex(t *testing.T) {
	_, err := Field("a b", domain.FieldSpec{Sep: " ", Index: -1}, ",")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindMalformedLine))
}

func TestField_EmptySeparator(t *testing.T) {
	_, err := Field("a b", domain.FieldSpec{}, ",")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
}

func TestLocalize(t *testing.T) {
	assert.Equal(t, "12,345", Localize("12.345", ","))
	assert.Equal(t, "1;2;3", Localize("1.2.3", ";"))
	assert.Equal(t, "42", Localize("42", ","))
	assert.Equal(t, "12.5", Localize("12.5", "."))
}
