package stylekit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentifierValid(t *testing.T) {
	for _, text := range []string{"a", "A", "z9", "_", "snake_case", "Mixed_Case_09"} {
		id, err := NewIdentifier(text)
		require.NoError(t, err)
		require.Equal(t, text, id.String())
	}
}

func TestIdentifierInvalid(t *testing.T) {
	for _, text := range []string{"", "a-b", "a b", "a.b", "ä", "a::b", "emoji🙂"} {
		_, err := NewIdentifier(text)
		require.Error(t, err)

		var invalid *InvalidIdentifierError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, text, invalid.Text)
	}
}

func TestIdentifierPrivate(t *testing.T) {
	require.True(t, PrivateIdentifier().IsPrivate())
	require.Equal(t, "_", PrivateIdentifier().String())

	underscore, err := NewIdentifier("_")
	require.NoError(t, err)
	require.Equal(t, PrivateIdentifier(), underscore)
}

func TestMustIdentifierPanics(t *testing.T) {
	require.Panics(t, func() { MustIdentifier("not/valid") })
}

func TestIdentifierCompare(t *testing.T) {
	a := MustIdentifier("a")
	b := MustIdentifier("b")

	require.Negative(t, a.Compare(b))
	require.Positive(t, b.Compare(a))
	require.Zero(t, a.Compare(MustIdentifier("a")))
}

func TestPascalToSnake(t *testing.T) {
	cases := map[string]string{
		"Test":      "test",
		"TestTest":  "test_test",
		"aFFITest":  "a_ffi_test",
		"FontSize":  "font_size",
		"ABTest":    "ab_test",
		"Color2":    "color2",
		"lowercase": "lowercase",
	}

	for input, expected := range cases {
		actual, err := pascalToSnake(input)
		require.NoError(t, err)
		require.Equal(t, expected, actual, "input %q", input)
	}

	_, err := pascalToSnake("Not Valid")
	var invalid *InvalidIdentifierError
	require.True(t, errors.As(err, &invalid))
}
