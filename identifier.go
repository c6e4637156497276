package stylekit

import (
	"fmt"
	"strings"
)

// privateAuthority is the reserved authority used for components that do not
// need a globally unique name.
const privateAuthority = "_"

// Identifier is an immutable text token containing only the characters
// a-z, A-Z, 0-9 and _. Identifiers are comparable and can be used as map keys.
//
// The zero Identifier is empty and never produced by NewIdentifier.
type Identifier struct {
	text string
}

// NewIdentifier validates text and returns it as an Identifier.
//
// It returns an InvalidIdentifierError if text is empty or contains any
// character outside of a-z, A-Z, 0-9 and _.
func NewIdentifier(text string) (Identifier, error) {
	if err := validateIdentifier(text, "identifier"); err != nil {
		return Identifier{}, err
	}

	return Identifier{text: text}, nil
}

// MustIdentifier is like NewIdentifier but panics on invalid input.
// Use it for package level constants only.
func MustIdentifier(text string) Identifier {
	id, err := NewIdentifier(text)
	if err != nil {
		panic(fmt.Sprintf("stylekit: %s", err))
	}

	return id
}

// PrivateIdentifier returns the reserved authority identifier "_".
func PrivateIdentifier() Identifier {
	return Identifier{text: privateAuthority}
}

// IsPrivate reports whether this identifier is the reserved private authority.
func (i Identifier) IsPrivate() bool {
	return i.text == privateAuthority
}

func (i Identifier) String() string {
	return i.text
}

// Compare orders identifiers by byte content.
func (i Identifier) Compare(other Identifier) int {
	return strings.Compare(i.text, other.text)
}

// InvalidIdentifierError is returned when constructing an Identifier or Name
// from text that is empty or contains a disallowed character. Part indicates
// which part of a Name failed ("authority" or "local"); for a plain
// Identifier it is "identifier".
type InvalidIdentifierError struct {
	Text string
	Part string
}

func (e *InvalidIdentifierError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("empty %s", e.Part)
	}

	return fmt.Sprintf("invalid character in %s %q", e.Part, e.Text)
}

func validateIdentifier(text, part string) error {
	if text == "" {
		return &InvalidIdentifierError{Part: part}
	}

	for i := 0; i < len(text); i++ {
		if !isIdentifierByte(text[i]) {
			return &InvalidIdentifierError{Text: text, Part: part}
		}
	}

	return nil
}

func isIdentifierByte(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z':
		return true
	case ch >= 'A' && ch <= 'Z':
		return true
	case ch >= '0' && ch <= '9':
		return true
	case ch == '_':
		return true
	default:
		return false
	}
}

// pascalToSnake converts a Go type name such as FontSize into its default
// component name font_size. Runs of uppercase letters are kept together,
// AFFITest becomes a_ffi_test.
func pascalToSnake(name string) (string, error) {
	var out strings.Builder
	out.Grow(len(name) + 4)

	prevUpper := false
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if !isIdentifierByte(ch) {
			return "", &InvalidIdentifierError{Text: name, Part: "identifier"}
		}

		isUpper := ch >= 'A' && ch <= 'Z'
		nextUpper := i+1 < len(name) && name[i+1] >= 'A' && name[i+1] <= 'Z'

		if isUpper {
			if prevUpper && !nextUpper && out.Len() > 0 {
				out.WriteByte('_')
			}
			out.WriteByte(ch - 'A' + 'a')
		} else {
			out.WriteByte(ch)
			if nextUpper {
				out.WriteByte('_')
			}
		}

		prevUpper = isUpper
	}

	return out.String(), nil
}
