package stylekit

import (
	"fmt"
	"strings"
)

// Name is a globally unique component name consisting of an authority and a
// locally unique name. Two authorities can both define their own "color"
// component without conflict.
//
// Name is comparable and used as the key type of a Style.
type Name struct {
	// Authority names the source of the component, for example the module
	// that defines it. PrivateIdentifier is used for unscoped names.
	Authority Identifier

	// Local is the name of the component within its authority.
	Local Identifier
}

// NewName validates both parts and returns the resulting Name.
//
// The returned error is an InvalidIdentifierError whose Part field tells
// which of the two parts was rejected.
func NewName(authority, local string) (Name, error) {
	auth, err := NewIdentifier(authority)
	if err != nil {
		return Name{}, &InvalidIdentifierError{Text: authority, Part: "authority"}
	}

	loc, err := NewIdentifier(local)
	if err != nil {
		return Name{}, &InvalidIdentifierError{Text: local, Part: "local"}
	}

	return Name{Authority: auth, Local: loc}, nil
}

// PrivateName returns a Name with the reserved private authority. It is
// equivalent to NewName("_", local).
func PrivateName(local string) (Name, error) {
	loc, err := NewIdentifier(local)
	if err != nil {
		return Name{}, &InvalidIdentifierError{Text: local, Part: "local"}
	}

	return Name{Authority: PrivateIdentifier(), Local: loc}, nil
}

// MustName is like NewName but panics on invalid input.
// Use it for package level constants only.
func MustName(authority, local string) Name {
	name, err := NewName(authority, local)
	if err != nil {
		panic(fmt.Sprintf("stylekit: %s", err))
	}

	return name
}

// ParseName parses the string form produced by Name.String. A name with an
// authority is written as "authority::local", a private name as just "local".
func ParseName(s string) (Name, error) {
	if authority, local, ok := strings.Cut(s, "::"); ok {
		return NewName(authority, local)
	}

	return PrivateName(s)
}

// IsPrivate reports whether the name uses the reserved private authority.
func (n Name) IsPrivate() bool {
	return n.Authority.IsPrivate()
}

func (n Name) String() string {
	if n.IsPrivate() {
		return n.Local.String()
	}

	return n.Authority.String() + "::" + n.Local.String()
}

// Compare orders names by authority first, then by local name.
func (n Name) Compare(other Name) int {
	if c := n.Authority.Compare(other.Authority); c != 0 {
		return c
	}

	return n.Local.Compare(other.Local)
}
