// Package basic provides ready to use style components: colors, fonts,
// alignment and spacing. All components are named under the "stylekit"
// authority.
package basic

import "github.com/oliverbestmann/stylekit"

// Authority returns the identifier the components of this package are named
// under.
func Authority() stylekit.Identifier {
	return authority
}

// builtin is embedded by every component of this package to claim the
// stylekit authority.
type builtin struct{}

func (builtin) StyleAuthority() stylekit.Identifier {
	return authority
}
