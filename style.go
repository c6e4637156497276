package stylekit

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Style is a set of style components, at most one per component kind.
// Pushing a component whose kind is already present replaces the previous
// value.
//
// The zero Style is an empty style ready for use. A Style is an ordinary
// owned value: it is not safe for concurrent mutation, wrap it in your own
// synchronization if you need that.
type Style struct {
	components map[Name]AnyComponent
}

// New returns a new style with no components.
func New() Style {
	return Style{components: map[Name]AnyComponent{}}
}

// WithCapacity returns a new empty style with room for n components.
func WithCapacity(n int) Style {
	return Style{components: make(map[Name]AnyComponent, n)}
}

// Push adds a component to this style. An existing value of the same kind is
// replaced.
func (s *Style) Push(component StyleComponent) {
	if s.components == nil {
		s.components = map[Name]AnyComponent{}
	}

	kind := component.ComponentKind()
	s.components[kind.Name] = AnyComponent{kind: kind, component: component}
}

// With adds a component and returns the style, for building styles in one
// expression:
//
//	style := stylekit.New().
//	    With(FontSize{Points: 14}).
//	    With(FontFamily{Family: "Roboto"})
func (s Style) With(component StyleComponent) Style {
	s.Push(component)
	return s
}

// Get returns the component of kind C, if present.
func Get[C IsStyleComponent[C]](s *Style) (C, bool) {
	entry, ok := s.components[KindOf[C]().Name]
	if !ok {
		var zero C
		return zero, false
	}

	component, ok := entry.component.(C)
	return component, ok
}

// GetOrDefault returns the component of kind C, or the zero value of C when
// absent. The style is not modified.
func GetOrDefault[C IsStyleComponent[C]](s *Style) C {
	component, _ := Get[C](s)
	return component
}

// GetByName returns the stored component for name without static type
// knowledge.
func (s *Style) GetByName(name Name) (AnyComponent, bool) {
	entry, ok := s.components[name]
	return entry, ok
}

// GetWithFallback returns the component of kind C or, when C is absent, the
// first component found on C's declared fallback chain. The chain is walked
// depth first in declaration order. It returns false only when every kind in
// the chain is absent.
func GetWithFallback[C IsStyleComponent[C]](s *Style) (AnyComponent, bool) {
	return s.Resolve(KindOf[C]())
}

// Resolve is the untyped form of GetWithFallback: it looks up kind, walking
// its fallback chain on a miss. Chains may be cyclic; every kind is visited
// at most once and a cycle resolves as a miss.
func (s *Style) Resolve(kind *ComponentKind) (AnyComponent, bool) {
	return s.resolve(kind, map[*ComponentKind]struct{}{})
}

func (s *Style) resolve(kind *ComponentKind, visited map[*ComponentKind]struct{}) (AnyComponent, bool) {
	if _, seen := visited[kind]; seen {
		return AnyComponent{}, false
	}
	visited[kind] = struct{}{}

	if entry, ok := s.components[kind.Name]; ok {
		return entry, true
	}

	for _, fallback := range kind.Fallbacks() {
		if entry, ok := s.resolve(fallback, visited); ok {
			return entry, true
		}
	}

	return AnyComponent{}, false
}

// ResolveValue resolves kind like Resolve and probes the found component for
// a value of type V, the value type of the originally requested kind. See
// ValueAs.
func ResolveValue[V any](s *Style, kind *ComponentKind) (V, bool) {
	entry, ok := s.Resolve(kind)
	if !ok {
		var zero V
		return zero, false
	}

	return ValueAs[V](entry)
}

// Len returns the number of components in this style.
func (s *Style) Len() int {
	return len(s.components)
}

// IsEmpty reports whether this style has no components.
func (s *Style) IsEmpty() bool {
	return len(s.components) == 0
}

// All returns an iterator over the components of this style. The order is
// sorted by name and therefore stable as long as the style is not modified.
func (s *Style) All() iter.Seq[AnyComponent] {
	return func(yield func(AnyComponent) bool) {
		for _, entry := range s.Components() {
			if !yield(entry) {
				return
			}
		}
	}
}

// Components returns the components of this style, sorted by name.
func (s *Style) Components() []AnyComponent {
	components := slices.Collect(maps.Values(s.components))

	slices.SortFunc(components, func(a, b AnyComponent) int {
		return a.Name().Compare(b.Name())
	})

	return components
}

// Merge combines this style with other and returns the result. Components
// present on both sides are combined with their kind's Merge; kinds without
// a custom merge keep the value from other (override semantics). Both inputs
// are consumed.
func (s Style) Merge(other Style) Style {
	return s.MergeWith(other, false)
}

// MergeWith combines this style (the base) with other (the overriding side)
// and returns the result, consuming both.
//
// For every component name present on either side:
//   - present only in the base: carried over, unless respectInheritance is
//     true and the component is not inheritable, in which case it is dropped.
//   - present only in other: carried over.
//   - present on both sides: combined with the kind's Merge; if the kind has
//     no custom merge, or Merge signals that the values cannot be combined,
//     the value from other wins.
func (s Style) MergeWith(other Style, respectInheritance bool) Style {
	merged := other.components
	if merged == nil {
		merged = map[Name]AnyComponent{}
	}

	for name, base := range s.components {
		incoming, both := merged[name]
		if !both {
			if respectInheritance && !base.Inherited() {
				continue
			}

			merged[name] = base
			continue
		}

		if base.kind.merge == nil {
			// no custom merge, the incoming value wins
			continue
		}

		if combined, ok := base.kind.merge(base.component, incoming.component); ok {
			merged[name] = AnyComponent{kind: base.kind, component: combined}
		}
	}

	return Style{components: merged}
}

// Clone returns a copy of this style. Components are value types and every
// entry is copied; the two styles share no storage afterwards.
func (s *Style) Clone() Style {
	return Style{components: maps.Clone(s.components)}
}

func (s Style) String() string {
	var out strings.Builder
	out.WriteString("Style(")

	for i, entry := range s.Components() {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(entry.String())
	}

	out.WriteString(")")
	return out.String()
}
