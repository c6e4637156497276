package stylekit

import "fmt"

type componentMarker struct{}

// StyleComponent is implemented by every value that can be stored in a Style.
//
// Implement it by embedding Component, parameterized with the implementing
// type itself:
//
//	type FontSize struct {
//	    stylekit.Component[FontSize]
//	    Points float64
//	}
//
//	var _ = stylekit.ValidateComponent[FontSize]()
//
// The component's name is derived from the Go type name (FontSize becomes
// font_size) under the private authority. Components can customize their
// identity and behavior by additionally implementing NamedComponent,
// AuthoredComponent, InheritableComponent, Merger or FallbackComponent.
type StyleComponent interface {
	// ComponentKind returns the runtime descriptor of this component's kind.
	ComponentKind() *ComponentKind

	isStyleComponent(componentMarker)
}

// IsStyleComponent connects a component type to itself so that generic
// functions can recover the concrete type from the type parameter.
type IsStyleComponent[C any] interface {
	StyleComponent
	IsStyleComponent(C)
}

// Component is the zero sized marker that turns a struct into a
// StyleComponent. See StyleComponent for usage.
type Component[C IsStyleComponent[C]] struct{}

func (Component[C]) IsStyleComponent(C) {}

func (Component[C]) isStyleComponent(componentMarker) {}

func (Component[C]) ComponentKind() *ComponentKind {
	return KindOf[C]()
}

// NamedComponent overrides the derived component name with an explicit one.
// The method must return the same Name for every value of the type.
type NamedComponent interface {
	StyleName() Name
}

// AuthoredComponent overrides only the authority of the derived name. It is
// ignored when the type also implements NamedComponent.
type AuthoredComponent interface {
	StyleAuthority() Identifier
}

// InheritableComponent overrides whether the component participates in
// inheritance aware merges. Components without this method are inherited.
type InheritableComponent interface {
	ShouldBeInherited() bool
}

// Merger is implemented by component types that can combine two instances of
// themselves into one effective value. Returning false signals that the two
// values cannot be meaningfully merged; the merging Style then keeps the
// incoming value (override semantics).
type Merger[C any] interface {
	Merge(other C) (C, bool)
}

// FallbackComponent declares an ordered chain of other component kinds that
// are consulted by GetWithFallback when this kind is absent from a Style.
// The chain is a property of the type; the method must not depend on the
// receiver value.
type FallbackComponent interface {
	StyleFallbacks() []*ComponentKind
}

// ValuedComponent exposes the payload a component resolves to. Kinds that
// participate in the same fallback chain share a value type V, which lets
// ResolveValue hand back a V regardless of which kind in the chain was
// actually stored.
type ValuedComponent[V any] interface {
	StyleValue() V
}

// ValidateComponent should be called to verify that a component type is
// correctly declared:
//
//	var _ = ValidateComponent[FontSize]()
//
// It registers the component kind, which panics on an invalid derived name
// or a duplicate name, and resolves the declared fallback chain so that a
// broken declaration surfaces during init instead of at first lookup.
func ValidateComponent[C IsStyleComponent[C]]() struct{} {
	kind := KindOf[C]()

	for i, fallback := range kind.Fallbacks() {
		if fallback == nil {
			panic(fmt.Sprintf("stylekit: fallback %d of component %s is nil", i, kind.Name))
		}
	}

	return struct{}{}
}
