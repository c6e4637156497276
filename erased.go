package stylekit

import "fmt"

// AnyComponent is the type erased view of a stored component: the component
// value together with its kind. It is what untyped lookups and iteration
// hand out.
type AnyComponent struct {
	kind      *ComponentKind
	component StyleComponent
}

// Kind returns the component's kind descriptor.
func (c AnyComponent) Kind() *ComponentKind {
	return c.kind
}

// Name returns the name the component is stored under.
func (c AnyComponent) Name() Name {
	return c.kind.Name
}

// Inherited reports whether the component participates in inheritance aware
// merges.
func (c AnyComponent) Inherited() bool {
	return c.kind.Inherited
}

// Component returns the stored component value.
func (c AnyComponent) Component() StyleComponent {
	return c.component
}

func (c AnyComponent) String() string {
	return fmt.Sprintf("%s=%+v", c.kind.Name, c.component)
}

// ValueAs probes the component for a value of type V. The probe succeeds
// when the stored component either is a V itself or supplies one through
// ValuedComponent. This is what lets a fallback lookup return the value type
// of the originally requested kind even when the component actually stored
// is of a different kind in the chain.
func ValueAs[V any](c AnyComponent) (V, bool) {
	if valued, ok := c.component.(ValuedComponent[V]); ok {
		return valued.StyleValue(), true
	}

	if value, ok := any(c.component).(V); ok {
		return value, true
	}

	var zero V
	return zero, false
}
