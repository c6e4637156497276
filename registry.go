package stylekit

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"sync"
	"sync/atomic"
)

// KindId identifies a registered component kind within this process.
// Ids are assigned in registration order starting at 1.
type KindId uint16

// ComponentKind describes a registered component type: its Name, its Go type
// and its merge, inheritance and fallback behavior. Exactly one ComponentKind
// exists per component type; pointers to it are valid identity tokens.
type ComponentKind struct {
	// Name is the globally unique name components of this kind are stored
	// under.
	Name Name

	// Type is the Go type of the component.
	Type reflect.Type

	// Id of the kind.
	Id KindId

	// Inherited reports whether components of this kind flow from a base
	// style into a derived style during inheritance aware merges.
	Inherited bool

	// fallbacks resolves the declared fallback chain. Resolution is deferred
	// to first use so that a chain may refer back to the kind currently
	// being registered.
	fallbacks func() []*ComponentKind

	// merge combines two components of this kind. nil when the type has no
	// custom merge.
	merge func(base, incoming StyleComponent) (StyleComponent, bool)
}

// Fallbacks returns the kind's declared fallback chain in declaration order,
// or nil when the kind declares none.
func (k *ComponentKind) Fallbacks() []*ComponentKind {
	if k.fallbacks == nil {
		return nil
	}

	return k.fallbacks()
}

func (k *ComponentKind) String() string {
	return k.Name.String()
}

// kinds is initialized as a variable, not in an init func: package level
// `var _ = ValidateComponent[...]()` registrations (including the ones in
// this package's own tests) run before init functions, so the lookup table
// must already be in place during variable initialization.
var kinds = func() *atomic.Pointer[map[reflect.Type]*ComponentKind] {
	var p atomic.Pointer[map[reflect.Type]*ComponentKind]
	p.Store(&map[reflect.Type]*ComponentKind{})
	return &p
}()

// KindOf returns the ComponentKind of C, registering it on first use.
//
// Registration panics if the name derived from the type (or declared via
// NamedComponent) is not a valid Name, or if another component type already
// registered the same Name.
func KindOf[C IsStyleComponent[C]]() *ComponentKind {
	typ := reflect.TypeFor[C]()

	for {
		previousKinds := kinds.Load()
		if cached, ok := (*previousKinds)[typ]; ok {
			return cached
		}

		newKind := makeKind[C](KindId(len(*previousKinds) + 1))

		for _, existing := range *previousKinds {
			if existing.Name == newKind.Name {
				panic(fmt.Sprintf(
					"stylekit: component name %s of %s is already registered by %s",
					newKind.Name, newKind.Type, existing.Type,
				))
			}
		}

		newKinds := maps.Clone(*previousKinds)
		newKinds[typ] = newKind

		if kinds.CompareAndSwap(previousKinds, &newKinds) {
			slog.Debug(
				"New component kind registered",
				slog.String("name", newKind.Name.String()),
				slog.Int("id", int(newKind.Id)),
			)

			return newKind
		}
	}
}

func makeKind[C IsStyleComponent[C]](id KindId) *ComponentKind {
	var zero C

	typ := reflect.TypeFor[C]()

	name, err := kindNameOf(any(zero), typ)
	if err != nil {
		panic(fmt.Sprintf("stylekit: component type %s: %s", typ, err))
	}

	kind := &ComponentKind{
		Name:      name,
		Type:      typ,
		Id:        id,
		Inherited: true,
	}

	if inheritable, ok := any(zero).(InheritableComponent); ok {
		kind.Inherited = inheritable.ShouldBeInherited()
	}

	if fallback, ok := any(zero).(FallbackComponent); ok {
		kind.fallbacks = sync.OnceValue(fallback.StyleFallbacks)
	}

	if _, ok := any(zero).(Merger[C]); ok {
		kind.merge = func(base, incoming StyleComponent) (StyleComponent, bool) {
			merged, ok := any(base.(C)).(Merger[C]).Merge(incoming.(C))
			return merged, ok
		}
	}

	return kind
}

// kindNameOf derives the Name of a component type. An explicit StyleName
// wins, otherwise the Go type name is converted to snake case and combined
// with the type's authority (private unless overridden).
func kindNameOf(zero any, typ reflect.Type) (Name, error) {
	if named, ok := zero.(NamedComponent); ok {
		return named.StyleName(), nil
	}

	authority := PrivateIdentifier()
	if authored, ok := zero.(AuthoredComponent); ok {
		authority = authored.StyleAuthority()
	}

	snake, err := pascalToSnake(typ.Name())
	if err != nil {
		return Name{}, err
	}

	local, err := NewIdentifier(snake)
	if err != nil {
		return Name{}, err
	}

	return Name{Authority: authority, Local: local}, nil
}
