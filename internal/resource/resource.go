// Package resource defines the capability every plan node exposes, independent
// of its concrete kind.
package resource

import (
	"context"
	"fmt"

	"github.com/specialistvlad/ppcatalog/internal/ctxlog"
	"github.com/specialistvlad/ppcatalog/internal/nodeid"
)

// Resource is a typed, titled unit of desired state. The plan never calls
// Ensure; it is the hook an executor of the plan would drive.
type Resource interface {
	// Type returns the canonical type name, e.g. "File" or "Foo::Bar".
	Type() string
	// Title returns the resource title as displayed.
	Title() string
	// ID returns the composite identifier "Type[title]".
	ID() string
	// Ensure converges the resource to the requested state.
	Ensure(ctx context.Context, state Ensure) error
}

// Ensure is the desired state of a resource.
type Ensure int

const (
	// Present is the default state.
	Present Ensure = iota
	Absent
)

func (e Ensure) String() string {
	switch e {
	case Present:
		return "present"
	case Absent:
		return "absent"
	default:
		return fmt.Sprintf("Ensure(%d)", int(e))
	}
}

// ParseEnsure parses the value of an `ensure` attribute. The empty string
// means Present.
func ParseEnsure(s string) (Ensure, error) {
	switch s {
	case "", "present":
		return Present, nil
	case "absent":
		return Absent, nil
	default:
		return Present, fmt.Errorf("invalid ensure value %q: must be 'present' or 'absent'", s)
	}
}

// Base carries the identity shared by every resource kind. Concrete kinds
// embed it and add Ensure.
type Base struct {
	addr nodeid.Address
}

// NewBase returns a Base for the given type and title. The type name is
// canonicalised.
func NewBase(typeName, title string) Base {
	return Base{addr: nodeid.New(typeName, title)}
}

func (b Base) Type() string  { return b.addr.Type }
func (b Base) Title() string { return b.addr.Title }
func (b Base) ID() string    { return b.addr.String() }

// LogEnsure records a requested state transition. Kinds without real side
// effects use it as their whole Ensure implementation.
func (b Base) LogEnsure(ctx context.Context, state Ensure) error {
	switch state {
	case Present, Absent:
	default:
		return fmt.Errorf("%s: unsupported ensure state %s", b.ID(), state)
	}
	ctxlog.FromContext(ctx).Info("Ensuring resource state.", "id", b.ID(), "state", state.String())
	return nil
}
