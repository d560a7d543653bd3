// Package notifytype represents the kind of notification in the system.
package notifytype

import "fmt"

// The set of notification types.
var (
	Maintenance = newType("MAINTENANCE")
	Invitation  = newType("INVITATION")
	Billing     = newType("BILLING")
	General     = newType("GENERAL")
)

// =============================================================================

// Set of known types.
var types = make(map[string]Type)

// Type represents a notification type in the system.
type Type struct {
	value string
}

func newType(typ string) Type {
	t := Type{typ}
	types[typ] = t
	return t
}

// String returns the name of the type.
func (t Type) String() string {
	return t.value
}

// Equal provides support for the go-cmp package and testing.
func (t Type) Equal(t2 Type) bool {
	return t.value == t2.value
}

// MarshalText provides support for logging and any marshal needs.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.value), nil
}

// =============================================================================

// Parse parses the string value and returns a type if one exists.
func Parse(value string) (Type, error) {
	typ, exists := types[value]
	if !exists {
		return Type{}, fmt.Errorf("invalid notification type %q", value)
	}

	return typ, nil
}

// MustParse parses the string value and returns a type if one exists. If
// an error occurs the function panics.
func MustParse(value string) Type {
	typ, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return typ
}
