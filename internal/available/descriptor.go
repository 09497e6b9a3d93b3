package available

import "encoding/json"

// Kind identifies which registry a package came from.
type Kind string

const (
	KindFormula Kind = "formula"
	KindCask    Kind = "cask"
)

// plural returns the registry name used in messages, e.g. "formulae".
func (k Kind) plural() string {
	switch k {
	case KindFormula:
		return "formulae"
	case KindCask:
		return "casks"
	default:
		return string(k)
	}
}

// Optional marks a field that is either absent or present with a value.
// An absent Optional is omitted from JSON by the omitzero option; a present
// one is always encoded, even when its value is empty.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsZero reports whether o is absent.
func (o Optional[T]) IsZero() bool {
	return !o.present
}

// MarshalJSON encodes the held value.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.value)
}

// Descriptor is the uniform record for one formula or cask.
// Dependencies and Dependents are either both present or both absent.
type Descriptor struct {
	Kind         Kind               `json:"type"`
	Name         string             `json:"name"`
	Version      string             `json:"version"`
	Info         string             `json:"info"`
	Outdated     bool               `json:"outdated"`
	Installed    bool               `json:"installed"`
	Path         string             `json:"path"`
	Dependencies Optional[[]string] `json:"deps,omitzero"`
	Dependents   Optional[[]string] `json:"dependents,omitzero"`
}
