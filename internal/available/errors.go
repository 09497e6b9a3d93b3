package available

import "fmt"

// RegistryAccessError reports a failure to enumerate one kind of package.
type RegistryAccessError struct {
	Kind Kind
	Err  error
}

func (e *RegistryAccessError) Error() string {
	return fmt.Sprintf("failed to list %s: %v", e.Kind.plural(), e.Err)
}

func (e *RegistryAccessError) Unwrap() error {
	return e.Err
}

// MalformedPackageError reports a registry entry that cannot be described,
// e.g. a formula without a name. Identifier is best effort and may be empty.
type MalformedPackageError struct {
	Kind       Kind
	Identifier string
	Reason     string
}

func (e *MalformedPackageError) Error() string {
	id := e.Identifier
	if id == "" {
		id = "<unknown>"
	}
	return fmt.Sprintf("malformed %s %s: %s", e.Kind, id, e.Reason)
}
