package locate

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingOption is wrapped by a ConfigError.
	ErrMissingOption = errors.New("option missing")
	// ErrUserLookup is returned when the current user can't be found in
	// the user database.
	ErrUserLookup = errors.New("cannot look up system user database")
	// ErrNotFound is returned when a support binary exists in neither
	// the system nor the per-user support binaries directory.
	ErrNotFound = errors.New("not found")
)

// ConfigError reports a required option that is absent from a
// locations file.
type ConfigError struct {
	File string
	Key  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("option '%s' missing in file '%s'", e.Key, e.File)
}

func (*ConfigError) Unwrap() error {
	return ErrMissingOption
}
