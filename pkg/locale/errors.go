package locale

import (
	"errors"
	"fmt"
	"strings"
)

// Load errors abort the whole load or reload attempt that produced them.
// They are joined with the underlying cause so callers can still reach the
// OS-level error with errors.As.
var (
	// ErrNoLoaders is returned when a resolver is constructed without any loader.
	ErrNoLoaders = errors.New("no translation loaders registered")

	// ErrNilLoader is returned when a nil loader is registered.
	ErrNilLoader = errors.New("nil translation loader registered")

	// ErrNilRowsFunc is returned when a query loader is invoked without a callback.
	ErrNilRowsFunc = errors.New("query loader has no rows callback")

	// Directory loader failures.
	ErrFailedToReadDirectory = errors.New("failed to read translations directory")
	ErrFailedToReadFile      = errors.New("failed to read translation file")
	ErrInvalidEncoding       = errors.New("translation file is not valid UTF-8")
	ErrFailedToParseFile     = errors.New("failed to parse translation file")
	ErrMalformedRow          = errors.New("translation row must have 2 or 3 fields")

	// ErrLoadCancelled is returned when the context is cancelled mid-load.
	ErrLoadCancelled = errors.New("translation loading cancelled")
)

// FormatError reports placeholders referenced by a template that were not
// supplied in the call's arguments. It fails only the resolution that raised
// it; the loaded translations are unaffected.
type FormatError struct {
	Template string
	Missing  []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("missing placeholder arguments %s in template %q",
		strings.Join(e.Missing, ", "), e.Template)
}
