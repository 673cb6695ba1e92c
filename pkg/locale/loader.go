package locale

import "context"

// Row is one raw translation record supplied by a Loader: a source string,
// its translation for one locale, and an optional plurality label.
type Row struct {
	Locale      string
	Source      string
	Translation string
	// Plural is the raw plurality label ("plural", "singular" or anything
	// else for unknown). It is interpreted with ParsePlurality at store
	// build time, not by the loader.
	Plural string
}

// Loader supplies raw translation rows from some external source. Loaders are
// registered at resolver construction and re-invoked on every reload; results
// from all registered loaders are concatenated in registration order, so rows
// from later loaders win on conflict.
type Loader interface {
	Load(ctx context.Context) ([]Row, error)
}

// RowsFunc is a caller-supplied callback producing translation rows,
// typically backed by an external data query.
type RowsFunc func(ctx context.Context) ([]Row, error)

// QueryLoader adapts a RowsFunc to the Loader interface. The callback is
// treated as opaque: the loader performs no query execution, connection
// management or transaction handling of its own.
type QueryLoader struct {
	fn RowsFunc
}

// NewQueryLoader creates a QueryLoader around fn. Returns nil if fn is nil.
func NewQueryLoader(fn RowsFunc) *QueryLoader {
	if fn == nil {
		return nil
	}
	return &QueryLoader{fn: fn}
}

// Load implements the Loader interface.
func (l *QueryLoader) Load(ctx context.Context) ([]Row, error) {
	if l == nil || l.fn == nil {
		return nil, ErrNilRowsFunc
	}
	return l.fn(ctx)
}

// MapLoader serves a fixed set of rows from memory. Useful for tests and for
// shipping compiled-in default translations alongside file or query sources.
type MapLoader struct {
	Rows []Row
}

// Load implements the Loader interface.
func (l *MapLoader) Load(_ context.Context) ([]Row, error) {
	return l.Rows, nil
}
