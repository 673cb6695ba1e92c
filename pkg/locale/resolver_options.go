package locale

import "log/slog"

// Option configures a Resolver instance.
type Option func(*Resolver)

// WithDefaultLocale sets the locale used when no selector is registered or
// the selector reports no preference. Empty values are ignored.
func WithDefaultLocale(code string) Option {
	return func(r *Resolver) {
		if code != "" {
			r.defaultLocale = code
		}
	}
}

// WithSelector registers the per-call locale selection strategy.
func WithSelector(s Selector) Option {
	return func(r *Resolver) {
		r.selector = s
	}
}

// WithLogger provides a logger for the resolver. If not specified, a discard
// logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMissingLogging controls whether lookups that fall back to the source
// key are logged. Default is false to avoid noisy logs on partially
// translated catalogs.
func WithMissingLogging(log bool) Option {
	return func(r *Resolver) {
		r.logMissing = log
	}
}
