package locale

import "context"

// Lazy is a deferred translation: it holds the inputs of a resolution but no
// resolved value and no locale. The full lookup runs every time the value is
// read, so the same Lazy can legitimately yield different text over its
// lifetime when the active locale changes or the store is reloaded between
// reads.
type Lazy struct {
	resolver *Resolver
	key      string
	count    int
	counted  bool
	args     Args
}

// Resolve materializes the translation against the current store generation
// and the locale selected for ctx. The only possible error is a
// *FormatError; the returned string then still holds the best-effort
// substitution.
func (l *Lazy) Resolve(ctx context.Context) (string, error) {
	p := Unknown
	if l.counted {
		p = pluralityForCount(l.count)
	}
	return l.resolver.resolve(ctx, l.key, p, l.args)
}

// String implements fmt.Stringer so a Lazy can be handed to rendering code
// as a string-like value. It resolves with a background context and returns
// the best-effort text even when placeholder arguments are missing.
func (l *Lazy) String() string {
	s, _ := l.Resolve(context.Background())
	return s
}
