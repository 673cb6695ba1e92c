package locale

import "context"

// localeContextKey is the key for storing the locale code in context.
type localeContextKey struct{}

// SetLocale returns a context carrying the given locale code.
func SetLocale(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, code)
}

// GetLocale returns the locale code stored in the context, or the empty
// string when none is set. The empty return deliberately means "no
// preference" so the resolver's configured default applies.
func GetLocale(ctx context.Context) string {
	code, _ := ctx.Value(localeContextKey{}).(string)
	return code
}

// ContextSelector is a ready-made Selector that reads the locale stored in
// the request context, typically put there by Middleware.
var ContextSelector Selector = GetLocale
