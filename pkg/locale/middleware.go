package locale

import "net/http"

// Middleware returns an HTTP middleware that detects the request's locale
// with the given extractor and stores it in the request context, where
// ContextSelector picks it up for every resolution performed while handling
// the request.
//
// If extr is nil, DefaultExtractor() is used. When no locale can be
// detected, the context is left untouched and the resolver's default locale
// applies.
func Middleware(extr Extractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if code := extr(r); code != "" {
				r = r.WithContext(SetLocale(r.Context(), code))
			}
			next.ServeHTTP(w, r)
		})
	}
}
