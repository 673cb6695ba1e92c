// Package locale resolves human-readable message keys into locale-specific
// translated strings, with named placeholder substitution and singular/plural
// variant selection. It is designed for request-per-context applications that
// decide the active locale per unit of work while sharing one read-mostly
// translation store across all of them.
//
// # Architecture
//
// The Resolver orchestrates everything: it owns the in-memory store, consults
// a caller-supplied Selector once per resolution to determine the active
// locale, disambiguates the plural form, and substitutes %(name)s-style
// placeholders. The store is populated by one or more Loaders — a closed set
// of variants behind one interface:
//
//   - DirLoader parses per-locale CSV files from a directory (the filename
//     sans extension is the locale code).
//   - QueryLoader wraps a caller-supplied callback returning rows, typically
//     backed by a relational query (see the pgloader package).
//   - MapLoader serves static in-memory rows.
//
// Loader results are concatenated in registration order and folded into an
// immutable store generation; when several rows target the same
// (locale, key, plurality), the last one wins. Reload rebuilds the whole
// generation aside and publishes it with a single atomic swap, so concurrent
// resolutions are lock-free and never observe a half-built store. A failed
// reload leaves the previous generation active.
//
// A missing translation is never an error: resolution falls back from the
// requested plural form to the unspecified form of the same key, and finally
// to the key text itself. The only per-call error is a *FormatError for a
// placeholder with no matching argument.
//
// # Usage
//
//	resolver, err := locale.New(ctx,
//		[]locale.Loader{locale.NewDirLoader("./translations")},
//		locale.WithDefaultLocale("tr_TR"),
//		locale.WithSelector(locale.ContextSelector),
//	)
//	if err != nil {
//		log.Fatalf("loading translations: %v", err)
//	}
//
//	msg, err := resolver.TranslateN(ctx, "%(name)s liked this", 1,
//		locale.Args{"name": "Ali"})
//
// # Lazy translation
//
// Lazy and LazyN return deferred handles that hold only their inputs and
// re-run the full resolution on every read. They can be constructed before
// the active locale is even known and are not invalidated by reloads:
//
//	greeting := resolver.Lazy("Hello", nil)
//	// ... later, inside a request ...
//	text, _ := greeting.Resolve(r.Context())
//
// # HTTP integration
//
// Middleware detects the request locale (cookie, query parameter or
// Accept-Language negotiation against the supported locales) and stores it in
// the request context for ContextSelector:
//
//	mux.Use(locale.Middleware(locale.DefaultExtractor(
//		locale.WithSupportedLocales(resolver.SupportedLocales()...),
//	)))
package locale
