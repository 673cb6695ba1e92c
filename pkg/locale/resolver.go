package locale

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

// DefaultLocale is used when no default is configured and no selector
// preference applies.
const DefaultLocale = "en_US"

// Selector determines the locale code for the current unit of work (e.g. the
// current request). It is invoked once per resolution. Returning the empty
// string means "no preference" and falls back to the resolver's default
// locale; a panicking selector is treated the same way.
type Selector func(ctx context.Context) string

// Resolver is the translation engine: it owns the loaded translation store,
// selects the active locale per call, disambiguates plural forms and formats
// placeholders. A Resolver is safe for concurrent use; resolutions read an
// immutable store generation and never block on reloads.
type Resolver struct {
	defaultLocale string
	selector      Selector
	logger        *slog.Logger
	logMissing    bool
	loaders       []Loader

	snap     atomic.Pointer[snapshot]
	reloadMu sync.Mutex
}

// New creates a Resolver and eagerly loads all registered loaders. A loader
// failure here is unrecoverable and fails construction; the resolver never
// starts with partial data.
func New(ctx context.Context, loaders []Loader, opts ...Option) (*Resolver, error) {
	if len(loaders) == 0 {
		return nil, ErrNoLoaders
	}
	for _, loader := range loaders {
		if loader == nil {
			return nil, ErrNilLoader
		}
	}

	r := &Resolver{
		defaultLocale: DefaultLocale,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		loaders:       loaders,
	}
	for _, opt := range opts {
		opt(r)
	}

	snap, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	r.snap.Store(snap)
	r.logger.InfoContext(ctx, "translations loaded", "locales", snap.localeCodes())
	return r, nil
}

// NewFromConfig creates a Resolver with a directory loader built from cfg.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Resolver, error) {
	loader := NewDirLoader(cfg.Path)
	if loader == nil {
		return nil, ErrNoLoaders
	}
	opts = append([]Option{WithDefaultLocale(cfg.DefaultLocale)}, opts...)
	return New(ctx, []Loader{loader}, opts...)
}

// loadAll runs every loader in registration order and builds a fresh
// generation from the concatenated rows. Later loaders win on conflict.
func (r *Resolver) loadAll(ctx context.Context) (*snapshot, error) {
	var rows []Row
	for _, loader := range r.loaders {
		loaded, err := loader.Load(ctx)
		if err != nil {
			return nil, err
		}
		rows = append(rows, loaded...)
	}
	return buildSnapshot(rows), nil
}

// Reload re-invokes all registered loaders and atomically replaces the store.
// The new generation is built fully aside; on any loader failure the previous
// generation stays active and the error is returned. Reloads are serialized:
// a Reload arriving while another is in flight waits its turn and then loads
// against the then-current source state. In-flight resolutions keep reading
// the generation they started with.
func (r *Resolver) Reload(ctx context.Context) error {
	r.reloadMu.Lock()
	defer r.reloadMu.Unlock()

	snap, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	r.snap.Store(snap)
	r.logger.InfoContext(ctx, "translations reloaded", "locales", snap.localeCodes())
	return nil
}

// SupportedLocales returns the sorted locale codes present in the current
// generation.
func (r *Resolver) SupportedLocales() []string {
	return r.snap.Load().localeCodes()
}

// HasTranslation reports whether any form is stored for (locale, key).
func (r *Resolver) HasTranslation(code, key string) bool {
	return r.snap.Load().has(code, key)
}

// DefaultLocale returns the configured fallback locale code.
func (r *Resolver) DefaultLocale() string {
	return r.defaultLocale
}

// Translate resolves key for the active locale without plural selection and
// substitutes args into the result. A missing translation falls back to the
// key itself, so the only possible error is a *FormatError; its accompanying
// string still holds the best-effort substitution.
func (r *Resolver) Translate(ctx context.Context, key string, args Args) (string, error) {
	return r.resolve(ctx, key, Unknown, args)
}

// TranslateN resolves key with plural disambiguation: n == 1 selects the
// singular form, any other count the plural form, each falling back to the
// unspecified form and finally to the key itself.
func (r *Resolver) TranslateN(ctx context.Context, key string, n int, args Args) (string, error) {
	return r.resolve(ctx, key, pluralityForCount(n), args)
}

// Lazy returns a deferred translation of key that resolves on read.
func (r *Resolver) Lazy(key string, args Args) *Lazy {
	return &Lazy{resolver: r, key: key, args: args}
}

// LazyN returns a deferred plural-aware translation of key.
func (r *Resolver) LazyN(key string, n int, args Args) *Lazy {
	return &Lazy{resolver: r, key: key, count: n, counted: true, args: args}
}

// T is the short alias for Lazy, mirroring the underscore convention of
// gettext-style APIs where translated strings are built before the active
// locale is known.
func (r *Resolver) T(key string, args Args) *Lazy {
	return r.Lazy(key, args)
}

// resolve runs the full per-call algorithm: select locale, look up the
// template, fall back to the key on miss, format placeholders.
func (r *Resolver) resolve(ctx context.Context, key string, p Plurality, args Args) (string, error) {
	code := r.activeLocale(ctx)

	tmpl, ok := r.snap.Load().lookup(code, key, p)
	if !ok {
		if r.logMissing {
			r.logger.WarnContext(ctx, "translation not found",
				"locale", code, "key", key, "plurality", p.String())
		}
		tmpl = key
	}
	return Format(tmpl, args)
}

// activeLocale consults the selector once and falls back to the default
// locale when no selector is registered, it reports no preference, or it
// panics. Selector failures are absorbed, never propagated.
func (r *Resolver) activeLocale(ctx context.Context) string {
	if r.selector == nil {
		return r.defaultLocale
	}
	code := r.selectLocale(ctx)
	if code == "" {
		return r.defaultLocale
	}
	return code
}

func (r *Resolver) selectLocale(ctx context.Context) (code string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.DebugContext(ctx, "locale selector panicked", "panic", rec)
			code = ""
		}
	}()
	return r.selector(ctx)
}
