package locale_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrymomot/localekit/pkg/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trTRLoader returns the catalog used by most resolver tests: a plain
// translation plus a key with distinct singular and plural forms.
func trTRLoader() locale.Loader {
	return &locale.MapLoader{Rows: []locale.Row{
		{Locale: "tr_TR", Source: "Hello", Translation: "Merhaba"},
		{Locale: "tr_TR", Source: "%(name)s liked this",
			Translation: "%(name)s bunu beğendi", Plural: "singular"},
		{Locale: "tr_TR", Source: "%(name)s liked this",
			Translation: "%(name)s bunu beğendiler", Plural: "plural"},
	}}
}

func staticSelector(code string) locale.Selector {
	return func(context.Context) string { return code }
}

func TestNewRequiresLoaders(t *testing.T) {
	_, err := locale.New(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, locale.ErrNoLoaders)
}

func TestNewFailsOnLoaderError(t *testing.T) {
	boom := errors.New("boom")
	failing := locale.NewQueryLoader(func(context.Context) ([]locale.Row, error) {
		return nil, boom
	})

	_, err := locale.New(context.Background(), []locale.Loader{failing})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestResolverEndToEnd(t *testing.T) {
	resolver, err := locale.New(context.Background(),
		[]locale.Loader{trTRLoader()},
		locale.WithSelector(staticSelector("tr_TR")),
	)
	require.NoError(t, err)

	ctx := context.Background()

	result, err := resolver.Translate(ctx, "Hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Merhaba", result)

	result, err = resolver.TranslateN(ctx, "%(name)s liked this", 1, locale.Args{"name": "Ali"})
	require.NoError(t, err)
	assert.Equal(t, "Ali bunu beğendi", result)

	result, err = resolver.TranslateN(ctx, "%(name)s liked this", 3, locale.Args{"name": "Ali"})
	require.NoError(t, err)
	assert.Equal(t, "Ali bunu beğendiler", result)

	// Zero referents select the plural form too.
	result, err = resolver.TranslateN(ctx, "%(name)s liked this", 0, locale.Args{"name": "Ali"})
	require.NoError(t, err)
	assert.Equal(t, "Ali bunu beğendiler", result)
}

func TestResolverFallsBackToKeyOnMiss(t *testing.T) {
	resolver, err := locale.New(context.Background(),
		[]locale.Loader{trTRLoader()},
		locale.WithSelector(staticSelector("tr_TR")),
	)
	require.NoError(t, err)

	result, err := resolver.Translate(context.Background(), "Untranslated %(name)s",
		locale.Args{"name": "Ali"})
	require.NoError(t, err)
	assert.Equal(t, "Untranslated Ali", result)
}

func TestResolverUnregisteredLocale(t *testing.T) {
	resolver, err := locale.New(context.Background(),
		[]locale.Loader{trTRLoader()},
		locale.WithSelector(staticSelector("fr_FR")),
	)
	require.NoError(t, err)

	// No fr_FR rows loaded: every call falls back to the literal key,
	// formatted with the supplied arguments.
	result, err := resolver.Translate(context.Background(), "Hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello", result)

	result, err = resolver.TranslateN(context.Background(), "%(name)s liked this", 2,
		locale.Args{"name": "Ali"})
	require.NoError(t, err)
	assert.Equal(t, "Ali liked this", result)
}

func TestResolverDefaultLocaleWithoutSelector(t *testing.T) {
	resolver, err := locale.New(context.Background(),
		[]locale.Loader{trTRLoader()},
		locale.WithDefaultLocale("tr_TR"),
	)
	require.NoError(t, err)

	result, err := resolver.Translate(context.Background(), "Hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Merhaba", result)
	assert.Equal(t, "tr_TR", resolver.DefaultLocale())
}

func TestResolverSelectorNoPreference(t *testing.T) {
	resolver, err := locale.New(context.Background(),
		[]locale.Loader{trTRLoader()},
		locale.WithDefaultLocale("tr_TR"),
		locale.WithSelector(staticSelector("")),
	)
	require.NoError(t, err)

	result, err := resolver.Translate(context.Background(), "Hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Merhaba", result)
}

func TestResolverSelectorPanicAbsorbed(t *testing.T) {
	resolver, err := locale.New(context.Background(),
		[]locale.Loader{trTRLoader()},
		locale.WithDefaultLocale("tr_TR"),
		locale.WithSelector(func(context.Context) string { panic("selector broke") }),
	)
	require.NoError(t, err)

	result, err := resolver.Translate(context.Background(), "Hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Merhaba", result)
}

func TestResolverFormatErrorSurfaced(t *testing.T) {
	resolver, err := locale.New(context.Background(),
		[]locale.Loader{trTRLoader()},
		locale.WithSelector(staticSelector("tr_TR")),
	)
	require.NoError(t, err)

	_, err = resolver.TranslateN(context.Background(), "%(name)s liked this", 1, nil)
	require.Error(t, err)

	var formatErr *locale.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, []string{"name"}, formatErr.Missing)
}

func TestResolverLaterLoaderWins(t *testing.T) {
	first := &locale.MapLoader{Rows: []locale.Row{
		{Locale: "tr_TR", Source: "Hello", Translation: "from first"},
		{Locale: "tr_TR", Source: "Only first", Translation: "kept"},
	}}
	second := &locale.MapLoader{Rows: []locale.Row{
		{Locale: "tr_TR", Source: "Hello", Translation: "from second"},
	}}

	resolver, err := locale.New(context.Background(),
		[]locale.Loader{first, second},
		locale.WithSelector(staticSelector("tr_TR")),
	)
	require.NoError(t, err)

	result, err := resolver.Translate(context.Background(), "Hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "from second", result)

	// Non-conflicting rows from earlier loaders survive.
	result, err = resolver.Translate(context.Background(), "Only first", nil)
	require.NoError(t, err)
	assert.Equal(t, "kept", result)
}

func TestResolverQueryLoader(t *testing.T) {
	calls := 0
	loader := locale.NewQueryLoader(func(context.Context) ([]locale.Row, error) {
		calls++
		return []locale.Row{
			{Locale: "tr_TR", Source: "Hello", Translation: fmt.Sprintf("Merhaba v%d", calls)},
		}, nil
	})

	resolver, err := locale.New(context.Background(),
		[]locale.Loader{loader},
		locale.WithSelector(staticSelector("tr_TR")),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	require.NoError(t, resolver.Reload(context.Background()))
	assert.Equal(t, 2, calls)

	result, err := resolver.Translate(context.Background(), "Hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Merhaba v2", result)
}

func TestReloadFailureKeepsPreviousGeneration(t *testing.T) {
	fail := false
	loader := locale.NewQueryLoader(func(context.Context) ([]locale.Row, error) {
		if fail {
			return nil, errors.New("source unavailable")
		}
		return []locale.Row{
			{Locale: "tr_TR", Source: "Hello", Translation: "Merhaba"},
		}, nil
	})

	resolver, err := locale.New(context.Background(),
		[]locale.Loader{loader},
		locale.WithSelector(staticSelector("tr_TR")),
	)
	require.NoError(t, err)

	fail = true
	require.Error(t, resolver.Reload(context.Background()))

	// The previous generation stays fully active.
	result, err := resolver.Translate(context.Background(), "Hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Merhaba", result)
}

func TestReloadDiscardsDroppedKeys(t *testing.T) {
	rows := []locale.Row{
		{Locale: "tr_TR", Source: "Hello", Translation: "Merhaba"},
		{Locale: "tr_TR", Source: "Goodbye", Translation: "Hoşça kal"},
	}
	loader := locale.NewQueryLoader(func(context.Context) ([]locale.Row, error) {
		return rows, nil
	})

	resolver, err := locale.New(context.Background(),
		[]locale.Loader{loader},
		locale.WithSelector(staticSelector("tr_TR")),
	)
	require.NoError(t, err)

	// Drop a key from the source; a reload must not keep stale data around.
	rows = rows[:1]
	require.NoError(t, resolver.Reload(context.Background()))

	assert.False(t, resolver.HasTranslation("tr_TR", "Goodbye"))
	result, err := resolver.Translate(context.Background(), "Goodbye", nil)
	require.NoError(t, err)
	assert.Equal(t, "Goodbye", result)
}

func TestReloadAtomicUnderConcurrentReads(t *testing.T) {
	generation := 0
	loader := locale.NewQueryLoader(func(context.Context) ([]locale.Row, error) {
		generation++
		return []locale.Row{
			{Locale: "tr_TR", Source: "Hello", Translation: fmt.Sprintf("gen-%d", generation)},
			{Locale: "tr_TR", Source: "Stable", Translation: "always here"},
		}, nil
	})

	resolver, err := locale.New(context.Background(),
		[]locale.Loader{loader},
		locale.WithSelector(staticSelector("tr_TR")),
	)
	require.NoError(t, err)

	const readers = 8
	const reads = 200
	var wg sync.WaitGroup
	errCh := make(chan error, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < reads; j++ {
				// A key present in every generation must never miss,
				// whichever snapshot the read lands on.
				got, err := resolver.Translate(context.Background(), "Stable", nil)
				if err != nil || got != "always here" {
					errCh <- fmt.Errorf("read observed %q, %v", got, err)
					return
				}
			}
		}()
	}

	for i := 0; i < 20; i++ {
		require.NoError(t, resolver.Reload(context.Background()))
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Error(err)
	}

	// After the dust settles the latest generation is visible.
	got, err := resolver.Translate(context.Background(), "Hello", nil)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("gen-%d", generation), got)
}

func TestResolverSupportedLocales(t *testing.T) {
	resolver, err := locale.New(context.Background(), []locale.Loader{
		&locale.MapLoader{Rows: []locale.Row{
			{Locale: "tr_TR", Source: "a", Translation: "b"},
			{Locale: "en_US", Source: "a", Translation: "c"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"en_US", "tr_TR"}, resolver.SupportedLocales())
	assert.True(t, resolver.HasTranslation("tr_TR", "a"))
	assert.False(t, resolver.HasTranslation("tr_TR", "missing"))
}

func TestNewFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeTranslationFile(t, dir, "tr_TR.csv", "\"Hello\",\"Merhaba\"\n")

	resolver, err := locale.NewFromConfig(context.Background(), locale.Config{
		DefaultLocale: "tr_TR",
		Path:          dir,
	})
	require.NoError(t, err)

	result, err := resolver.Translate(context.Background(), "Hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Merhaba", result)
}
