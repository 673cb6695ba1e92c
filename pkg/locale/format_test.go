package locale_test

import (
	"testing"

	"github.com/dmitrymomot/localekit/pkg/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	result, err := locale.Format("Hello %(name)s", locale.Args{"name": "Erkan"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Erkan", result)
}

func TestFormatMissingArgument(t *testing.T) {
	result, err := locale.Format("Hello %(name)s", nil)
	require.Error(t, err)

	var formatErr *locale.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, []string{"name"}, formatErr.Missing)
	assert.Equal(t, "Hello %(name)s", formatErr.Template)

	// The best-effort result keeps the unmatched placeholder in place.
	assert.Equal(t, "Hello %(name)s", result)
}

func TestFormatExtraArgumentsIgnored(t *testing.T) {
	result, err := locale.Format("Hello %(name)s", locale.Args{
		"name":   "Ali",
		"unused": "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ali", result)
}

func TestFormatMultiplePlaceholders(t *testing.T) {
	result, err := locale.Format("%(greeting)s, %(name)s! %(greeting)s!", locale.Args{
		"greeting": "Merhaba",
		"name":     "Ayşe",
	})
	require.NoError(t, err)
	assert.Equal(t, "Merhaba, Ayşe! Merhaba!", result)
}

func TestFormatNonStringValues(t *testing.T) {
	result, err := locale.Format("%(count)s items", locale.Args{"count": 42})
	require.NoError(t, err)
	assert.Equal(t, "42 items", result)
}

func TestFormatNoPlaceholders(t *testing.T) {
	result, err := locale.Format("plain text", locale.Args{"name": "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "plain text", result)
}

func TestFormatPartialSubstitutionOnError(t *testing.T) {
	result, err := locale.Format("%(a)s and %(b)s", locale.Args{"a": "one"})
	require.Error(t, err)
	assert.Equal(t, "one and %(b)s", result)
}
