package locale

import (
	"net/http"
	"strings"
)

// maxLocaleCodeLength bounds locale codes taken from untrusted request
// inputs. RFC 5646 recommends 35 characters as the longest plausible tag.
const maxLocaleCodeLength = 35

// Extractor determines the locale code for an HTTP request. An empty return
// means no preference could be detected.
type Extractor func(r *http.Request) string

// ExtractorConfig holds configuration for the default extractor chain.
type ExtractorConfig struct {
	CookieName       string
	QueryParamName   string
	SupportedLocales []string
}

// ExtractorOption configures the default extractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie checked for a locale preference.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter checked for a locale.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLocales restricts extraction to the given locale codes.
// Explicit cookie/query values outside the set are ignored, and
// Accept-Language candidates are matched against it with ClosestLocale.
func WithSupportedLocales(codes ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(codes) > 0 {
			c.SupportedLocales = codes
		}
	}
}

// DefaultExtractor builds an Extractor that checks sources in priority
// order: cookie, query parameter, then the Accept-Language header. The first
// usable locale code wins; otherwise the empty string is returned and the
// resolver's default locale applies.
func DefaultExtractor(opts ...ExtractorOption) Extractor {
	config := &ExtractorConfig{
		CookieName:     "locale",
		QueryParamName: "locale",
	}
	for _, opt := range opts {
		opt(config)
	}

	return func(r *http.Request) string {
		if config.CookieName != "" {
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				if code := config.validate(cookie.Value); code != "" {
					return code
				}
			}
		}

		if config.QueryParamName != "" {
			if code := config.validate(r.URL.Query().Get(config.QueryParamName)); code != "" {
				return code
			}
		}

		if header := r.Header.Get("Accept-Language"); header != "" {
			if len(config.SupportedLocales) > 0 {
				return MatchAcceptLanguage(header, config.SupportedLocales, "")
			}
			if accepted := parseAcceptLanguage(header); len(accepted) > 0 {
				return strings.ReplaceAll(accepted[0].code, "-", "_")
			}
		}
		return ""
	}
}

// validate normalizes an explicit locale value and checks it against the
// supported set when one is configured. Locale codes are otherwise opaque;
// only length is enforced.
func (c *ExtractorConfig) validate(value string) string {
	code := strings.TrimSpace(value)
	if code == "" || len(code) > maxLocaleCodeLength {
		return ""
	}
	code = strings.ReplaceAll(code, "-", "_")
	if len(c.SupportedLocales) > 0 {
		return ClosestLocale(c.SupportedLocales, code)
	}
	return code
}
