package locale

import (
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header parsing. RFC 7231 sets no limit, but
// 4KB is generous for legitimate headers and bounds work on hostile ones.
const maxAcceptLanguageLength = 4096

// acceptedLocale is a language tag with its quality value.
type acceptedLocale struct {
	code string
	q    float64
}

// parseAcceptLanguage parses an Accept-Language header into codes sorted by
// descending quality. Malformed quality values fall back to 1.0.
func parseAcceptLanguage(header string) []acceptedLocale {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var accepted []acceptedLocale
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		codeAndQ := strings.Split(part, ";")
		code := strings.TrimSpace(codeAndQ[0])
		q := 1.0
		if len(codeAndQ) > 1 {
			qPart := strings.TrimSpace(codeAndQ[1])
			if strings.HasPrefix(qPart, "q=") {
				if v, err := strconv.ParseFloat(qPart[2:], 64); err == nil && v >= 0 && v <= 1 {
					q = v
				}
			}
		}
		if code != "" {
			accepted = append(accepted, acceptedLocale{code: code, q: q})
		}
	}

	slices.SortStableFunc(accepted, func(a, b acceptedLocale) int {
		switch {
		case a.q > b.q:
			return -1
		case a.q < b.q:
			return 1
		default:
			return 0
		}
	})
	return accepted
}

// ClosestLocale returns the best match among supported for the candidate
// codes, in candidate order. Candidates are normalized from BCP 47 dashes to
// underscore form (tr-TR → tr_TR). Each candidate is tried for an exact
// match first, then for a base-language match ("tr" matches "tr_TR"), before
// moving to the next candidate. Returns the empty string when nothing
// matches.
func ClosestLocale(supported []string, codes ...string) string {
	for _, code := range codes {
		if code == "" {
			continue
		}
		code = strings.ReplaceAll(code, "-", "_")
		if slices.Contains(supported, code) {
			return code
		}

		base := strings.ToLower(strings.SplitN(code, "_", 2)[0])
		for _, s := range supported {
			if strings.HasPrefix(s, base+"_") {
				return s
			}
		}
	}
	return ""
}

// MatchAcceptLanguage negotiates an Accept-Language header against the
// supported locale codes, honoring quality ordering, and returns fallback
// when no candidate matches.
func MatchAcceptLanguage(header string, supported []string, fallback string) string {
	accepted := parseAcceptLanguage(header)
	if len(accepted) == 0 {
		return fallback
	}
	codes := make([]string, len(accepted))
	for i, a := range accepted {
		codes[i] = a.code
	}
	if match := ClosestLocale(supported, codes...); match != "" {
		return match
	}
	return fallback
}
