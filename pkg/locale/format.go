package locale

import (
	"fmt"
	"regexp"
)

// Args carries named substitution values for %(name)s placeholders.
// Values are rendered with fmt.Sprint.
type Args map[string]any

// Matches Python-style named placeholders in the form %(name)s.
var placeholderRegex = regexp.MustCompile(`%\(([^)]+)\)s`)

// Format substitutes every %(name)s placeholder in tmpl with the matching
// argument. Arguments without a placeholder are ignored; a placeholder
// without an argument raises a *FormatError. The returned string always holds
// the best-effort substitution, with unmatched placeholders left in place, so
// callers that must not fail can use it alongside the error.
func Format(tmpl string, args Args) (string, error) {
	var missing []string
	result := placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-2]
		if val, ok := args[name]; ok {
			return fmt.Sprint(val)
		}
		missing = append(missing, name)
		return match
	})
	if len(missing) > 0 {
		return result, &FormatError{Template: tmpl, Missing: missing}
	}
	return result, nil
}
