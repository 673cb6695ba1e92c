package locale

import "sort"

// entry holds the templates stored for one source string in one locale,
// indexed by Plurality.
type entry struct {
	forms [3]string
	set   [3]bool
}

// snapshot is one complete, immutable generation of loaded translations:
// locale code → source string → entry. A snapshot is never mutated after
// buildSnapshot returns; reloads build a fresh one and swap it in whole.
type snapshot struct {
	locales map[string]map[string]entry
}

// buildSnapshot folds a flat row slice into a snapshot. Rows are applied in
// slice order, so when two rows target the same (locale, source, plurality)
// the later one wins. Callers concatenate loader results in registration
// order before calling, which makes the winner deterministic.
func buildSnapshot(rows []Row) *snapshot {
	s := &snapshot{locales: make(map[string]map[string]entry)}
	for _, row := range rows {
		byKey := s.locales[row.Locale]
		if byKey == nil {
			byKey = make(map[string]entry)
			s.locales[row.Locale] = byKey
		}
		e := byKey[row.Source]
		p := ParsePlurality(row.Plural)
		e.forms[p] = row.Translation
		e.set[p] = true
		byKey[row.Source] = e
	}
	return s
}

// lookup returns the stored template for (locale, key, p). When the requested
// plurality is absent it falls back to the Unknown form of the same key.
// There is no fallback across locales; an unregistered locale misses every
// key.
func (s *snapshot) lookup(code, key string, p Plurality) (string, bool) {
	byKey, ok := s.locales[code]
	if !ok {
		return "", false
	}
	e, ok := byKey[key]
	if !ok {
		return "", false
	}
	if e.set[p] {
		return e.forms[p], true
	}
	if p != Unknown && e.set[Unknown] {
		return e.forms[Unknown], true
	}
	return "", false
}

// has reports whether any form is stored for (locale, key).
func (s *snapshot) has(code, key string) bool {
	byKey, ok := s.locales[code]
	if !ok {
		return false
	}
	_, ok = byKey[key]
	return ok
}

// localeCodes returns the sorted locale codes present in the snapshot.
func (s *snapshot) localeCodes() []string {
	codes := make([]string, 0, len(s.locales))
	for code := range s.locales {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
