package locale

// Plurality classifies a stored translation variant. A source string may carry
// a different translation for its singular and plural readings; rows that do
// not care about grammatical number are stored as Unknown, which also serves
// as the fallback form when a specific one is absent.
type Plurality int

const (
	Unknown Plurality = iota
	Singular
	Plural
)

// String returns the row label for the plurality.
func (p Plurality) String() string {
	switch p {
	case Singular:
		return "singular"
	case Plural:
		return "plural"
	default:
		return "unknown"
	}
}

// ParsePlurality maps a raw row label to a Plurality. Labels are
// case-sensitive: exactly "plural" and "singular" are recognized, anything
// else (including the empty string) is Unknown.
func ParsePlurality(label string) Plurality {
	switch label {
	case "plural":
		return Plural
	case "singular":
		return Singular
	default:
		return Unknown
	}
}

// pluralityForCount maps a referent count to the plural form to look up.
// Exactly one referent is singular, everything else (zero and negative
// included) is plural.
func pluralityForCount(n int) Plurality {
	if n == 1 {
		return Singular
	}
	return Plural
}
