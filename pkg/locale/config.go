package locale

// Config describes the environment-driven settings for a directory-backed
// resolver. Parse it with the config package and hand it to NewFromConfig.
type Config struct {
	DefaultLocale string `env:"LOCALE_DEFAULT" envDefault:"en_US"`     // DefaultLocale is used when no selector preference applies.
	Path          string `env:"LOCALE_PATH" envDefault:"translations"` // Path is the directory holding per-locale CSV files.
}
