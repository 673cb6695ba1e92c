package pgloader

import "errors"

var (
	// ErrFailedToParseConfig is returned when the connection string cannot be parsed.
	ErrFailedToParseConfig = errors.New("failed to parse database config")

	// ErrFailedToOpenConnection is returned when all connection attempts are exhausted.
	ErrFailedToOpenConnection = errors.New("failed to open database connection")

	// ErrQueryFailed is returned when the translation query cannot be executed or iterated.
	ErrQueryFailed = errors.New("translation query failed")

	// ErrScanFailed is returned when a result row does not match the expected
	// (locale, source, translation, plural) column shape.
	ErrScanFailed = errors.New("failed to scan translation row")
)
