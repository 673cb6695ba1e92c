package locale

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// DirLoader loads translations from a directory of per-locale CSV files.
// Each regular file's base name without extension is taken as the locale code
// (e.g. tr_TR.csv supplies locale "tr_TR"). The directory is rescanned on
// every Load call, so a reload picks up added, changed and removed files.
//
// Files are UTF-8 text in the comma-separated, double-quote-quoted CSV
// dialect with no padding around delimiters. Each row carries two or three
// fields: source string, translated string and an optional plurality label
// ("plural" or "singular"; absent or unrecognized labels mean the translation
// applies regardless of grammatical number). Example:
//
//	"I love you","Te amo"
//	"%(name)s liked this","A %(name)s les gustó esto","plural"
//	"%(name)s liked this","A %(name)s le gustó esto","singular"
//
// Any unreadable file, non-UTF-8 content or row outside the 2–3 field shape
// fails the whole load.
type DirLoader struct {
	path string
}

// NewDirLoader creates a DirLoader for the given directory path.
// Returns nil if path is empty.
func NewDirLoader(path string) *DirLoader {
	if path == "" {
		return nil
	}
	return &DirLoader{path: path}
}

// Load implements the Loader interface.
func (l *DirLoader) Load(ctx context.Context) ([]Row, error) {
	entries, err := os.ReadDir(l.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	var rows []Row
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadCancelled, err)
		}

		code := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		fileRows, err := l.loadFile(filepath.Join(l.path, entry.Name()), code)
		if err != nil {
			return nil, err
		}
		rows = append(rows, fileRows...)
	}
	return rows, nil
}

// loadFile parses one locale file into rows.
func (l *DirLoader) loadFile(path, code string) ([]Row, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}

	// FieldsPerRecord is validated by hand below so that 2- and 3-field rows
	// can coexist in one file.
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	var rows []Row
	for n := 1; ; n++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFailedToParseFile, path, err)
		}
		if len(record) < 2 || len(record) > 3 {
			return nil, fmt.Errorf("%w: %s row %d has %d fields",
				ErrMalformedRow, path, n, len(record))
		}

		row := Row{Locale: code, Source: record[0], Translation: record[1]}
		if len(record) == 3 {
			row.Plural = record[2]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
