package pgloader

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

// Querier is the minimal query surface this package needs. Both *pgxpool.Pool
// and *pgx.Conn implement it, and tests can substitute their own.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Rows returns a locale.RowsFunc that executes the given query and scans each
// result row as (locale, source, translation, plural). The plural column may
// be NULL, which maps to the unspecified plurality. The returned func runs
// the query on every invocation, so resolver reloads observe current table
// contents; connection lifecycle stays with the caller-owned Querier.
//
// Typical query:
//
//	SELECT locale, source, translation, plural FROM translations
func Rows(q Querier, query string, args ...any) locale.RowsFunc {
	return func(ctx context.Context) ([]locale.Row, error) {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		defer rows.Close()

		var out []locale.Row
		for rows.Next() {
			var (
				row    locale.Row
				plural *string
			)
			if err := rows.Scan(&row.Locale, &row.Source, &row.Translation, &plural); err != nil {
				return nil, errors.Join(ErrScanFailed, err)
			}
			if plural != nil {
				row.Plural = *plural
			}
			out = append(out, row)
		}
		if err := rows.Err(); err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		return out, nil
	}
}

// NewLoader is a convenience wrapper bundling Rows into a ready-to-register
// query loader.
func NewLoader(q Querier, query string, args ...any) *locale.QueryLoader {
	return locale.NewQueryLoader(Rows(q, query, args...))
}
