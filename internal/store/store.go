package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/desertthunder/wlx/internal/shared"
)

// Record is one table row. Column values are normalized on the way out:
// []byte becomes string, integral columns arrive as int64, NULL as nil.
type Record map[string]any

// Store defines the persistence contract consumed by the entity repositories.
type Store interface {
	// Insert adds a row with a store-assigned key in the named key column
	// and returns the stored record.
	Insert(ctx context.Context, table, key string, fields Record) (Record, error)

	// Select returns all rows matching the equality filters (AND-combined).
	// An empty filter map returns every row.
	Select(ctx context.Context, table string, filters Record) ([]Record, error)

	// SelectLike returns rows where field contains pattern, case-insensitively.
	SelectLike(ctx context.Context, table, field, pattern string) ([]Record, error)

	// SelectAnyLike returns rows where any of the fields contains pattern,
	// case-insensitively.
	SelectAnyLike(ctx context.Context, table string, fields []string, pattern string) ([]Record, error)

	// Update sets the given fields on the row whose key column equals id and
	// returns the updated record. Returns [shared.ErrNotFound] when no row matched.
	Update(ctx context.Context, table, key, id string, fields Record) (Record, error)

	// Delete removes the row whose key column equals id.
	// Returns [shared.ErrNotFound] when no row matched.
	Delete(ctx context.Context, table, key, id string) error

	// UserWatchlistByGenre is the one joined query: watchlist rows for a user
	// whose referenced title's genre contains the given text, each joined with
	// the title name and type.
	UserWatchlistByGenre(ctx context.Context, userID, genre string) ([]Record, error)
}

// SQLStore implements [Store] over a *sql.DB for sqlite3 or postgres.
type SQLStore struct {
	db     *sql.DB
	driver string
}

var _ Store = (*SQLStore)(nil)

// NewSQLStore creates a SQLStore for the given connection and driver name.
func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

// DB exposes the underlying connection for migrations and teardown.
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

// rebind rewrites ? placeholders into $n form for postgres.
func (s *SQLStore) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (s *SQLStore) Insert(ctx context.Context, table, key string, fields Record) (Record, error) {
	id := shared.GenerateID()

	cols := []string{key}
	args := []any{id}
	for _, col := range sortedColumns(fields) {
		cols = append(cols, col)
		args = append(args, fields[col])
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), placeholders,
	)

	if _, err := s.db.ExecContext(ctx, s.rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	return s.one(ctx, table, key, id)
}

func (s *SQLStore) Select(ctx context.Context, table string, filters Record) ([]Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s", table)

	var args []any
	if len(filters) > 0 {
		var clauses []string
		for _, col := range sortedColumns(filters) {
			clauses = append(clauses, col+" = ?")
			args = append(args, filters[col])
		}
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	return s.query(ctx, table, query, args...)
}

func (s *SQLStore) SelectLike(ctx context.Context, table, field, pattern string) ([]Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE LOWER(%s) LIKE LOWER(?)", table, field)
	return s.query(ctx, table, query, contains(pattern))
}

func (s *SQLStore) SelectAnyLike(ctx context.Context, table string, fields []string, pattern string) ([]Record, error) {
	var clauses []string
	var args []any
	for _, field := range fields {
		clauses = append(clauses, fmt.Sprintf("LOWER(%s) LIKE LOWER(?)", field))
		args = append(args, contains(pattern))
	}

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s", table, strings.Join(clauses, " OR "))
	return s.query(ctx, table, query, args...)
}

func (s *SQLStore) Update(ctx context.Context, table, key, id string, fields Record) (Record, error) {
	var sets []string
	var args []any
	for _, col := range sortedColumns(fields) {
		sets = append(sets, col+" = ?")
		args = append(args, fields[col])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", table, strings.Join(sets, ", "), key)

	result, err := s.db.ExecContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", table, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: %s %s", shared.ErrNotFound, table, id)
	}

	return s.one(ctx, table, key, id)
}

func (s *SQLStore) Delete(ctx context.Context, table, key, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, key)

	result, err := s.db.ExecContext(ctx, s.rebind(query), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s %s", shared.ErrNotFound, table, id)
	}

	return nil
}

func (s *SQLStore) UserWatchlistByGenre(ctx context.Context, userID, genre string) ([]Record, error) {
	query := `
		SELECT w.watchlist_id, w.user_id, w.movie_id, w.status, w.rating, w.review,
		       w.created_at, w.updated_at, m.title, m.type, m.genre
		FROM userwatchlist w
		JOIN movies_shows m ON m.movie_id = w.movie_id
		WHERE w.user_id = ? AND LOWER(m.genre) LIKE LOWER(?)
	`
	return s.query(ctx, "userwatchlist", query, userID, contains(genre))
}

// one fetches a single row by key and fails with [shared.ErrNotFound] when absent.
func (s *SQLStore) one(ctx context.Context, table, key, id string) (Record, error) {
	records, err := s.Select(ctx, table, Record{key: id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s %s", shared.ErrNotFound, table, id)
	}
	return records[0], nil
}

// query runs a SELECT and scans every row into a [Record].
func (s *SQLStore) query(ctx context.Context, table, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns for %s: %w", table, err)
	}

	var records []Record
	for rows.Next() {
		values := make([]any, len(columns))
		scans := make([]any, len(columns))
		for i := range values {
			scans[i] = &values[i]
		}

		if err := rows.Scan(scans...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}

		record := make(Record, len(columns))
		for i, col := range columns {
			record[col] = normalize(values[i])
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}

// normalize converts driver-specific scan results into Record values.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// sortedColumns returns the record's columns in stable order so generated
// SQL is deterministic.
func sortedColumns(r Record) []string {
	cols := make([]string, 0, len(r))
	for col := range r {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

func contains(pattern string) string {
	return "%" + pattern + "%"
}
