package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/config"
)

// Executor runs SQL against the configured Postgres database. Callers state
// whether a statement produces rows by picking Query/Select/Get or Exec;
// nothing inspects statement text to guess. Connections come from the sqlx
// pool and every result set is closed before a method returns.
//
// Database errors are logged here with full detail and returned wrapped;
// handlers translate them into generic user-facing text.
type Executor struct {
	db *sqlx.DB
}

// ResultSet is a fully materialized query result. Columns preserves the
// statement's column order; Rows are in engine order, so callers that need
// a stable order must put ORDER BY in the statement.
type ResultSet struct {
	Columns []string
	Rows    []map[string]any
}

// Connect opens the pool and verifies the database is reachable.
func Connect(cfg config.Database) (*Executor, error) {
	conn, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		log.Printf("db: connection failed: %v", err)
		return nil, fmt.Errorf("db.Connect: %w", err)
	}
	return &Executor{db: conn}, nil
}

// NewExecutor wraps an existing connection, mainly for tests.
func NewExecutor(conn *sqlx.DB) *Executor {
	return &Executor{db: conn}
}

// Close releases the pool.
func (e *Executor) Close() error {
	return e.db.Close()
}

// Query runs a row-producing statement and materializes every row as a
// field→value map. An empty result is a non-nil ResultSet with no rows,
// distinct from the error return.
func (e *Executor) Query(ctx context.Context, stmt string, params ...Param) (*ResultSet, error) {
	rows, err := e.db.QueryxContext(ctx, stmt, bindValues(params)...)
	if err != nil {
		log.Printf("db: query failed: %v", err)
		return nil, fmt.Errorf("db.Query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		log.Printf("db: reading columns failed: %v", err)
		return nil, fmt.Errorf("db.Query: columns: %w", err)
	}

	rs := &ResultSet{Columns: cols, Rows: []map[string]any{}}
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			log.Printf("db: scanning row failed: %v", err)
			return nil, fmt.Errorf("db.Query: scan: %w", err)
		}
		// The driver hands text and numeric columns back as raw bytes;
		// normalize them so rows serialize as strings.
		for col, val := range row {
			if b, ok := val.([]byte); ok {
				row[col] = string(b)
			}
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		log.Printf("db: iterating rows failed: %v", err)
		return nil, fmt.Errorf("db.Query: rows: %w", err)
	}
	return rs, nil
}

// Select runs a row-producing statement and scans all rows into dest, a
// pointer to a slice of structs with db tags.
func (e *Executor) Select(ctx context.Context, dest any, stmt string, params ...Param) error {
	if err := e.db.SelectContext(ctx, dest, stmt, bindValues(params)...); err != nil {
		log.Printf("db: select failed: %v", err)
		return fmt.Errorf("db.Select: %w", err)
	}
	return nil
}

// Get runs a row-producing statement expected to return exactly one row and
// scans it into dest. sql.ErrNoRows propagates wrapped.
func (e *Executor) Get(ctx context.Context, dest any, stmt string, params ...Param) error {
	if err := e.db.GetContext(ctx, dest, stmt, bindValues(params)...); err != nil {
		log.Printf("db: get failed: %v", err)
		return fmt.Errorf("db.Get: %w", err)
	}
	return nil
}

// Exec runs a statement that produces no rows and reports rows affected.
func (e *Executor) Exec(ctx context.Context, stmt string, params ...Param) (int64, error) {
	res, err := e.db.ExecContext(ctx, stmt, bindValues(params)...)
	if err != nil {
		log.Printf("db: exec failed: %v", err)
		return 0, fmt.Errorf("db.Exec: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Printf("db: rows affected unavailable: %v", err)
		return 0, fmt.Errorf("db.Exec: rows affected: %w", err)
	}
	return affected, nil
}
