// Package warehouse writes the pipeline's output tables to Postgres with
// idempotent full-replace semantics: every run overwrites the prior contents
// of each target table.
package warehouse

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JonnyWalker81/healthsync/internal/logger"
)

// ColumnType is the warehouse-facing type of one output column.
type ColumnType string

const (
	TypeDate    ColumnType = "DATE"
	TypeString  ColumnType = "STRING"
	TypeInteger ColumnType = "INTEGER"
	TypeFloat   ColumnType = "FLOAT"
)

// Column is one column of an output table schema.
type Column struct {
	Name string
	Type ColumnType
}

// Table is a fully materialized output table: target name, fixed column
// schema and rows in schema order.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// Writer uploads tables over a pgx connection pool.
type Writer struct {
	pool *pgxpool.Pool
	log  logger.Logger
}

// NewWriter connects to the warehouse at url.
func NewWriter(ctx context.Context, url string, log logger.Logger) (*Writer, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connecting to warehouse: %w", err)
	}
	return &Writer{pool: pool, log: log}, nil
}

// Close releases the connection pool.
func (w *Writer) Close() {
	w.pool.Close()
}

// Replace overwrites the target table with the given rows in a single
// transaction: the table is created when absent, truncated, and bulk-loaded.
func (w *Writer) Replace(ctx context.Context, table Table) error {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning upload transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, createStatement(table)); err != nil {
		return fmt.Errorf("ensuring table %s: %w", table.Name, err)
	}
	if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+pgx.Identifier{table.Name}.Sanitize()); err != nil {
		return fmt.Errorf("truncating table %s: %w", table.Name, err)
	}

	columnNames := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		columnNames[i] = c.Name
	}
	copied, err := tx.CopyFrom(ctx, pgx.Identifier{table.Name}, columnNames, pgx.CopyFromRows(table.Rows))
	if err != nil {
		return fmt.Errorf("loading table %s: %w", table.Name, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing upload of %s: %w", table.Name, err)
	}

	w.log.Info("replaced warehouse table",
		logger.String("table", table.Name),
		logger.Int64("rows", copied))
	return nil
}

func createStatement(table Table) string {
	defs := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		defs[i] = pgx.Identifier{c.Name}.Sanitize() + " " + sqlType(c.Type)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		pgx.Identifier{table.Name}.Sanitize(), strings.Join(defs, ", "))
}

func sqlType(t ColumnType) string {
	switch t {
	case TypeDate:
		return "date"
	case TypeInteger:
		return "bigint"
	case TypeFloat:
		return "double precision"
	default:
		return "text"
	}
}
