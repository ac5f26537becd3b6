package postgres

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Execer is the part of *pgxpool.Pool the client uses
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Client inserts rows directly into PostgreSQL tables
type Client struct {
	db  Execer
	log *zap.Logger
}

// NewClient creates a new Client over db
func NewClient(db Execer, log *zap.Logger) *Client {
	return &Client{db: db, log: log}
}

// Insert writes record as one row of table
func (c *Client) Insert(ctx context.Context, table string, record map[string]any) error {
	query, args, err := insertQuery(table, record)
	if err != nil {
		return err
	}

	tag, err := c.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	c.log.Debug("Inserted row", zap.String("table", table), zap.Int64("rows", tag.RowsAffected()))
	return nil
}

// insertQuery builds a parameterized INSERT. Columns are sorted so the
// statement text is stable for a given set of keys.
func insertQuery(table string, record map[string]any) (string, []any, error) {
	if len(record) == 0 {
		return "", nil, fmt.Errorf("no columns to insert into %s", table)
	}

	columns := make([]string, 0, len(record))
	for col := range record {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		quoted[i] = pgx.Identifier{col}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = record[col]
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		pgx.Identifier{table}.Sanitize(),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)
	return query, args, nil
}
