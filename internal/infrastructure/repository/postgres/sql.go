package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/paddle-roster/internal/platform/querybuilder"
)

// insertChunkSize keeps multi-row inserts well under the 65535 bind parameter limit.
const insertChunkSize = 500

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertChunked(ctx context.Context, exec execer, table string, models []any, suffix string) error {
	for start := 0; start < len(models); start += insertChunkSize {
		end := min(start+insertChunkSize, len(models))
		query, args, err := qb.InsertModels(table, models[start:end], suffix)
		if err != nil {
			return fmt.Errorf("build insert %s query: %w", table, err)
		}
		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s rows %d-%d: %w", table, start, end, err)
		}
	}
	return nil
}

// replaceAll swaps the full contents of table inside one transaction, so readers
// see either the previous rows or the new ones.
func replaceAll(ctx context.Context, db *sqlx.DB, table string, models []any) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace %s: %w", table, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.DeleteFrom(table).ToSQL()
	if err != nil {
		return fmt.Errorf("build clear %s query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	if err := insertChunked(ctx, tx, table, models, ""); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace %s tx: %w", table, err)
	}
	return nil
}

func mustColumns(model any) []string {
	cols, err := qb.Columns(model)
	if err != nil {
		panic(fmt.Sprintf("postgres: table model columns: %v", err))
	}
	return cols
}

func encodeJSON(value any) (string, error) {
	encoded, err := sonic.MarshalString(value)
	if err != nil {
		return "", fmt.Errorf("encode json column: %w", err)
	}
	return encoded, nil
}

func decodeJSON(raw string, out any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}
	if err := sonic.UnmarshalString(raw, out); err != nil {
		return fmt.Errorf("decode json column: %w", err)
	}
	return nil
}

func nullableFloat(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *value, Valid: true}
}

func floatPtr(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	out := value.Float64
	return &out
}

func stringArray(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
