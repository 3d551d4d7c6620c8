package coderunner

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// runSQLSuite judges a SQL submission in process. Each test gets a fresh
// in-memory database: the test input runs as a setup script, then the
// connection is flipped to query_only so the submission cannot mutate
// anything, and the submission's result set is serialized one row per
// line with pipe-separated columns.
func (r *Runner) runSQLSuite(ctx context.Context, source string, tests []TestCase) (*Result, error) {
	var log strings.Builder
	for i, tc := range tests {
		outcome, err := r.runSQLTest(ctx, source, tc)
		if err != nil {
			return nil, err
		}
		if failed := r.judge(&log, i+1, tc, outcome); failed {
			return &Result{Log: log.String()}, nil
		}
	}
	return &Result{PassedAll: true, Log: log.String()}, nil
}

func (r *Runner) runSQLTest(ctx context.Context, source string, tc TestCase) (testOutcome, error) {
	if err := ctx.Err(); err != nil {
		return testOutcome{}, err
	}

	tctx, cancel := context.WithTimeout(ctx, r.cfg.TestTimeout)
	defer cancel()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return testOutcome{}, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	defer db.Close()
	// One connection only: each sqlite :memory: handle is its own database,
	// so the setup script and the submission must share a connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(tctx, tc.Input); err != nil {
		return testOutcome{failure: "setup script failed: " + err.Error()}, nil
	}
	if _, err := db.ExecContext(tctx, "PRAGMA query_only = ON"); err != nil {
		return testOutcome{}, fmt.Errorf("failed to lock database read-only: %w", err)
	}

	rows, err := db.QueryContext(tctx, source)
	if err != nil {
		return testOutcome{failure: err.Error()}, nil
	}
	defer rows.Close()

	serialized, err := serializeRows(rows)
	if err != nil {
		return testOutcome{failure: err.Error()}, nil
	}
	return testOutcome{got: strings.TrimSpace(serialized)}, nil
}

func serializeRows(rows *sql.Rows) (string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return "", err
	}

	var out strings.Builder
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return "", err
		}
		fields := make([]string, len(values))
		for i, v := range values {
			fields[i] = formatSQLValue(v)
		}
		out.WriteString(strings.Join(fields, "|"))
		out.WriteString("\n")
	}
	return out.String(), rows.Err()
}

func formatSQLValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		if val {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprintf("%v", val)
	}
}
