package coderunner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/pkg/config"
)

func newSQLRunner(t *testing.T) *Runner {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	cfg.AllowUnsandboxed = true
	return NewRunner(cfg)
}

func TestSQLSubmissionPasses(t *testing.T) {
	r := newSQLRunner(t)

	setup := `CREATE TABLE people (name TEXT, age INTEGER);
INSERT INTO people VALUES ('alice', 30);
INSERT INTO people VALUES ('bob', 25);`

	res, err := r.Run(context.Background(), "sql",
		"SELECT name, age FROM people ORDER BY age DESC",
		[]TestCase{{Input: setup, Expected: "alice|30\nbob|25", Ordinal: 1}})
	require.NoError(t, err)
	assert.True(t, res.PassedAll)
	assert.Contains(t, res.Log, "Test 1: PASSED")
}

func TestSQLEachTestGetsFreshDatabase(t *testing.T) {
	r := newSQLRunner(t)

	res, err := r.Run(context.Background(), "sql",
		"SELECT COUNT(*) FROM people",
		[]TestCase{
			{
				Input:    "CREATE TABLE people (name TEXT); INSERT INTO people VALUES ('alice'); INSERT INTO people VALUES ('bob');",
				Expected: "2",
				Ordinal:  1,
			},
			{
				Input:    "CREATE TABLE people (name TEXT);",
				Expected: "0",
				Ordinal:  2,
			},
		})
	require.NoError(t, err)
	assert.True(t, res.PassedAll, "rows inserted by the first test must not leak into the second:\n%s", res.Log)
}

func TestSQLSubmissionCannotWrite(t *testing.T) {
	r := newSQLRunner(t)

	res, err := r.Run(context.Background(), "sql",
		"INSERT INTO audit VALUES ('tampered')",
		[]TestCase{{Input: "CREATE TABLE audit (entry TEXT);", Expected: "", Ordinal: 1}})
	require.NoError(t, err)
	assert.False(t, res.PassedAll)
	assert.Contains(t, res.Log, "Test 1: FAILED")
	assert.Contains(t, res.Log, "readonly")
}

func TestSQLNullAndNumericFormatting(t *testing.T) {
	r := newSQLRunner(t)

	res, err := r.Run(context.Background(), "sql",
		"SELECT label, score FROM results ORDER BY id",
		[]TestCase{{
			Input: `CREATE TABLE results (id INTEGER, label TEXT, score REAL);
INSERT INTO results VALUES (1, 'exact', 3.5);
INSERT INTO results VALUES (2, NULL, 2);`,
			Expected: "exact|3.5\nNULL|2",
			Ordinal:  1,
		}})
	require.NoError(t, err)
	assert.True(t, res.PassedAll, res.Log)
}

func TestSQLBrokenSetupFailsTheTest(t *testing.T) {
	r := newSQLRunner(t)

	res, err := r.Run(context.Background(), "sql",
		"SELECT 1",
		[]TestCase{{Input: "CREATE TABL oops (x)", Expected: "1", Ordinal: 1}})
	require.NoError(t, err)
	assert.False(t, res.PassedAll)
	assert.Contains(t, res.Log, "setup script failed")
}

func TestSQLInvalidQueryStopsSuite(t *testing.T) {
	r := newSQLRunner(t)

	res, err := r.Run(context.Background(), "sql",
		"SELECT missing_column FROM t",
		[]TestCase{
			{Input: "CREATE TABLE t (x INTEGER);", Expected: "", Ordinal: 1},
			{Input: "CREATE TABLE t (x INTEGER);", Expected: "", Ordinal: 2},
		})
	require.NoError(t, err)
	assert.False(t, res.PassedAll)
	assert.Contains(t, res.Log, "Test 1: FAILED")
	assert.NotContains(t, res.Log, "Test 2")
}

func TestSQLCanceledContextIsNotJudged(t *testing.T) {
	r := newSQLRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := r.Run(ctx, "sql", "SELECT 1", []TestCase{{Input: "SELECT 0", Expected: "1"}})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}
