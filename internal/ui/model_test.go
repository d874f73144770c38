package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabewaldrop/tinytable/internal/engine"
	"github.com/cabewaldrop/tinytable/internal/sql/parser"
)

func TestExecuteStatementProducesResult(t *testing.T) {
	exec := engine.New()
	t.Cleanup(exec.Close)
	m := NewModel(exec)

	msg := m.executeStatement("insert 1 alice alice@example.com")()
	res, ok := msg.(resultMsg)
	require.True(t, ok)
	require.NoError(t, res.err)
	assert.Equal(t, "Executed.", res.output)

	msg = m.executeStatement("select")()
	res = msg.(resultMsg)
	require.NoError(t, res.err)
	assert.Contains(t, res.output, "alice@example.com")
}

func TestExecuteStatementReportsParseError(t *testing.T) {
	exec := engine.New()
	t.Cleanup(exec.Close)
	m := NewModel(exec)

	msg := m.executeStatement("drop everything")()
	res := msg.(resultMsg)
	assert.ErrorIs(t, res.err, parser.ErrUnrecognized)
}

func TestUpdateRecordsHistoryOnSuccess(t *testing.T) {
	exec := engine.New()
	t.Cleanup(exec.Close)
	m := NewModel(exec)

	next, _ := m.Update(resultMsg{statement: "select", output: "(no rows)"})
	updated := next.(Model)

	assert.Len(t, updated.history, 1)
	assert.Equal(t, "(no rows)", updated.output)
	assert.NoError(t, updated.lastErr)
}
