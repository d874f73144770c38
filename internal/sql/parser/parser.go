// Package parser converts command text into executable statements.
//
// EDUCATIONAL NOTES:
// ------------------
// The command language is the two-statement grammar of the classic
// "build your own sqlite" exercise:
//
//	insert <id> <username> <email>
//	select
//
// There is no lexer and no AST to speak of - whitespace-separated fields
// are all the structure the grammar has. The parser's one real job is to
// reject malformed input with a useful error before the engine sees it.
// Field width limits are not the parser's concern; the execution engine
// validates those so the check guards every insert path, not just this one.

package parser

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cabewaldrop/tinytable/internal/row"
)

// ErrSyntax is returned for a recognized statement with malformed arguments.
var ErrSyntax = errors.New("syntax error")

// ErrUnrecognized is returned when the input starts with an unknown keyword.
var ErrUnrecognized = errors.New("unrecognized statement")

// Statement is a parsed command ready for execution.
type Statement interface {
	statement()
}

// InsertStatement appends one row to the table.
type InsertStatement struct {
	Row row.Row
}

func (*InsertStatement) statement() {}

// SelectStatement scans every row in the table.
type SelectStatement struct{}

func (*SelectStatement) statement() {}

// Parse converts one line of input into a Statement.
func Parse(input string) (Statement, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, errors.Wrap(ErrSyntax, "empty statement")
	}

	switch strings.ToLower(fields[0]) {
	case "insert":
		return parseInsert(fields[1:])
	case "select":
		if len(fields) > 1 {
			return nil, errors.Wrap(ErrSyntax, "select takes no arguments")
		}
		return &SelectStatement{}, nil
	default:
		return nil, errors.Wrapf(ErrUnrecognized, "keyword %q", fields[0])
	}
}

// parseInsert parses the three insert arguments: id, username, email.
func parseInsert(args []string) (Statement, error) {
	if len(args) != 3 {
		return nil, errors.Wrapf(ErrSyntax, "insert expects 3 arguments, got %d", len(args))
	}

	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "id must be an unsigned integer, got %q", args[0])
	}

	return &InsertStatement{
		Row: row.Row{
			ID:       uint32(id),
			Username: args[1],
			Email:    args[2],
		},
	}, nil
}
