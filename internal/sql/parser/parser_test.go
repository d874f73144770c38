package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestParseInsert(t *testing.T) {
	stmt, err := Parse("insert 1 alice alice@example.com")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ins, ok := stmt.(*InsertStatement)
	if !ok {
		t.Fatalf("expected *InsertStatement, got %T", stmt)
	}

	if ins.Row.ID != 1 {
		t.Errorf("expected id 1, got %d", ins.Row.ID)
	}
	if ins.Row.Username != "alice" {
		t.Errorf("expected username alice, got %q", ins.Row.Username)
	}
	if ins.Row.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %q", ins.Row.Email)
	}
}

func TestParseSelect(t *testing.T) {
	stmt, err := Parse("select")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := stmt.(*SelectStatement); !ok {
		t.Fatalf("expected *SelectStatement, got %T", stmt)
	}
}

func TestParseKeywordCaseInsensitive(t *testing.T) {
	if _, err := Parse("SELECT"); err != nil {
		t.Errorf("uppercase select should parse: %v", err)
	}
	if _, err := Parse("INSERT 1 a b"); err != nil {
		t.Errorf("uppercase insert should parse: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", ErrSyntax},
		{"whitespace only", "   ", ErrSyntax},
		{"unknown keyword", "delete 1", ErrUnrecognized},
		{"insert too few args", "insert 1 alice", ErrSyntax},
		{"insert too many args", "insert 1 alice a@b.c extra", ErrSyntax},
		{"insert non-numeric id", "insert abc alice a@b.c", ErrSyntax},
		{"insert negative id", "insert -1 alice a@b.c", ErrSyntax},
		{"insert id overflow", "insert 4294967296 alice a@b.c", ErrSyntax},
		{"select with args", "select *", ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q): expected %v, got %v", tt.input, tt.want, err)
			}
		})
	}
}

func TestParseDoesNotEnforceFieldWidths(t *testing.T) {
	// Width validation belongs to the execution engine, which guards every
	// insert path. The parser accepts oversized text as-is.
	long := strings.Repeat("a", 100)
	stmt, err := Parse("insert 1 " + long + " a@b.c")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if stmt.(*InsertStatement).Row.Username != long {
		t.Error("parser must pass the username through untouched")
	}
}
