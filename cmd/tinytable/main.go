// Package main implements the CLI interface for tinytable.
//
// EDUCATIONAL NOTES:
// ------------------
// This is the entry point for the tinytable CLI. It provides:
// 1. A REPL (Read-Eval-Print Loop) for interactive statements
// 2. A richer terminal UI built on bubbletea (-tui)
// 3. An HTTP API server mode (-serve)
//
// The REPL pattern is common in interactive tools:
// - Read: Get input from user
// - Eval: Parse and execute the input
// - Print: Display the result
// - Loop: Repeat until user exits

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cabewaldrop/tinytable/internal/engine"
	"github.com/cabewaldrop/tinytable/internal/row"
	"github.com/cabewaldrop/tinytable/internal/sql/parser"
	"github.com/cabewaldrop/tinytable/internal/ui"
	"github.com/cabewaldrop/tinytable/internal/web"
)

const (
	version = "0.1.0"
	banner  = `tinytable %s - an in-memory fixed-schema row store
Type '.help' for usage hints or '.exit' to quit.
`
)

// dotCommands are special commands starting with '.', in the order
// .help lists them.
var dotCommands = []struct {
	name string
	desc string
}{
	{".help", "Show this help message"},
	{".exit", "Exit the program"},
	{".quit", "Exit the program (alias for .exit)"},
	{".schema", "Show the table schema"},
	{".stats", "Show row and page usage"},
	{".clear", "Clear the screen"},
}

// helpText renders the .help listing.
func helpText() string {
	var sb strings.Builder
	sb.WriteString("\nAvailable commands:\n")
	for _, cmd := range dotCommands {
		fmt.Fprintf(&sb, "  %-10s %s\n", cmd.name, cmd.desc)
	}
	sb.WriteString("\nStatements:\n")
	sb.WriteString("  insert <id> <username> <email>\n")
	sb.WriteString("  select\n")
	return sb.String()
}

func main() {
	serve := flag.Bool("serve", false, "Run the HTTP API server instead of the REPL")
	port := flag.Int("port", 8080, "Port for the HTTP API server")
	tui := flag.Bool("tui", false, "Run the terminal UI instead of the plain REPL")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tinytable version %s\n", version)
		return
	}

	exec := engine.New()
	defer exec.Close()

	switch {
	case *serve:
		if err := web.NewServer(*port, exec).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	case *tui:
		if err := ui.Run(exec); err != nil {
			fmt.Fprintf(os.Stderr, "UI error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf(banner, version)
		repl(exec)
	}
}

// repl implements the Read-Eval-Print Loop.
func repl(exec *engine.Executor) {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("db > ")

		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF: exit cleanly like .exit would
			fmt.Println()
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(line, exec); quit {
				return
			}
			continue
		}

		executeStatement(line, exec)
	}
}

// handleDotCommand processes special dot commands. Returns true to exit.
func handleDotCommand(cmd string, exec *engine.Executor) bool {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return false
	}

	switch parts[0] {
	case ".help":
		fmt.Println(helpText())

	case ".exit", ".quit":
		return true

	case ".schema":
		fmt.Println("table rows (")
		fmt.Printf("  id       uint32,\n")
		fmt.Printf("  username text(%d),\n", row.UsernameSize)
		fmt.Printf("  email    text(%d)\n", row.EmailSize)
		fmt.Println(");")

	case ".stats":
		fmt.Println(exec.Stats())

	case ".clear":
		// ANSI escape code to clear screen
		fmt.Print("\033[H\033[2J")

	default:
		fmt.Printf("Unrecognized command '%s'\n", parts[0])
		fmt.Println("Type '.help' for available commands.")
	}

	return false
}

// executeStatement parses and executes one statement.
func executeStatement(input string, exec *engine.Executor) {
	stmt, err := parser.Parse(input)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := exec.Execute(stmt)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	out := result.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	fmt.Print(out)
}
