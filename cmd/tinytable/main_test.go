package main

import (
	"strings"
	"testing"
)

func TestHelpTextIsStable(t *testing.T) {
	first := helpText()
	for i := 0; i < 10; i++ {
		if helpText() != first {
			t.Fatal("help output must be identical across calls")
		}
	}
}

func TestHelpTextListsEveryCommand(t *testing.T) {
	out := helpText()
	for _, cmd := range dotCommands {
		if !strings.Contains(out, cmd.name) {
			t.Errorf("help output missing %s", cmd.name)
		}
	}

	// Commands appear in the declared order.
	if strings.Index(out, ".help") > strings.Index(out, ".clear") {
		t.Error("commands should print in their declared order")
	}
}
