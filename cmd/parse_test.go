package main

import (
	"testing"

	"github.com/luca-patrignani/solitaire/domain/solitaire"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input string
		want  solitaire.Action
	}{
		{"t3 f0", solitaire.Action{Type: solitaire.ActionMove, From: "t3", Depth: 1, To: "f0"}},
		{"t2:3 t5", solitaire.Action{Type: solitaire.ActionMove, From: "t2", Depth: 3, To: "t5"}},
		{"  W   T1 ", solitaire.Action{Type: solitaire.ActionMove, From: solitaire.TalonID, Depth: 1, To: "t1"}},
		{"talon f2", solitaire.Action{Type: solitaire.ActionMove, From: solitaire.TalonID, Depth: 1, To: "f2"}},
	}
	for _, tt := range tests {
		got, err := parseMove(tt.input)
		if err != nil {
			t.Fatalf("parseMove(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("parseMove(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, input := range []string{"", "t1", "t1 t2 t3", "t1:x t2", "t1:0 t2"} {
		if _, err := parseMove(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
