package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/luca-patrignani/solitaire/domain/solitaire"
)

// parseMove reads a move typed as "<from>[:<depth>] <to>", e.g. "t3 f0" or
// "t2:3 t5". "w" is accepted for the talon.
func parseMove(input string) (solitaire.Action, error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) != 2 {
		return solitaire.Action{}, fmt.Errorf("expected <from>[:<depth>] <to>, got %q", input)
	}
	from, depth := fields[0], 1
	if i := strings.IndexByte(from, ':'); i >= 0 {
		d, err := strconv.Atoi(from[i+1:])
		if err != nil || d < 1 {
			return solitaire.Action{}, fmt.Errorf("invalid depth in %q", fields[0])
		}
		from, depth = from[:i], d
	}
	return solitaire.Action{
		Type:  solitaire.ActionMove,
		From:  pileID(from),
		Depth: depth,
		To:    pileID(fields[1]),
	}, nil
}

func pileID(s string) solitaire.PileID {
	if s == "w" {
		return solitaire.TalonID
	}
	return solitaire.PileID(s)
}
