package ui

import (
	"testing"

	"lifeview/internal/session"
)

func TestStatusText(t *testing.T) {
	cases := []struct {
		st   session.Status
		want string
	}{
		{session.Status{}, "PAUSED  gen 0  live 0"},
		{session.Status{Active: true, Generation: 12, LiveCells: 5}, "RUNNING  gen 12  live 5"},
	}
	for _, c := range cases {
		if got := StatusText(c.st); got != c.want {
			t.Fatalf("StatusText(%+v) = %q, want %q", c.st, got, c.want)
		}
	}
}
