package domain

import "testing"

func TestPosition_Distances(t *testing.T) {
	a := Position{X: 0, Y: 0}
	b := Position{X: 3, Y: 4}

	if got := a.DistanceTo(b); got != 5.0 {
		t.Errorf("DistanceTo = %f, want 5.0", got)
	}
	if got := a.DistanceSquaredTo(b); got != 25 {
		t.Errorf("DistanceSquaredTo = %d, want 25", got)
	}
	if got := a.ManhattanTo(b); got != 7 {
		t.Errorf("ManhattanTo = %d, want 7", got)
	}
	if got := b.ManhattanTo(a); got != 7 {
		t.Errorf("ManhattanTo should be symmetric, got %d", got)
	}
}

func TestPosition_IsAdjacent(t *testing.T) {
	center := Position{X: 5, Y: 5}

	cases := []struct {
		other Position
		want  bool
	}{
		{Position{X: 5, Y: 4}, true},
		{Position{X: 6, Y: 6}, true},
		{Position{X: 4, Y: 6}, true},
		{Position{X: 5, Y: 5}, false}, // self
		{Position{X: 7, Y: 5}, false},
		{Position{X: 6, Y: 7}, false},
	}
	for _, tc := range cases {
		if got := center.IsAdjacent(tc.other); got != tc.want {
			t.Errorf("IsAdjacent(%v) = %v, want %v", tc.other, got, tc.want)
		}
	}
}

func TestPosition_ShiftAndDirection(t *testing.T) {
	p := Position{X: 2, Y: 3}

	if got := p.Shift(-1, 2); got != (Position{X: 1, Y: 5}) {
		t.Errorf("Shift = %v", got)
	}
	if p.X != 2 || p.Y != 3 {
		t.Error("Shift must not mutate the receiver")
	}

	cases := []struct {
		target Position
		dx, dy int
	}{
		{Position{X: 10, Y: 3}, 1, 0},
		{Position{X: 0, Y: 0}, -1, -1},
		{Position{X: 2, Y: 9}, 0, 1},
		{Position{X: 2, Y: 3}, 0, 0},
	}
	for _, tc := range cases {
		dx, dy := p.DirectionTo(tc.target)
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("DirectionTo(%v) = (%d,%d), want (%d,%d)", tc.target, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestParseAction(t *testing.T) {
	cases := []struct {
		in   string
		want ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{"Wait", ActionWait},
		{"ATTACK", ActionAttack},
		{"INIT", ActionInit},
		{"FLY", ActionUnknown},
		{"", ActionUnknown},
	}
	for _, tc := range cases {
		if got := ParseAction(tc.in); got != tc.want {
			t.Errorf("ParseAction(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if ActionMove.String() != "MOVE" {
		t.Errorf("ActionMove.String() = %q", ActionMove.String())
	}
	if ActionType(200).String() != "UNKNOWN" {
		t.Error("Unmapped action should stringify as UNKNOWN")
	}
}
