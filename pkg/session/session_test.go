package session

import (
	"fmt"
	"slices"
	"testing"

	"github.com/matzehuels/punishboard/pkg/board"
	"github.com/matzehuels/punishboard/pkg/errors"
)

// fixedRNG always returns v % n.
type fixedRNG struct{ v int }

func (r fixedRNG) Intn(n int) int { return r.v % n }

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestSession(t *testing.T, names ...string) *Session {
	t.Helper()
	s := New(WithIDGenerator(counterIDs()), WithRNG(fixedRNG{v: 4}))
	for _, n := range names {
		if _, err := s.Add(n); err != nil {
			t.Fatalf("Add(%q) error: %v", n, err)
		}
	}
	return s
}

func TestAddAssignsStableIDs(t *testing.T) {
	s := newTestSession(t, "A", "B")
	want := []Entry{{ID: "id-1", Name: "A"}, {ID: "id-2", Name: "B"}}
	if got := s.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
}

func TestAddRejectsInvalidNames(t *testing.T) {
	s := newTestSession(t, "A")

	tests := []struct {
		input string
		code  errors.Code
	}{
		{"", errors.ErrCodeEmptySpaceName},
		{"  ", errors.ErrCodeEmptySpaceName},
		{"A", errors.ErrCodeDuplicateSpaceName},
		{" A ", errors.ErrCodeDuplicateSpaceName},
	}
	for _, tt := range tests {
		_, err := s.Add(tt.input)
		if !errors.Is(err, tt.code) {
			t.Errorf("Add(%q) error = %v, want code %s", tt.input, err, tt.code)
		}
	}
	if len(s.Entries()) != 1 {
		t.Errorf("rejected adds changed the list: %v", s.Entries())
	}
}

func TestRemove(t *testing.T) {
	s := newTestSession(t, "A", "B", "C")
	if err := s.Remove("id-2"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if got := s.Names(); !slices.Equal(got, []string{"A", "C"}) {
		t.Errorf("Names() = %v, want [A C]", got)
	}
	if err := s.Remove("id-2"); !errors.Is(err, errors.ErrCodeSpaceNotFound) {
		t.Errorf("Remove(missing) error = %v, want SPACE_NOT_FOUND", err)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		id   string
		to   int
		want []string
	}{
		{"down", "id-1", 2, []string{"B", "C", "A", "D"}},
		{"up", "id-4", 0, []string{"D", "A", "B", "C"}},
		{"same", "id-2", 1, []string{"A", "B", "C", "D"}},
		{"clamped high", "id-1", 99, []string{"B", "C", "D", "A"}},
		{"clamped low", "id-3", -5, []string{"C", "A", "B", "D"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, "A", "B", "C", "D")
			if err := s.Move(tt.id, tt.to); err != nil {
				t.Fatalf("Move() error: %v", err)
			}
			if got := s.Names(); !slices.Equal(got, tt.want) {
				t.Errorf("Names() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveOver(t *testing.T) {
	s := newTestSession(t, "A", "B", "C", "D")
	if err := s.MoveOver("id-1", "id-3"); err != nil {
		t.Fatalf("MoveOver() error: %v", err)
	}
	if got := s.Names(); !slices.Equal(got, []string{"B", "C", "A", "D"}) {
		t.Errorf("Names() = %v", got)
	}
	if err := s.MoveOver("id-1", "nope"); !errors.Is(err, errors.ErrCodeSpaceNotFound) {
		t.Errorf("MoveOver(missing) error = %v", err)
	}
	if err := s.MoveOver("id-2", "id-2"); err != nil {
		t.Errorf("MoveOver(same) error = %v", err)
	}
}

func TestReplace(t *testing.T) {
	s := newTestSession(t, "old")
	skipped, err := s.Replace([]string{"A", "", "B", "A", "C"})
	if err != nil {
		t.Fatalf("Replace() error: %v", err)
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if got := s.Names(); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestLookup(t *testing.T) {
	s := newTestSession(t, "A", "B")
	if e, ok := s.Lookup("id-2"); !ok || e.Name != "B" {
		t.Errorf("Lookup(id-2) = %v, %v", e, ok)
	}
	if e, ok := s.Lookup("A"); !ok || e.ID != "id-1" {
		t.Errorf("Lookup(A) = %v, %v", e, ok)
	}
	if _, ok := s.Lookup("Z"); ok {
		t.Error("Lookup(Z) should fail")
	}
}

func TestStartRejectsInvalidList(t *testing.T) {
	tests := []struct {
		name  string
		count int
		code  errors.Code
	}{
		{"empty", 0, errors.ErrCodeEmptySpaceList},
		{"seven", 7, errors.ErrCodeInvalidSpaceCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			for i := 0; i < tt.count; i++ {
				s.Add(fmt.Sprintf("S%d", i))
			}
			err := s.Start("Board", board.DefaultCorners())
			if !errors.Is(err, tt.code) {
				t.Fatalf("Start() error = %v, want %s", err, tt.code)
			}
			if s.Phase() != PhaseEditing {
				t.Errorf("Phase() = %v, want editing", s.Phase())
			}
			if s.Layout().Len() != 0 {
				t.Errorf("layout built despite error: %v", s.Layout())
			}
			if len(s.Entries()) != tt.count {
				t.Errorf("len(Entries()) = %d, want %d", len(s.Entries()), tt.count)
			}
			if _, err := s.Add("still editable"); err != nil {
				t.Errorf("Add() after failed start error: %v", err)
			}
		})
	}
}

func TestStartBuildsLayoutAndFreezes(t *testing.T) {
	s := newTestSession(t, "A", "B", "C", "D", "E", "F", "G", "H")
	corners := board.Corners{TopLeft: "ignored", TopRight: "Jail", BottomRight: "FreeParking", BottomLeft: "GoToJail"}
	if err := s.Start(" Punishments ", corners); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	want := []string{"GO!", "A", "B", "Jail", "C", "D", "FreeParking", "E", "F", "GoToJail", "G", "H"}
	if got := s.Layout().Spaces; !slices.Equal(got, want) {
		t.Errorf("Layout().Spaces = %v, want %v", got, want)
	}
	if s.Name() != "Punishments" {
		t.Errorf("Name() = %q", s.Name())
	}
	if s.Position() != 0 {
		t.Errorf("Position() = %d, want 0", s.Position())
	}

	if _, err := s.Add("I"); !errors.Is(err, errors.ErrCodeGameStarted) {
		t.Errorf("Add() while playing error = %v, want GAME_STARTED", err)
	}
	if err := s.Remove("id-1"); !errors.Is(err, errors.ErrCodeGameStarted) {
		t.Errorf("Remove() while playing error = %v", err)
	}
	if err := s.Move("id-1", 3); !errors.Is(err, errors.ErrCodeGameStarted) {
		t.Errorf("Move() while playing error = %v", err)
	}
	if err := s.Start("again", corners); !errors.Is(err, errors.ErrCodeGameStarted) {
		t.Errorf("Start() twice error = %v", err)
	}
}

func TestRoll(t *testing.T) {
	s := newTestSession(t, "A", "B", "C", "D", "E", "F", "G", "H")
	if _, err := s.Roll(); !errors.Is(err, errors.ErrCodeGameNotStarted) {
		t.Fatalf("Roll() before start error = %v", err)
	}
	if err := s.Start("B", board.DefaultCorners()); err != nil {
		t.Fatal(err)
	}

	// fixedRNG{4} on a 12-tile board: 4 % 3 + 1 = 2 per roll.
	positions := []int{2, 4, 6, 8, 10, 0, 2}
	for i, want := range positions {
		res, err := s.Roll()
		if err != nil {
			t.Fatalf("Roll() error: %v", err)
		}
		if res.Roll != 2 || res.Position != want {
			t.Errorf("roll %d = %+v, want roll 2 position %d", i, res, want)
		}
	}
	if s.LastRoll() != 2 {
		t.Errorf("LastRoll() = %d, want 2", s.LastRoll())
	}
}

func TestResetKeepsList(t *testing.T) {
	s := newTestSession(t, "A", "B", "C", "D")
	if err := s.Start("B", board.DefaultCorners()); err != nil {
		t.Fatal(err)
	}
	s.Roll()
	s.Reset()

	if s.Phase() != PhaseEditing {
		t.Errorf("Phase() = %v, want editing", s.Phase())
	}
	if s.Position() != 0 || s.LastRoll() != 0 {
		t.Errorf("Position/LastRoll = %d/%d, want 0/0", s.Position(), s.LastRoll())
	}
	if got := s.Names(); !slices.Equal(got, []string{"A", "B", "C", "D"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestView(t *testing.T) {
	s := newTestSession(t, "A", "B", "C")
	v := s.View(100)
	if v.CanStart || v.Reason == "" {
		t.Errorf("View() while uneven = %+v", v)
	}
	if len(v.Tiles) != 0 {
		t.Errorf("editing view has tiles: %v", v.Tiles)
	}

	s.Add("D")
	if err := s.Start("Board", board.DefaultCorners()); err != nil {
		t.Fatal(err)
	}
	s.Roll()
	v = s.View(100)
	if len(v.Tiles) != 8 {
		t.Fatalf("len(Tiles) = %d, want 8", len(v.Tiles))
	}
	if v.BoardSize != 300 {
		t.Errorf("BoardSize = %v, want 300", v.BoardSize)
	}
	current := 0
	for _, tile := range v.Tiles {
		if tile.IsCurrent {
			current++
			if tile.Index != s.Position() {
				t.Errorf("current tile %d, want %d", tile.Index, s.Position())
			}
		}
	}
	if current != 1 {
		t.Errorf("%d current tiles, want 1", current)
	}
}
