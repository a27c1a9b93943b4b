package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/punishboard/pkg/board"
	"github.com/matzehuels/punishboard/pkg/session"
	"github.com/matzehuels/punishboard/pkg/store"
)

// fixedRNG always draws v, so every roll is v+1.
type fixedRNG struct{ v int }

func (r fixedRNG) Intn(n int) int { return r.v % n }

func startedModel(t *testing.T) playModel {
	t.Helper()
	s := session.New(session.WithRNG(fixedRNG{v: 1}))
	for _, name := range []string{"A", "B", "C", "D"} {
		if _, err := s.Add(name); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Start("Friday", board.DefaultCorners()); err != nil {
		t.Fatal(err)
	}
	return newPlayModel(context.Background(), s, time.Second)
}

func press(m playModel, key tea.KeyMsg) (playModel, tea.Cmd) {
	next, cmd := m.Update(key)
	return next.(playModel), cmd
}

func TestPlayModelRoll(t *testing.T) {
	m := startedModel(t)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("roll should schedule a hide")
	}
	if !m.showing || m.seq != 1 || m.rolls != 1 {
		t.Fatalf("after roll: showing=%v seq=%d rolls=%d", m.showing, m.seq, m.rolls)
	}
	if got := m.sess.Position(); got != 2 {
		t.Errorf("Position() = %d, want 2", got)
	}
	if got := m.currentLabel(); got != board.DefaultTopRightLabel {
		t.Errorf("currentLabel() = %q, want %q", got, board.DefaultTopRightLabel)
	}
	if view := m.View(); !strings.Contains(view, "Rolled a 2!") {
		t.Errorf("View() should announce the roll:\n%s", view)
	}
}

func TestPlayModelStaleHide(t *testing.T) {
	m := startedModel(t)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	next, _ := m.Update(hideMsg{seq: 1})
	m = next.(playModel)
	if !m.showing {
		t.Fatal("hide for an older roll should be ignored")
	}

	next, _ = m.Update(hideMsg{seq: 2})
	m = next.(playModel)
	if m.showing {
		t.Fatal("hide for the latest roll should hide it")
	}
	if view := m.View(); strings.Contains(view, "Rolled a") {
		t.Errorf("View() after hide still announces:\n%s", view)
	}
	if got := m.sess.LastRoll(); got != 2 {
		t.Errorf("LastRoll() = %d, want 2", got)
	}
}

func TestPlayModelQuit(t *testing.T) {
	m := startedModel(t)
	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestPlayRequiresValidList(t *testing.T) {
	st := store.NewMemoryStore()
	if err := runCLI(t, st, "space", "add", "A", "B"); err != nil {
		t.Fatal(err)
	}
	if err := runCLI(t, st, "play"); err == nil {
		t.Error("play with 2 spaces should fail before starting the terminal UI")
	}
}
