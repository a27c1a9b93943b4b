// Package session holds the state of one board-designer session.
//
// A [Session] starts in the editing phase, where the player builds an
// ordered list of board spaces. Each entry carries a stable synthetic ID so
// deletes and reorders never depend on list positions or label equality.
// [Session.Start] validates the list, freezes it and builds the board
// layout; from then on [Session.Roll] advances the token. [Session.Reset]
// returns to editing with the original list.
//
// The board and dice packages stay pure; Session is the single owner of the
// mutable state around them. It is not safe for concurrent use: callers that
// share a session across goroutines (the HTTP server) serialize access.
//
// # Usage
//
//	s := session.New()
//	s.Add("Tax")
//	...
//	if err := s.Start("My Board", board.NewCorners("Jail", "", "")); err != nil {
//	    // errors.ErrCodeEmptySpaceList or errors.ErrCodeInvalidSpaceCount
//	}
//	res, _ := s.Roll()
//	view := s.View(150)
package session

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/punishboard/pkg/board"
	"github.com/matzehuels/punishboard/pkg/dice"
	"github.com/matzehuels/punishboard/pkg/errors"
)

// Phase is the lifecycle stage of a session.
type Phase string

const (
	PhaseEditing Phase = "editing"
	PhasePlaying Phase = "playing"
)

// Entry is one player-entered board space.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session is the explicit context owned by the event-handling layer.
type Session struct {
	entries []Entry
	phase   Phase

	name     string
	corners  board.Corners
	layout   board.Layout
	position int
	lastRoll int

	rng       dice.RNG
	newID     func() string
	announcer *Announcer
}

// Option configures a Session.
type Option func(*Session)

// WithRNG sets the random source for rolls.
func WithRNG(rng dice.RNG) Option { return func(s *Session) { s.rng = rng } }

// WithIDGenerator replaces the uuid-based entry ID generator.
func WithIDGenerator(f func() string) Option { return func(s *Session) { s.newID = f } }

// WithAnnouncer attaches a roll announcer that is triggered on every roll.
func WithAnnouncer(a *Announcer) Option { return func(s *Session) { s.announcer = a } }

// New creates an empty session in the editing phase.
func New(opts ...Option) *Session {
	s := &Session{
		phase:   PhaseEditing,
		corners: board.DefaultCorners(),
		rng:     dice.NewRNG(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Entries returns a copy of the pre-game list.
func (s *Session) Entries() []Entry { return slices.Clone(s.entries) }

// Names returns the pre-game list as plain names, the persisted form.
func (s *Session) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

func (s *Session) requireEditing() error {
	if s.phase != PhaseEditing {
		return errors.New(errors.ErrCodeGameStarted, "the board is frozen once the game has started")
	}
	return nil
}

func (s *Session) requirePlaying() error {
	if s.phase != PhasePlaying {
		return errors.New(errors.ErrCodeGameNotStarted, "start the game first")
	}
	return nil
}

// Add appends a space to the pre-game list.
func (s *Session) Add(name string) (Entry, error) {
	if err := s.requireEditing(); err != nil {
		return Entry{}, err
	}
	if err := errors.ValidateSpaceName(name, s.Names()); err != nil {
		return Entry{}, err
	}
	e := Entry{ID: s.newID(), Name: strings.TrimSpace(name)}
	s.entries = append(s.entries, e)
	return e, nil
}

// Replace swaps the pre-game list for names, typically a persisted list read
// at session start. Blank and repeated names are skipped; the number of
// skipped names is returned.
func (s *Session) Replace(names []string) (skipped int, err error) {
	if err := s.requireEditing(); err != nil {
		return 0, err
	}
	s.entries = s.entries[:0]
	for _, name := range names {
		if _, err := s.Add(name); err != nil {
			skipped++
		}
	}
	return skipped, nil
}

func (s *Session) indexOf(id string) int {
	return slices.IndexFunc(s.entries, func(e Entry) bool { return e.ID == id })
}

// Lookup finds an entry by ID or, failing that, by exact name.
func (s *Session) Lookup(ref string) (Entry, bool) {
	if i := s.indexOf(ref); i >= 0 {
		return s.entries[i], true
	}
	for _, e := range s.entries {
		if e.Name == ref {
			return e, true
		}
	}
	return Entry{}, false
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeSpaceNotFound, "no board space with id %q", id)
}

// Remove deletes the entry with the given ID.
func (s *Session) Remove(id string) error {
	if err := s.requireEditing(); err != nil {
		return err
	}
	i := s.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return nil
}

// Move places the entry with the given ID at index to, shifting the entries
// in between. to is clamped to the list bounds.
func (s *Session) Move(id string, to int) error {
	if err := s.requireEditing(); err != nil {
		return err
	}
	from := s.indexOf(id)
	if from < 0 {
		return notFound(id)
	}
	to = max(0, min(to, len(s.entries)-1))
	if from == to {
		return nil
	}
	e := s.entries[from]
	s.entries = slices.Delete(s.entries, from, from+1)
	s.entries = slices.Insert(s.entries, to, e)
	return nil
}

// MoveOver drops the active entry onto the position of the over entry, the
// way a drag-and-drop list reports the end of a drag.
func (s *Session) MoveOver(activeID, overID string) error {
	if activeID == overID {
		return s.requireEditing()
	}
	to := s.indexOf(overID)
	if to < 0 {
		if err := s.requireEditing(); err != nil {
			return err
		}
		return notFound(overID)
	}
	return s.Move(activeID, to)
}

// Check reports whether the current list can start a game.
func (s *Session) Check() (ok bool, reason string) {
	return errors.CheckSpaceList(s.Names())
}

// Start validates the list and builds the board titled name. On failure
// nothing changes. TopLeft is always [board.TopLeftLabel] whatever corners
// holds.
func (s *Session) Start(name string, corners board.Corners) error {
	if err := s.requireEditing(); err != nil {
		return err
	}
	names := s.Names()
	if err := errors.ValidateSpaceList(names); err != nil {
		return err
	}

	corners.TopLeft = board.TopLeftLabel
	s.name = strings.TrimSpace(name)
	s.corners = corners
	s.layout = board.BuildPerimeter(names, corners)
	s.position = 0
	s.lastRoll = 0
	s.phase = PhasePlaying
	return nil
}

// Roll throws the die and advances the token.
func (s *Session) Roll() (dice.Result, error) {
	if err := s.requirePlaying(); err != nil {
		return dice.Result{}, err
	}
	res := dice.RollAndAdvance(s.rng, s.layout.Len(), s.position)
	s.position = res.Position
	s.lastRoll = res.Roll
	if s.announcer != nil {
		s.announcer.Announce(res.Roll)
	}
	return res, nil
}

// Reset ends the game and returns to editing with the pre-game list intact.
func (s *Session) Reset() {
	if s.announcer != nil {
		s.announcer.Stop()
	}
	s.phase = PhaseEditing
	s.layout = board.Layout{}
	s.position = 0
	s.lastRoll = 0
}

// Layout returns the board layout; it is empty while editing.
func (s *Session) Layout() board.Layout { return s.layout }

// Position returns the token index on the perimeter.
func (s *Session) Position() int { return s.position }

// LastRoll returns the most recent roll, or 0 before the first roll.
func (s *Session) LastRoll() int { return s.lastRoll }

// ShownRoll returns the roll the board should display: the last roll while
// its announcement is visible, 0 once it has been hidden. Without an
// announcer the last roll is always shown.
func (s *Session) ShownRoll() int {
	if s.announcer != nil && !s.announcer.Current().Visible {
		return 0
	}
	return s.lastRoll
}

// Name returns the board name given at start.
func (s *Session) Name() string { return s.name }

// Corners returns the corner set in use.
func (s *Session) Corners() board.Corners { return s.corners }

// View is the render-boundary snapshot of a session.
type View struct {
	Name         string        `json:"name"`
	Phase        Phase         `json:"phase"`
	Spaces       []Entry       `json:"spaces"`
	CanStart     bool          `json:"can_start"`
	Reason       string        `json:"reason,omitempty"`
	Corners      board.Corners `json:"corners"`
	Split        int           `json:"split"`
	TileSize     float64       `json:"tile_size"`
	BoardSize    float64       `json:"board_size,omitempty"`
	Tiles        []board.Tile  `json:"tiles,omitempty"`
	Position     int           `json:"position"`
	LastRoll     int           `json:"last_roll"`
	Announcement *Announcement `json:"announcement,omitempty"`
	GeneratedAt  time.Time     `json:"generated_at"`
}

// View snapshots the session for rendering with tiles of tileSize pixels.
func (s *Session) View(tileSize float64) View {
	ok, reason := s.Check()
	v := View{
		Name:        s.name,
		Phase:       s.phase,
		Spaces:      s.Entries(),
		CanStart:    ok,
		Reason:      reason,
		Corners:     s.corners,
		TileSize:    tileSize,
		Position:    s.position,
		LastRoll:    s.lastRoll,
		GeneratedAt: time.Now().UTC(),
	}
	if s.phase == PhasePlaying {
		v.Split = s.layout.Split
		v.BoardSize = s.layout.BoardSize(tileSize)
		v.Tiles = s.layout.Tiles(tileSize, s.position)
	}
	if s.announcer != nil {
		a := s.announcer.Current()
		v.Announcement = &a
	}
	return v
}
