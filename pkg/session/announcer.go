package session

import (
	"sync"
	"time"
)

// DefaultAnnounceDuration is how long a roll stays announced.
const DefaultAnnounceDuration = 3 * time.Second

// Announcement is the transient "rolled a N" notice.
type Announcement struct {
	Visible bool `json:"visible"`
	Roll    int  `json:"roll"`
	// Seq increases with every announcement.
	Seq uint64 `json:"seq"`
}

// Scheduler runs f after d and returns a function that cancels it. The
// cancel function reports whether f was prevented from running.
type Scheduler func(d time.Duration, f func()) (cancel func() bool)

func afterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Announcer shows a roll and hides it after a fixed delay.
//
// At most one hide is pending: every Announce cancels the previous one, and
// a hide that fires late for an older announcement is ignored, so a stale
// timer can never clear a newer roll. Announcer is safe for concurrent use.
type Announcer struct {
	mu       sync.Mutex
	delay    time.Duration
	schedule Scheduler
	cancel   func() bool
	current  Announcement
	onChange func(Announcement)
}

// AnnouncerOption configures an Announcer.
type AnnouncerOption func(*Announcer)

// WithScheduler replaces the timer implementation, mainly for tests.
func WithScheduler(s Scheduler) AnnouncerOption {
	return func(a *Announcer) { a.schedule = s }
}

// OnChange registers a listener called after every show and hide. It runs
// outside the announcer's lock, possibly on a timer goroutine.
func OnChange(f func(Announcement)) AnnouncerOption {
	return func(a *Announcer) { a.onChange = f }
}

// NewAnnouncer creates an announcer that hides each roll after delay.
// A non-positive delay uses [DefaultAnnounceDuration].
func NewAnnouncer(delay time.Duration, opts ...AnnouncerOption) *Announcer {
	if delay <= 0 {
		delay = DefaultAnnounceDuration
	}
	a := &Announcer{delay: delay, schedule: afterFunc}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Announce shows roll and schedules its hide, superseding any pending hide.
func (a *Announcer) Announce(roll int) {
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	a.current = Announcement{Visible: true, Roll: roll, Seq: a.current.Seq + 1}
	seq := a.current.Seq
	a.cancel = a.schedule(a.delay, func() { a.hide(seq) })
	shown := a.current
	a.mu.Unlock()

	a.notify(shown)
}

func (a *Announcer) hide(seq uint64) {
	a.mu.Lock()
	if a.current.Seq != seq || !a.current.Visible {
		a.mu.Unlock()
		return
	}
	a.current.Visible = false
	a.cancel = nil
	hidden := a.current
	a.mu.Unlock()

	a.notify(hidden)
}

func (a *Announcer) notify(ann Announcement) {
	if a.onChange != nil {
		a.onChange(ann)
	}
}

// Current returns the announcement state.
func (a *Announcer) Current() Announcement {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Pending reports whether a hide is scheduled.
func (a *Announcer) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}

// Stop cancels any pending hide and hides the current announcement.
func (a *Announcer) Stop() {
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	wasVisible := a.current.Visible
	a.current.Visible = false
	hidden := a.current
	a.mu.Unlock()

	if wasVisible {
		a.notify(hidden)
	}
}
