// Package server exposes a board-designer session over HTTP.
//
// One process serves one session. Handlers serialize on a mutex, so the
// session itself stays single-owner. The pre-game list is read from the
// store once when the server starts and written back after every change
// made before the game starts.
//
// Roll announcements are pushed to websocket clients on /api/events: one
// event when a roll is shown and one when it is hidden again.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/punishboard/pkg/dice"
	"github.com/matzehuels/punishboard/pkg/pipeline"
	"github.com/matzehuels/punishboard/pkg/session"
	"github.com/matzehuels/punishboard/pkg/store"
)

// Options configures a Server.
type Options struct {
	Store  store.Store
	Runner *pipeline.Runner
	Logger *log.Logger

	// TileSize is the pixel size used for views and rendered boards.
	TileSize float64
	// AnnounceDelay is how long a roll stays announced.
	AnnounceDelay time.Duration
	// RNG overrides the die; nil uses an auto-seeded source.
	RNG dice.RNG
	// Scheduler overrides the announcement timer, for tests.
	Scheduler session.Scheduler

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server owns the session and its HTTP surface.
type Server struct {
	mu   sync.Mutex
	sess *session.Session

	store    store.Store
	runner   *pipeline.Runner
	logger   *log.Logger
	hub      *Hub
	tileSize float64
	opts     Options
}

// New creates a server and loads the persisted space list.
func New(ctx context.Context, opts Options) (*Server, error) {
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	if opts.Runner == nil {
		opts.Runner = pipeline.NewRunner(nil, opts.Logger)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.TileSize <= 0 {
		opts.TileSize = pipeline.DefaultTileSize
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}

	s := &Server{
		store:    opts.Store,
		runner:   opts.Runner,
		logger:   opts.Logger,
		hub:      NewHub(opts.Logger),
		tileSize: opts.TileSize,
		opts:     opts,
	}

	annOpts := []session.AnnouncerOption{session.OnChange(s.hub.Announce)}
	if opts.Scheduler != nil {
		annOpts = append(annOpts, session.WithScheduler(opts.Scheduler))
	}
	sessOpts := []session.Option{session.WithAnnouncer(session.NewAnnouncer(opts.AnnounceDelay, annOpts...))}
	if opts.RNG != nil {
		sessOpts = append(sessOpts, session.WithRNG(opts.RNG))
	}
	s.sess = session.New(sessOpts...)

	saved, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load space list: %w", err)
	}
	skipped, _ := s.sess.Replace(saved)
	if skipped > 0 {
		s.logger.Warn("dropped invalid saved spaces", "skipped", skipped)
	}
	s.logger.Info("loaded space list", "spaces", len(s.sess.Entries()))
	return s, nil
}

// Run serves HTTP on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	s.hub.Close()
	s.withSession(func(sess *session.Session) { sess.Reset() })
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// withSession runs f with exclusive access to the session.
func (s *Server) withSession(f func(*session.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.sess)
}

// persist writes the pre-game list and must be called with s.mu held.
// Failures are logged; the in-memory change stands.
func (s *Server) persist(ctx context.Context, names []string) {
	if err := s.store.Save(ctx, names); err != nil {
		s.logger.Error("save space list", "error", err)
	}
}
