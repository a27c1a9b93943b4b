package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/punishboard/pkg/board"
	"github.com/matzehuels/punishboard/pkg/buildinfo"
	"github.com/matzehuels/punishboard/pkg/dice"
	"github.com/matzehuels/punishboard/pkg/errors"
	"github.com/matzehuels/punishboard/pkg/observability"
	"github.com/matzehuels/punishboard/pkg/pipeline"
	"github.com/matzehuels/punishboard/pkg/session"
)

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/spaces", s.handleListSpaces)
		r.Post("/spaces", s.handleAddSpace)
		r.Put("/spaces", s.handleReplaceSpaces)
		r.Delete("/spaces/{id}", s.handleRemoveSpace)
		r.Post("/spaces/{id}/move", s.handleMoveSpace)
		r.Get("/check", s.handleCheck)

		r.Get("/game", s.handleView)
		r.Post("/game", s.handleStart)
		r.Delete("/game", s.handleReset)
		r.Post("/game/roll", s.handleRoll)
		r.Get("/game/board.{format}", s.handleBoard)

		r.Get("/events", s.hub.ServeHTTP)
	})
	return r
}

type spacesResponse struct {
	Spaces   []session.Entry `json:"spaces"`
	CanStart bool            `json:"can_start"`
	Reason   string          `json:"reason,omitempty"`
	Skipped  int             `json:"skipped,omitempty"`
}

func spacesOf(sess *session.Session) spacesResponse {
	ok, reason := sess.Check()
	return spacesResponse{Spaces: sess.Entries(), CanStart: ok, Reason: reason}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Get().Version,
	})
}

func (s *Server) handleListSpaces(w http.ResponseWriter, r *http.Request) {
	var resp spacesResponse
	s.withSession(func(sess *session.Session) { resp = spacesOf(sess) })
	writeJSON(w, http.StatusOK, resp)
}

// editList applies a pre-game change and persists the resulting list.
// The save runs under the session lock so saves land in edit order.
func (s *Server) editList(ctx context.Context, f func(*session.Session) error) (spacesResponse, error) {
	var (
		resp spacesResponse
		err  error
	)
	s.withSession(func(sess *session.Session) {
		if err = f(sess); err != nil {
			return
		}
		resp = spacesOf(sess)
		s.persist(ctx, sess.Names())
	})
	return resp, err
}

type addSpaceRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleAddSpace(w http.ResponseWriter, r *http.Request) {
	var req addSpaceRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	var entry session.Entry
	if _, err := s.editList(r.Context(), func(sess *session.Session) error {
		var err error
		entry, err = sess.Add(req.Name)
		return err
	}); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

type replaceSpacesRequest struct {
	Spaces []string `json:"spaces"`
}

func (s *Server) handleReplaceSpaces(w http.ResponseWriter, r *http.Request) {
	var req replaceSpacesRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	var skipped int
	resp, err := s.editList(r.Context(), func(sess *session.Session) error {
		var err error
		skipped, err = sess.Replace(req.Spaces)
		return err
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp.Skipped = skipped
	writeJSON(w, http.StatusOK, resp)
}

// resolve finds an entry by ID or name.
func resolve(sess *session.Session, ref string) (session.Entry, error) {
	e, ok := sess.Lookup(ref)
	if !ok {
		return session.Entry{}, errors.New(errors.ErrCodeSpaceNotFound, "no board space %q", ref)
	}
	return e, nil
}

func (s *Server) handleRemoveSpace(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "id")
	if _, err := s.editList(r.Context(), func(sess *session.Session) error {
		if sess.Phase() != session.PhaseEditing {
			return errors.New(errors.ErrCodeGameStarted, "the board is frozen once the game has started")
		}
		e, err := resolve(sess, ref)
		if err != nil {
			return err
		}
		return sess.Remove(e.ID)
	}); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moveSpaceRequest struct {
	To   *int   `json:"to,omitempty"`
	Over string `json:"over,omitempty"`
}

func (s *Server) handleMoveSpace(w http.ResponseWriter, r *http.Request) {
	var req moveSpaceRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if (req.To == nil) == (req.Over == "") {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "give exactly one of \"to\" or \"over\""))
		return
	}

	ref := chi.URLParam(r, "id")
	resp, err := s.editList(r.Context(), func(sess *session.Session) error {
		if sess.Phase() != session.PhaseEditing {
			return errors.New(errors.ErrCodeGameStarted, "the board is frozen once the game has started")
		}
		e, err := resolve(sess, ref)
		if err != nil {
			return err
		}
		if req.To != nil {
			return sess.Move(e.ID, *req.To)
		}
		over, err := resolve(sess, req.Over)
		if err != nil {
			return err
		}
		return sess.MoveOver(e.ID, over.ID)
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type checkResponse struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var resp checkResponse
	s.withSession(func(sess *session.Session) { resp.OK, resp.Reason = sess.Check() })
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) view() session.View {
	var v session.View
	s.withSession(func(sess *session.Session) { v = sess.View(s.tileSize) })
	return v
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.view())
}

type startRequest struct {
	Name        string `json:"name"`
	TopRight    string `json:"top_right"`
	BottomRight string `json:"bottom_right"`
	BottomLeft  string `json:"bottom_left"`
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	corners := board.NewCorners(req.TopRight, req.BottomRight, req.BottomLeft)

	var (
		v   session.View
		err error
	)
	s.withSession(func(sess *session.Session) {
		if err = sess.Start(req.Name, corners); err != nil {
			return
		}
		v = sess.View(s.tileSize)
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("game started", "name", v.Name, "tiles", len(v.Tiles))
	observability.Game().OnStart(r.Context(), len(v.Tiles))
	s.hub.Broadcast(Event{Type: EventGame, Data: v})
	writeJSON(w, http.StatusCreated, v)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var v session.View
	s.withSession(func(sess *session.Session) {
		sess.Reset()
		v = sess.View(s.tileSize)
	})
	observability.Game().OnReset(r.Context())
	s.hub.Broadcast(Event{Type: EventGame, Data: v})
	writeJSON(w, http.StatusOK, v)
}

type rollResponse struct {
	dice.Result
	View session.View `json:"view"`
}

func (s *Server) handleRoll(w http.ResponseWriter, r *http.Request) {
	var (
		resp rollResponse
		err  error
	)
	s.withSession(func(sess *session.Session) {
		if resp.Result, err = sess.Roll(); err != nil {
			return
		}
		resp.View = sess.View(s.tileSize)
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Debug("rolled", "roll", resp.Roll, "from", resp.From, "to", resp.Position)
	observability.Game().OnRoll(r.Context(), resp.Roll, resp.From, resp.Position)
	s.hub.Broadcast(Event{Type: EventGame, Data: resp.View})
	writeJSON(w, http.StatusOK, resp)
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatTXT:  "text/plain; charset=utf-8",
	pipeline.FormatDOT:  "text/vnd.graphviz",
}

// handleBoard renders the running game. The visualization is picked with
// ?viz= and defaults to the square board.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(chi.URLParam(r, "format"))
	viz := r.URL.Query().Get("viz")
	if viz == "" {
		viz = pipeline.VizBoard
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := pipeline.ValidateVizType(viz); err != nil {
		s.writeError(w, r, err)
		return
	}
	if !pipeline.Supports(viz, format) {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidFormat, "%s cannot be rendered as %s", viz, format))
		return
	}
	scale := 0.0
	if v := r.URL.Query().Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v))
			return
		}
		scale = f
	}

	var (
		opts pipeline.Options
		err  error
	)
	s.withSession(func(sess *session.Session) {
		if sess.Phase() != session.PhasePlaying {
			err = errors.New(errors.ErrCodeGameNotStarted, "start the game first")
			return
		}
		opts = pipeline.Options{
			Name:     sess.Name(),
			Spaces:   sess.Names(),
			Corners:  sess.Corners(),
			Position: sess.Position(),
			LastRoll: sess.ShownRoll(),
			TileSize: s.tileSize,
			Scale:    scale,
			VizTypes: []string{viz},
			Formats:  []string{format},
			Logger:   s.logger,
		}
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, ok := result.Artifacts[pipeline.ArtifactName(viz, format)]
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no %s artifact for %s", format, viz))
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}
