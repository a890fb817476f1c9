// Package http exposes the Dicetale engine as a JSON API over HTTP.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/dicetale/internal/logging"
	"github.com/aretw0/dicetale/internal/presentation/graph"
	"github.com/aretw0/dicetale/internal/presentation/table"
	"github.com/aretw0/dicetale/pkg/adapters/dice"
	"github.com/aretw0/dicetale/pkg/domain"
	"github.com/aretw0/dicetale/pkg/ports"
)

// Engine defines the interface for the Dicetale core as seen by the server.
type Engine interface {
	Model() *domain.Model
	Warnings() []domain.Warning
	DefaultStart() domain.Token
	NewStory(start domain.Token) (*domain.Story, error)
	Advance(story *domain.Story, roll int) error
	Preview(start domain.Token, rolls ports.RollSource) (*domain.Story, error)
}

// Server wires the engine, the story store and the metrics together.
type Server struct {
	engine  Engine
	store   ports.StoryStore
	logger  *slog.Logger
	metrics *metrics
}

type metrics struct {
	registry       *prometheus.Registry
	storiesStarted prometheus.Counter
	rolls          *prometheus.CounterVec
	storyLength    prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		storiesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dicetale_stories_started_total",
			Help: "Total number of story sessions started",
		}),
		rolls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dicetale_rolls_total",
			Help: "Total number of die rolls resolved",
		}, []string{"outcome"}),
		storyLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dicetale_story_length_words",
			Help:    "Length of completed stories in words",
			Buckets: prometheus.LinearBuckets(1, 2, 12),
		}),
	}
	m.registry.MustRegister(m.storiesStarted, m.rolls, m.storyLength)
	return m
}

// NewHandler creates a new HTTP handler for the engine.
// The store holds in-progress story sessions; pass the memory store for a
// single-process deployment or the redis store for shared classrooms.
func NewHandler(engine Engine, store ports.StoryStore, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	s := &Server{
		engine:  engine,
		store:   store,
		logger:  logger,
		metrics: newMetrics(),
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Get("/model", s.getModel)
	r.Get("/model/{word}", s.getWord)
	r.Get("/table", s.getTable)
	r.Get("/graph", s.getGraph)
	r.Post("/preview", s.preview)
	r.Post("/stories", s.createStory)
	r.Get("/stories/{id}", s.getStory)
	r.Post("/stories/{id}/roll", s.rollStory)
	r.Delete("/stories/{id}", s.deleteStory)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getModel(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.Model())
}

func (s *Server) getWord(w http.ResponseWriter, r *http.Request) {
	word := domain.Token(chi.URLParam(r, "word"))

	entries, err := s.engine.Model().Get(word)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, domain.WordTransitions{Word: word, Entries: entries})
}

func (s *Server) getTable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprint(w, table.Render(s.engine.Model(), s.engine.Warnings()))
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(s.engine.Model()))
}

type previewRequest struct {
	Start string `json:"start,omitempty"`
	Seed  *int64 `json:"seed,omitempty"`
}

type storyResponse struct {
	ID       string        `json:"id,omitempty"`
	Story    *domain.Story `json:"story"`
	Sentence string        `json:"sentence,omitempty"`
}

func (s *Server) preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	start := domain.Token(req.Start)
	if start == "" {
		start = s.engine.DefaultStart()
	}

	seed := int64(0)
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		generated, err := dice.NewSeed()
		if err != nil {
			s.writeError(w, err)
			return
		}
		seed = generated
	}

	story, err := s.engine.Preview(start, dice.NewPseudoSource(seed))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.observeCompletion(story)
	s.writeJSON(w, http.StatusOK, storyResponse{Story: story, Sentence: story.Sentence()})
}

type createStoryRequest struct {
	Start string `json:"start,omitempty"`
}

func (s *Server) createStory(w http.ResponseWriter, r *http.Request) {
	var req createStoryRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	start := domain.Token(req.Start)
	if start == "" {
		start = s.engine.DefaultStart()
	}

	story, err := s.engine.NewStory(start)
	if err != nil {
		s.writeError(w, err)
		return
	}

	id, err := newStoryID()
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Save(r.Context(), id, story); err != nil {
		s.writeError(w, err)
		return
	}

	s.metrics.storiesStarted.Inc()
	s.logger.Info("story started", "id", id, "start", start)
	s.writeJSON(w, http.StatusCreated, storyResponse{ID: id, Story: story})
}

func (s *Server) getStory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	story, err := s.store.Load(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, storyResponse{ID: id, Story: story, Sentence: story.Sentence()})
}

type rollRequest struct {
	Roll int `json:"roll"`
}

func (s *Server) rollStory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req rollRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	story, err := s.store.Load(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.engine.Advance(story, req.Roll); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Save(r.Context(), id, story); err != nil {
		s.writeError(w, err)
		return
	}

	if story.Status == domain.StatusComplete {
		s.metrics.rolls.WithLabelValues("end").Inc()
		s.observeCompletion(story)
	} else {
		s.metrics.rolls.WithLabelValues("word").Inc()
	}

	s.writeJSON(w, http.StatusOK, storyResponse{ID: id, Story: story, Sentence: story.Sentence()})
}

func (s *Server) deleteStory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) observeCompletion(story *domain.Story) {
	if story.Status == domain.StatusComplete {
		s.metrics.storyLength.Observe(float64(len(story.Words)))
	}
}

// -- Helpers --

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	return json.NewDecoder(r.Body).Decode(v)
}

func newStoryID() (string, error) {
	seed, err := dice.NewSeed()
	if err != nil {
		return "", fmt.Errorf("generate story id: %w", err)
	}
	return fmt.Sprintf("%016x", uint64(seed)), nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnknownWord), errors.Is(err, domain.ErrStoryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRoll):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrStoryComplete):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	http.Error(w, err.Error(), status)
}
