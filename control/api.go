package control

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/lixenwraith/loose-goose/goose"
)

// commandTimeout bounds how long a request waits for the tick goroutine
const commandTimeout = 2 * time.Second

// API exposes the controller over HTTP
type API struct {
	c       *Controller
	log     *zap.Logger
	origins []string
}

func NewAPI(c *Controller, origins []string, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &API{c: c, log: log, origins: origins}
}

// Router builds the chi router with all routes
func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", a.health)
		r.Get("/status", a.statusSnapshot)

		r.Post("/goose", a.spawn)
		r.Delete("/goose", a.kill)
		r.Put("/goose/state", a.setState)
		r.Put("/goose/hat", a.setHat)

		r.Post("/engine/pause", a.pause)
		r.Post("/engine/resume", a.resume)
		r.Post("/audio/mute", a.mute)
	})
	return r
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		a.log.Debug("api request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) statusSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.c.Snapshot())
}

func (a *API) exec(w http.ResponseWriter, r *http.Request, op Op, okStatus int) {
	ctx, cancel := context.WithTimeout(r.Context(), commandTimeout)
	defer cancel()
	if err := a.c.Exec(ctx, op); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, okStatus, a.c.Snapshot())
}

func (a *API) spawn(w http.ResponseWriter, r *http.Request) {
	a.exec(w, r, Op{Kind: OpSpawn}, http.StatusCreated)
}

func (a *API) kill(w http.ResponseWriter, r *http.Request) {
	a.exec(w, r, Op{Kind: OpKill}, http.StatusOK)
}

func (a *API) setState(w http.ResponseWriter, r *http.Request) {
	var req struct {
		State string `json:"state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	kind, err := goose.ParseKind(req.State)
	if err != nil {
		writeError(w, err)
		return
	}
	a.exec(w, r, Op{Kind: OpSetState, State: kind}, http.StatusOK)
}

// setHat accepts a hat index or name
func (a *API) setHat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Hat json.RawMessage `json:"hat"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Hat) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	hat, err := parseHat(req.Hat)
	if err != nil {
		writeError(w, err)
		return
	}
	a.exec(w, r, Op{Kind: OpSetHat, Hat: hat}, http.StatusOK)
}

func parseHat(raw json.RawMessage) (goose.HatType, error) {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return goose.ParseHat(name)
	}
	var idx int
	if err := json.Unmarshal(raw, &idx); err != nil {
		return 0, goose.ErrUnknownHat
	}
	if idx < 0 || idx > 255 || !goose.HatType(idx).Valid() {
		return 0, errors.Join(goose.ErrUnknownHat, errors.New("index "+strconv.Itoa(idx)))
	}
	return goose.HatType(idx), nil
}

func (a *API) pause(w http.ResponseWriter, r *http.Request) {
	a.c.Pause()
	writeJSON(w, http.StatusOK, a.c.Snapshot())
}

func (a *API) resume(w http.ResponseWriter, r *http.Request) {
	a.c.Resume()
	writeJSON(w, http.StatusOK, a.c.Snapshot())
}

func (a *API) mute(w http.ResponseWriter, r *http.Request) {
	muted := a.c.ToggleMute()
	writeJSON(w, http.StatusOK, map[string]bool{"muted": muted})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps controller and domain errors onto status codes
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrAgentExists):
		status = http.StatusConflict
	case errors.Is(err, ErrNoAgent):
		status = http.StatusNotFound
	case errors.Is(err, goose.ErrUnknownState), errors.Is(err, goose.ErrUnknownHat):
		status = http.StatusBadRequest
	case errors.Is(err, ErrQueueFull):
		status = http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// Serve runs the API on addr until ctx is cancelled
func (a *API) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	a.log.Info("control api listening", zap.String("addr", addr))

	select {
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
