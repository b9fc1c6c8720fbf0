package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowgrid/flowfield"
	"github.com/katalvlaran/flowgrid/internal/buildinfo"
	"github.com/katalvlaran/flowgrid/render"
)

const (
	defaultAddr     = "localhost:8080"
	shutdownTimeout = 5 * time.Second
)

type serveOpts struct {
	fieldFlags
	addr string
}

// serveCommand exposes one live graph over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr}
	cmd := &cobra.Command{
		Use:   "serve <scenario>",
		Short: "Serve a live flow field over HTTP",
		Long: `Serve one scenario over HTTP. All requests share a single graph guarded by a mutex.

  GET  /healthz              liveness and version
  GET  /field                grid values and current distances
  GET  /dot?tree=            DOT export of adjacency or the parent tree
  GET  /path?x=&y=&trim=     path from (x,y) to the target
  POST /target {"x","y"}     move the target and rebuild the field
  POST /cells  {"x","y","value"}  change a cell and rebuild the field`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd.Context(), args[0], opts.fieldFlags)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			srv := &http.Server{
				Addr:              opts.addr,
				Handler:           newServer(s, logger).routes(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			printInfo(cmd.OutOrStdout(), "serving %s on http://%s", s.scenario.Name, opts.addr)
			return listen(cmd.Context(), srv, logger)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	return cmd
}

// listen runs srv until ctx is done, then shuts it down gracefully.
func listen(ctx context.Context, srv *http.Server, logger *log.Logger) error {
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

// server serializes all access to one session.
type server struct {
	mu     sync.Mutex
	s      *session
	logger *log.Logger
}

func newServer(s *session, logger *log.Logger) *server {
	return &server{s: s, logger: logger}
}

func (sv *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(sv.logRequests)

	r.Get("/healthz", sv.health)
	r.Get("/field", sv.field)
	r.Get("/dot", sv.dot)
	r.Get("/path", sv.path)
	r.Post("/target", sv.setTarget)
	r.Post("/cells", sv.setCell)
	return r
}

func (sv *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		sv.logger.Debug("request", "method", r.Method, "path", r.URL.Path,
			"status", ww.Status(), "elapsed", time.Since(start).Round(time.Microsecond))
	})
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type cellRequest struct {
	X     *int `json:"x"`
	Y     *int `json:"y"`
	Value *int `json:"value,omitempty"`
}

func (sv *server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Get().Version})
}

func (sv *server) field(w http.ResponseWriter, r *http.Request) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	writeJSON(w, http.StatusOK, render.NewSnapshot(sv.s.graph))
}

func (sv *server) dot(w http.ResponseWriter, r *http.Request) {
	tree, _ := strconv.ParseBool(r.URL.Query().Get("tree"))
	sv.mu.Lock()
	dot := render.ToDOT(sv.s.graph, render.DOTOptions{Tree: tree})
	sv.mu.Unlock()

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	_, _ = w.Write([]byte(dot))
}

func (sv *server) path(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	x, errX := strconv.Atoi(q.Get("x"))
	y, errY := strconv.Atoi(q.Get("y"))
	if errX != nil || errY != nil {
		writeError(w, http.StatusBadRequest, errors.New("x and y query parameters must be integers"))
		return
	}
	trim := false
	if v := q.Get("trim"); v != "" {
		var err error
		if trim, err = strconv.ParseBool(v); err != nil {
			writeError(w, http.StatusBadRequest, errors.New("trim must be a boolean"))
			return
		}
	}

	sv.mu.Lock()
	cells, err := sv.s.graph.BuildPathToTarget(x, y, trim)
	sv.mu.Unlock()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, render.NewPathView(flowfield.Point{X: x, Y: y}, trim, cells))
}

func (sv *server) setTarget(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCell(w, r, false)
	if !ok {
		return
	}

	sv.mu.Lock()
	defer sv.mu.Unlock()
	if err := sv.s.graph.BuildFlowField(*req.X, *req.Y); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	sv.s.target = flowfield.Point{X: *req.X, Y: *req.Y}
	writeJSON(w, http.StatusOK, render.NewSnapshot(sv.s.graph))
}

func (sv *server) setCell(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCell(w, r, true)
	if !ok {
		return
	}

	sv.mu.Lock()
	defer sv.mu.Unlock()
	g := sv.s.graph
	if err := g.SetValue(*req.X, *req.Y, *req.Value); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	_ = sv.s.scenario.Grid.SetCell(*req.X, *req.Y, *req.Value)
	if err := g.BuildFlowField(sv.s.target.X, sv.s.target.Y); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, render.NewSnapshot(g))
}

// decodeCell reads a cellRequest body, writing a 400 on failure.
func decodeCell(w http.ResponseWriter, r *http.Request, needValue bool) (cellRequest, bool) {
	var req cellRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return req, false
	}
	if req.X == nil || req.Y == nil || needValue && req.Value == nil {
		writeError(w, http.StatusBadRequest, errors.New("missing field"))
		return req, false
	}
	return req, true
}

// statusFor maps flowfield errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, flowfield.ErrInvalidCoordinate):
		return http.StatusBadRequest
	case errors.Is(err, flowfield.ErrNoPath):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
