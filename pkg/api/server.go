// pkg/api/server.go

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	httpx "github.com/mfreeman451/wifiradar/pkg/http"
	"github.com/mfreeman451/wifiradar/pkg/metrics"
	"github.com/mfreeman451/wifiradar/pkg/scanner"
)

const defaultStartInterval = 30 * time.Second

// Server exposes scanner control and scan results over HTTP.
type Server struct {
	control         Control
	toggle          PermissionToggle
	cycles          metrics.CycleStore
	log             Logger
	defaultInterval time.Duration
	origins         []string

	router *mux.Router
	hub    *streamHub
}

// ServerOption customizes a Server.
type ServerOption func(*Server)

// WithCycleStore makes the cycle history available on /api/metrics.
func WithCycleStore(store metrics.CycleStore) ServerOption {
	return func(s *Server) { s.cycles = store }
}

// WithPermissionToggle enables the /api/permissions endpoints.
func WithPermissionToggle(toggle PermissionToggle) ServerOption {
	return func(s *Server) { s.toggle = toggle }
}

// WithAPILogger routes request and stream logging.
func WithAPILogger(log Logger) ServerOption {
	return func(s *Server) { s.log = log }
}

// WithOrigins restricts CORS to the given origins.
func WithOrigins(origins []string) ServerOption {
	return func(s *Server) { s.origins = origins }
}

// WithDefaultInterval sets the interval used when a start request
// carries none.
func WithDefaultInterval(d time.Duration) ServerOption {
	return func(s *Server) { s.defaultInterval = d }
}

// NewServer builds the HTTP surface for the given scanner control.
func NewServer(control Control, opts ...ServerOption) *Server {
	s := &Server{
		control:         control,
		log:             noopLogger{},
		defaultInterval: defaultStartInterval,
		router:          mux.NewRouter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.hub = newStreamHub(s.log)
	s.control.AddListener(s.hub)
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(httpx.RequestLogging(s.log))

	s.router.HandleFunc("/api/status", s.getStatus).Methods("GET")
	s.router.HandleFunc("/api/networks", s.getNetworks).Methods("GET")
	s.router.HandleFunc("/api/metrics", s.getMetrics).Methods("GET")

	s.router.HandleFunc("/api/scan", s.postScan).Methods("POST")
	s.router.HandleFunc("/api/scanner/start", s.postStart).Methods("POST")
	s.router.HandleFunc("/api/scanner/stop", s.postStop).Methods("POST")
	s.router.HandleFunc("/api/scanner/pause", s.postPause).Methods("POST")
	s.router.HandleFunc("/api/scanner/resume", s.postResume).Methods("POST")

	s.router.HandleFunc("/api/permissions", s.getPermissions).Methods("GET")
	s.router.HandleFunc("/api/permissions", s.postPermissions).Methods("POST")

	s.router.HandleFunc("/api/stream", s.handleStream).Methods("GET")
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler {
	return httpx.CommonMiddleware(s.router, s.origins...)
}

// Close detaches the stream hub from the scanner and drops all
// connected stream clients.
func (s *Server) Close() {
	s.control.RemoveListener(s.hub)
	s.hub.close()
}

func (s *Server) getStatus(w http.ResponseWriter, _ *http.Request) {
	resp := StatusResponse{
		Status:       s.control.Status(),
		ScansAllowed: s.toggle == nil || s.toggle.Allowed(),
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getNetworks(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.control.LastBatch())
}

func (s *Server) getMetrics(w http.ResponseWriter, _ *http.Request) {
	if s.cycles == nil {
		s.writeError(w, http.StatusNotFound, "cycle history is disabled")
		return
	}

	s.writeJSON(w, http.StatusOK, s.cycles.GetCycles())
}

func (s *Server) postScan(w http.ResponseWriter, r *http.Request) {
	if err := s.control.ScanOnce(r.Context()); err != nil {
		s.writeScannerError(w, err)
		return
	}

	s.writeJSON(w, http.StatusAccepted, s.control.Status())
}

func (s *Server) postStart(w http.ResponseWriter, r *http.Request) {
	var req StartRequest

	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	interval := time.Duration(req.Interval)
	if interval == 0 {
		interval = s.defaultInterval
	}

	if err := s.control.StartScanning(r.Context(), interval); err != nil {
		s.writeScannerError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, s.control.Status())
}

func (s *Server) postStop(w http.ResponseWriter, _ *http.Request) {
	s.control.StopScanning()
	s.writeJSON(w, http.StatusOK, s.control.Status())
}

func (s *Server) postPause(w http.ResponseWriter, _ *http.Request) {
	s.control.Pause()
	s.writeJSON(w, http.StatusOK, s.control.Status())
}

func (s *Server) postResume(w http.ResponseWriter, _ *http.Request) {
	s.control.Resume()
	s.writeJSON(w, http.StatusOK, s.control.Status())
}

func (s *Server) getPermissions(w http.ResponseWriter, _ *http.Request) {
	if s.toggle == nil {
		s.writeError(w, http.StatusNotFound, "permission toggle is not configured")
		return
	}

	s.writeJSON(w, http.StatusOK, PermissionRequest{Allow: s.toggle.Allowed()})
}

func (s *Server) postPermissions(w http.ResponseWriter, r *http.Request) {
	if s.toggle == nil {
		s.writeError(w, http.StatusNotFound, "permission toggle is not configured")
		return
	}

	var req PermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.toggle.SetAllowed(req.Allow)
	s.log.Infof("scan permission set to %v", req.Allow)

	s.writeJSON(w, http.StatusOK, PermissionRequest{Allow: s.toggle.Allowed()})
}

// writeScannerError maps scanner sentinels onto HTTP status codes.
func (s *Server) writeScannerError(w http.ResponseWriter, err error) {
	var code int

	switch {
	case errors.Is(err, scanner.ErrInvalidInterval):
		code = http.StatusBadRequest
	case errors.Is(err, scanner.ErrPermissionDenied):
		code = http.StatusForbidden
	case errors.Is(err, scanner.ErrTriggerRejected):
		code = http.StatusConflict
	case errors.Is(err, scanner.ErrRadioDisabled), errors.Is(err, scanner.ErrNotRunning):
		code = http.StatusServiceUnavailable
	default:
		code = http.StatusInternalServerError
	}

	s.writeError(w, code, err.Error())
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, ErrorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Errorf("failed to encode response: %v", err)
	}
}
