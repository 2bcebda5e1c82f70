package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/amanranjan113114/qr-generator/internal/metrics"
	"github.com/amanranjan113114/qr-generator/internal/payload"
	"github.com/amanranjan113114/qr-generator/internal/qr"
	"github.com/amanranjan113114/qr-generator/pkg/binder"
	"github.com/amanranjan113114/qr-generator/pkg/logger"
	"github.com/amanranjan113114/qr-generator/pkg/requestid"
)

// Server holds the HTTP handlers of the QR generation API.
type Server struct {
	log     *slog.Logger
	metrics *metrics.Metrics
	bindQR  func(r *http.Request, v any) error
}

// New creates a Server. A nil logger disables request logging; nil metrics
// disable instrumentation and the /metrics endpoint.
func New(log *slog.Logger, m *metrics.Metrics) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		log:     log.With(logger.Component("api")),
		metrics: m,
		bindQR:  binder.JSON(),
	}
}

// Router assembles the service's route tree.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/qr", s.generateQR)
		r.Get("/health", s.health)
	})
	return r
}

// health reports service liveness. No side effects.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// generateQR validates the request, formats the payload content, and streams
// back the rendered image.
func (s *Server) generateQR(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := s.bindQR(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	level, format, opts, err := req.normalize()
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	spec, err := payload.Resolve(req.Type, req.Data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	matrix, err := qr.Encode(spec, level)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var img []byte
	switch format {
	case qr.FormatSVG:
		img, err = qr.SVG(matrix, opts)
	default:
		img, err = qr.PNG(matrix, opts)
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if s.metrics != nil {
		s.metrics.QRGenerated(string(req.Type), string(format))
	}
	s.log.DebugContext(r.Context(), "QR code generated",
		slog.String("type", string(req.Type)),
		slog.String("format", string(format)),
		slog.Int("bytes", len(img)),
		logger.RequestID(requestid.FromContext(r.Context())),
	)

	writeImage(w, img, format.ContentType(), "qr."+format.Ext())
}

// respondError maps the error to its HTTP shape and logs it: client errors at
// WARN, server errors at ERROR.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := classifyError(err)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.log.LogAttrs(r.Context(), level, "request failed",
		logger.Error(err),
		slog.Int("status_code", status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.RequestID(requestid.FromContext(r.Context())),
	)

	_ = writeJSON(w, status, errorEnvelope{Error: detail})
}
