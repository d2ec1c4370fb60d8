package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	campaignstudio "adforge/contexts/ad-production/campaign-studio"
	studioerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
	studiohttp "adforge/contexts/ad-production/campaign-studio/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "adforge/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	studio campaignstudio.Module
}

func New(studio campaignstudio.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		studio: studio,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.registerStudioRoutes()
	s.registerWebhookRoutes()
}

func writeStudioDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, studioerrors.ErrCampaignNotFound),
		errors.Is(err, studioerrors.ErrOfferNotFound),
		errors.Is(err, studioerrors.ErrAvatarNotFound),
		errors.Is(err, studioerrors.ErrScriptNotFound),
		errors.Is(err, studioerrors.ErrHookOptionNotFound),
		errors.Is(err, studioerrors.ErrKeyframeNotFound),
		errors.Is(err, studioerrors.ErrTransitionNotFound),
		errors.Is(err, studioerrors.ErrSegmentNotFound),
		errors.Is(err, studioerrors.ErrTaskNotFound):
		writeStudioError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, studioerrors.ErrPhaseViolation):
		writeStudioError(w, http.StatusConflict, "phase_violation", err.Error())
	case errors.Is(err, studioerrors.ErrPreconditionFailed):
		writeStudioError(w, http.StatusConflict, "precondition_failed", err.Error())
	case errors.Is(err, studioerrors.ErrInvalidInput):
		writeStudioError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, studioerrors.ErrUnknownOperation):
		writeStudioError(w, http.StatusBadRequest, "unknown_operation", err.Error())
	case errors.Is(err, studioerrors.ErrGenerationFailed):
		writeStudioError(w, http.StatusBadGateway, "generation_failed", err.Error())
	default:
		writeStudioError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeStudioError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, studiohttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
