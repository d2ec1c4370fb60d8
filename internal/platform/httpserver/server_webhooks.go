package httpserver

import (
	"net/http"

	studiohttp "adforge/contexts/ad-production/campaign-studio/transport/http"
)

func (s *Server) registerWebhookRoutes() {
	s.mux.HandleFunc("POST /webhooks/generation", s.handleGenerationWebhook)
	// Freepik posts to the path it was given at submit time.
	s.mux.HandleFunc("POST /api/adforge/webhooks/freepik", s.handleGenerationWebhook)
}

func (s *Server) handleGenerationWebhook(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.ProviderWebhookRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.studio.Handler.ProviderWebhookHandler(r.Context(), req); err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}
