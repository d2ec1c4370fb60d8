package httpserver

import (
	"encoding/json"
	"io"
	"net/http"

	studiohttp "adforge/contexts/ad-production/campaign-studio/transport/http"
)

func (s *Server) registerStudioRoutes() {
	s.mux.HandleFunc("GET /api/studio/v1/offers", s.handleListOffers)
	s.mux.HandleFunc("POST /api/studio/v1/offers", s.handleCreateOffer)
	s.mux.HandleFunc("POST /api/studio/v1/offers/build", s.handleBuildOffer)
	s.mux.HandleFunc("GET /api/studio/v1/offers/{offer_id}", s.handleGetOffer)
	s.mux.HandleFunc("PUT /api/studio/v1/offers/{offer_id}", s.handleUpdateOffer)
	s.mux.HandleFunc("DELETE /api/studio/v1/offers/{offer_id}", s.handleDeleteOffer)

	s.mux.HandleFunc("GET /api/studio/v1/avatars", s.handleListAvatars)
	s.mux.HandleFunc("POST /api/studio/v1/avatars", s.handleCreateAvatar)
	s.mux.HandleFunc("POST /api/studio/v1/avatars/build", s.handleBuildAvatar)
	s.mux.HandleFunc("GET /api/studio/v1/avatars/{avatar_id}", s.handleGetAvatar)
	s.mux.HandleFunc("PUT /api/studio/v1/avatars/{avatar_id}", s.handleUpdateAvatar)
	s.mux.HandleFunc("DELETE /api/studio/v1/avatars/{avatar_id}", s.handleDeleteAvatar)
	s.mux.HandleFunc("GET /api/studio/v1/avatars/{avatar_id}/brief", s.handleRenderBrief)

	s.mux.HandleFunc("GET /api/studio/v1/campaigns", s.handleListCampaigns)
	s.mux.HandleFunc("POST /api/studio/v1/campaigns", s.handleCreateCampaign)
	s.mux.HandleFunc("GET /api/studio/v1/campaigns/{campaign_id}", s.handleGetCampaignState)
	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/phase", s.handleAdvancePhase)

	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/hooks", s.handleGenerateHooks)
	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/hooks/select", s.handleSelectHook)

	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/scripts", s.handleGenerateScript)
	s.mux.HandleFunc("PUT /api/studio/v1/campaigns/{campaign_id}/scripts/{script_id}", s.handleUpdateScript)
	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/scripts/{script_id}/approve", s.handleApproveScript)
	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/scripts/approve", s.handleApproveAllScripts)

	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/consistency", s.handleGenerateConsistency)
	s.mux.HandleFunc("PUT /api/studio/v1/campaigns/{campaign_id}/consistency", s.handleUpdateConsistency)
	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/consistency/lock", s.handleLockConsistency)

	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/keyframes", s.handleGenerateKeyframes)
	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/keyframes/select", s.handleSelectKeyframe)

	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/transitions", s.handleGenerateTransitions)
	s.mux.HandleFunc("PUT /api/studio/v1/campaigns/{campaign_id}/transitions/{prompt_id}", s.handleEditTransition)

	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/storyboard", s.handleAssembleStoryboard)
	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/storyboard/approve", s.handleApproveStoryboard)

	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/segments", s.handleGenerateVideo)
	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/segments/{segment_id}/approve", s.handleApproveSegment)
	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/segments/{segment_id}/regenerate", s.handleRegenerateSegment)

	s.mux.HandleFunc("POST /api/studio/v1/campaigns/{campaign_id}/export", s.handleExport)

	s.mux.HandleFunc("POST /api/studio/v1/operations", s.handleOperation)
}

func (s *Server) handleListOffers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.ListOffersHandler(r.Context())
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateOffer(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.SaveOfferRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.CreateOfferHandler(r.Context(), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleBuildOffer(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.BuildOfferRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.BuildOfferHandler(r.Context(), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetOffer(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.GetOfferHandler(r.Context(), r.PathValue("offer_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateOffer(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.SaveOfferRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.UpdateOfferHandler(r.Context(), r.PathValue("offer_id"), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteOffer(w http.ResponseWriter, r *http.Request) {
	if err := s.studio.Handler.DeleteOfferHandler(r.Context(), r.PathValue("offer_id")); err != nil {
		writeStudioDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListAvatars(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.ListAvatarsHandler(r.Context())
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateAvatar(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.SaveAvatarRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.CreateAvatarHandler(r.Context(), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleBuildAvatar(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.BuildAvatarRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.BuildAvatarHandler(r.Context(), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetAvatar(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.GetAvatarHandler(r.Context(), r.PathValue("avatar_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateAvatar(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.SaveAvatarRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.UpdateAvatarHandler(r.Context(), r.PathValue("avatar_id"), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteAvatar(w http.ResponseWriter, r *http.Request) {
	if err := s.studio.Handler.DeleteAvatarHandler(r.Context(), r.PathValue("avatar_id")); err != nil {
		writeStudioDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenderBrief(w http.ResponseWriter, r *http.Request) {
	html, err := s.studio.Handler.RenderBriefHandler(r.Context(), r.PathValue("avatar_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, html)
}

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.ListCampaignsHandler(r.Context())
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.CreateCampaignRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.CreateCampaignHandler(r.Context(), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetCampaignState(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.GetCampaignStateHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdvancePhase(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.AdvancePhaseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.AdvancePhaseHandler(r.Context(), r.PathValue("campaign_id"), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGenerateHooks(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.GenerateHooksHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSelectHook(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.SelectHookRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.SelectHookHandler(r.Context(), r.PathValue("campaign_id"), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGenerateScript(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.GenerateScriptHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateScript(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.UpdateScriptRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.UpdateScriptHandler(r.Context(), r.PathValue("campaign_id"), r.PathValue("script_id"), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApproveScript(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.ApproveScriptHandler(r.Context(), r.PathValue("campaign_id"), r.PathValue("script_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApproveAllScripts(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.ApproveScriptHandler(r.Context(), r.PathValue("campaign_id"), "")
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGenerateConsistency(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.GenerateConsistencyHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateConsistency(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeStudioError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.studio.Handler.UpdateConsistencyHandler(r.Context(), r.PathValue("campaign_id"), body)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLockConsistency(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.LockConsistencyHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGenerateKeyframes(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.GenerateKeyframesRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.GenerateKeyframesHandler(r.Context(), r.PathValue("campaign_id"), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSelectKeyframe(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.SelectKeyframeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.SelectKeyframeHandler(r.Context(), r.PathValue("campaign_id"), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGenerateTransitions(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.GenerateTransitionsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.GenerateTransitionsHandler(r.Context(), r.PathValue("campaign_id"), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleEditTransition(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.EditTransitionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.EditTransitionHandler(r.Context(), r.PathValue("campaign_id"), r.PathValue("prompt_id"), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAssembleStoryboard(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.AssembleStoryboardHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleApproveStoryboard(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.ApproveStoryboardHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGenerateVideo(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.GenerateVideoHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleApproveSegment(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.ApproveSegmentHandler(r.Context(), r.PathValue("campaign_id"), r.PathValue("segment_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegenerateSegment(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.RegenerateSegmentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.RegenerateSegmentHandler(r.Context(), r.PathValue("campaign_id"), r.PathValue("segment_id"), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	resp, err := s.studio.Handler.ExportHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOperation(w http.ResponseWriter, r *http.Request) {
	var req studiohttp.OperationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.studio.Handler.OperationHandler(r.Context(), req)
	if err != nil {
		writeStudioDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeStudioError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}
