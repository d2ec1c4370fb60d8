package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"adforge/contexts/ad-production/campaign-studio/application/commands"
	"adforge/contexts/ad-production/campaign-studio/application/operations"
	"adforge/contexts/ad-production/campaign-studio/application/queries"
	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	domainerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
	httptransport "adforge/contexts/ad-production/campaign-studio/transport/http"
)

// Handler maps transport DTOs onto use cases. Request structs are validated
// before any use case runs.
type Handler struct {
	SaveOffer           commands.SaveOfferUseCase
	SaveAvatar          commands.SaveAvatarUseCase
	BuildOffer          commands.BuildOfferUseCase
	BuildAvatar         commands.BuildAvatarUseCase
	CreateCampaign      commands.CreateCampaignUseCase
	AdvancePhase        commands.AdvancePhaseUseCase
	GenerateHooks       commands.GenerateHooksUseCase
	SelectHook          commands.SelectHookUseCase
	GenerateScript      commands.GenerateScriptUseCase
	UpdateScript        commands.UpdateScriptUseCase
	ApproveScript       commands.ApproveScriptUseCase
	GenerateConsistency commands.GenerateConsistencySpecUseCase
	UpdateConsistency   commands.UpdateConsistencySpecUseCase
	LockConsistency     commands.LockConsistencySpecUseCase
	GenerateKeyframes   commands.GenerateKeyframesUseCase
	SelectKeyframe      commands.SelectKeyframeUseCase
	GenerateTransitions commands.GenerateTransitionsUseCase
	EditTransition      commands.EditTransitionUseCase
	AssembleStoryboard  commands.AssembleStoryboardUseCase
	ApproveStoryboard   commands.ApproveStoryboardUseCase
	GenerateVideo       commands.GenerateVideoUseCase
	ApproveSegment      commands.ApproveSegmentUseCase
	RegenerateSegment   commands.RegenerateSegmentUseCase
	Export              commands.ExportCampaignUseCase
	CompleteByTask      commands.CompleteGenerationByTaskUseCase

	GetCampaignState queries.GetCampaignStateUseCase
	ListCampaigns    queries.ListCampaignsUseCase
	GetOffer         queries.GetOfferUseCase
	ListOffers       queries.ListOffersUseCase
	GetAvatar        queries.GetAvatarUseCase
	ListAvatars      queries.ListAvatarsUseCase
	RenderBrief      queries.RenderAvatarBriefUseCase

	Operations operations.Dispatcher

	Validate *validator.Validate
	Logger   *slog.Logger
}

func (h Handler) validate(req any) error {
	if h.Validate == nil {
		return nil
	}
	if err := h.Validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrInvalidInput, err)
	}
	return nil
}

func (h Handler) CreateOfferHandler(ctx context.Context, req httptransport.SaveOfferRequest) (httptransport.OfferDTO, error) {
	if err := h.validate(req); err != nil {
		return httptransport.OfferDTO{}, err
	}
	offer, err := h.SaveOffer.Create(ctx, offerFromRequest("", req))
	if err != nil {
		return httptransport.OfferDTO{}, err
	}
	return mapOffer(offer), nil
}

func (h Handler) UpdateOfferHandler(ctx context.Context, offerID string, req httptransport.SaveOfferRequest) (httptransport.OfferDTO, error) {
	if err := h.validate(req); err != nil {
		return httptransport.OfferDTO{}, err
	}
	offer, err := h.SaveOffer.Update(ctx, offerFromRequest(offerID, req))
	if err != nil {
		return httptransport.OfferDTO{}, err
	}
	return mapOffer(offer), nil
}

func (h Handler) DeleteOfferHandler(ctx context.Context, offerID string) error {
	return h.SaveOffer.Delete(ctx, offerID)
}

func (h Handler) GetOfferHandler(ctx context.Context, offerID string) (httptransport.OfferDTO, error) {
	offer, err := h.GetOffer.Execute(ctx, offerID)
	if err != nil {
		return httptransport.OfferDTO{}, err
	}
	return mapOffer(offer), nil
}

func (h Handler) ListOffersHandler(ctx context.Context) ([]httptransport.OfferDTO, error) {
	offers, err := h.ListOffers.Execute(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.OfferDTO, 0, len(offers))
	for _, offer := range offers {
		items = append(items, mapOffer(offer))
	}
	return items, nil
}

func (h Handler) BuildOfferHandler(ctx context.Context, req httptransport.BuildOfferRequest) (httptransport.OfferDTO, error) {
	if err := h.validate(req); err != nil {
		return httptransport.OfferDTO{}, err
	}
	offer, err := h.BuildOffer.Execute(ctx, commands.BuildOfferCommand{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		TargetAudience:     req.TargetAudience,
		UserNotes:          req.UserNotes,
	})
	if err != nil {
		return httptransport.OfferDTO{}, err
	}
	return mapOffer(offer), nil
}

func (h Handler) CreateAvatarHandler(ctx context.Context, req httptransport.SaveAvatarRequest) (httptransport.AvatarDTO, error) {
	if err := h.validate(req); err != nil {
		return httptransport.AvatarDTO{}, err
	}
	avatar, err := h.SaveAvatar.Create(ctx, avatarFromRequest("", req))
	if err != nil {
		return httptransport.AvatarDTO{}, err
	}
	return mapAvatar(avatar), nil
}

func (h Handler) UpdateAvatarHandler(ctx context.Context, avatarID string, req httptransport.SaveAvatarRequest) (httptransport.AvatarDTO, error) {
	if err := h.validate(req); err != nil {
		return httptransport.AvatarDTO{}, err
	}
	avatar, err := h.SaveAvatar.Update(ctx, avatarFromRequest(avatarID, req))
	if err != nil {
		return httptransport.AvatarDTO{}, err
	}
	return mapAvatar(avatar), nil
}

func (h Handler) DeleteAvatarHandler(ctx context.Context, avatarID string) error {
	return h.SaveAvatar.Delete(ctx, avatarID)
}

func (h Handler) GetAvatarHandler(ctx context.Context, avatarID string) (httptransport.AvatarDTO, error) {
	avatar, err := h.GetAvatar.Execute(ctx, avatarID)
	if err != nil {
		return httptransport.AvatarDTO{}, err
	}
	return mapAvatar(avatar), nil
}

func (h Handler) ListAvatarsHandler(ctx context.Context) ([]httptransport.AvatarDTO, error) {
	avatars, err := h.ListAvatars.Execute(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.AvatarDTO, 0, len(avatars))
	for _, avatar := range avatars {
		items = append(items, mapAvatar(avatar))
	}
	return items, nil
}

func (h Handler) BuildAvatarHandler(ctx context.Context, req httptransport.BuildAvatarRequest) (httptransport.AvatarDTO, error) {
	if err := h.validate(req); err != nil {
		return httptransport.AvatarDTO{}, err
	}
	avatar, err := h.BuildAvatar.Execute(ctx, commands.BuildAvatarCommand{
		OfferID:           req.OfferID,
		TargetDescription: req.TargetDescription,
		Industry:          req.Industry,
		UserNotes:         req.UserNotes,
	})
	if err != nil {
		return httptransport.AvatarDTO{}, err
	}
	return mapAvatar(avatar), nil
}

func (h Handler) RenderBriefHandler(ctx context.Context, avatarID string) (string, error) {
	return h.RenderBrief.Execute(ctx, avatarID)
}

func (h Handler) CreateCampaignHandler(ctx context.Context, req httptransport.CreateCampaignRequest) (httptransport.CampaignDTO, error) {
	if err := h.validate(req); err != nil {
		return httptransport.CampaignDTO{}, err
	}
	cmd := commands.CreateCampaignCommand{
		OfferID:         req.OfferID,
		AvatarID:        req.AvatarID,
		AdFormat:        entities.AdFormat(req.AdFormat),
		SkipConsistency: req.SkipConsistency,
	}
	if req.Durations != nil {
		cmd.Durations = &entities.DurationAllocation{
			Hook:        req.Durations.Hook,
			Problem:     req.Durations.Problem,
			Solution:    req.Durations.Solution,
			SocialProof: req.Durations.SocialProof,
			CTA:         req.Durations.CTA,
		}
	}
	campaign, err := h.CreateCampaign.Execute(ctx, cmd)
	if err != nil {
		return httptransport.CampaignDTO{}, err
	}
	return mapCampaign(campaign), nil
}

func (h Handler) ListCampaignsHandler(ctx context.Context) ([]httptransport.CampaignDTO, error) {
	campaigns, err := h.ListCampaigns.Execute(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.CampaignDTO, 0, len(campaigns))
	for _, campaign := range campaigns {
		items = append(items, mapCampaign(campaign))
	}
	return items, nil
}

func (h Handler) GetCampaignStateHandler(ctx context.Context, campaignID string) (httptransport.CampaignStateResponse, error) {
	state, err := h.GetCampaignState.Execute(ctx, queries.GetCampaignStateQuery{CampaignID: campaignID})
	if err != nil {
		return httptransport.CampaignStateResponse{}, err
	}
	return mapCampaignState(state), nil
}

func (h Handler) AdvancePhaseHandler(ctx context.Context, campaignID string, req httptransport.AdvancePhaseRequest) (httptransport.CampaignDTO, error) {
	if err := h.validate(req); err != nil {
		return httptransport.CampaignDTO{}, err
	}
	target, ok := entities.ParsePhase(req.Target)
	if !ok {
		return httptransport.CampaignDTO{}, fmt.Errorf("%w: unknown phase %q", domainerrors.ErrInvalidInput, req.Target)
	}
	campaign, err := h.AdvancePhase.Execute(ctx, commands.AdvancePhaseCommand{
		CampaignID: campaignID,
		Target:     target,
	})
	if err != nil {
		return httptransport.CampaignDTO{}, err
	}
	return mapCampaign(campaign), nil
}

func (h Handler) GenerateHooksHandler(ctx context.Context, campaignID string) ([]httptransport.HookOptionDTO, error) {
	options, err := h.GenerateHooks.Execute(ctx, commands.GenerateHooksCommand{CampaignID: campaignID})
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.HookOptionDTO, 0, len(options))
	for _, option := range options {
		items = append(items, mapHookOption(option))
	}
	return items, nil
}

func (h Handler) SelectHookHandler(ctx context.Context, campaignID string, req httptransport.SelectHookRequest) (httptransport.HookOptionDTO, error) {
	if err := h.validate(req); err != nil {
		return httptransport.HookOptionDTO{}, err
	}
	option, err := h.SelectHook.Execute(ctx, commands.SelectHookCommand{
		CampaignID: campaignID,
		HookID:     req.HookID,
	})
	if err != nil {
		return httptransport.HookOptionDTO{}, err
	}
	return mapHookOption(option), nil
}

func (h Handler) GenerateScriptHandler(ctx context.Context, campaignID string) ([]httptransport.ScriptDTO, error) {
	scripts, err := h.GenerateScript.Execute(ctx, commands.GenerateScriptCommand{CampaignID: campaignID})
	if err != nil {
		return nil, err
	}
	return mapScripts(scripts), nil
}

func (h Handler) UpdateScriptHandler(ctx context.Context, campaignID, scriptID string, req httptransport.UpdateScriptRequest) (httptransport.ScriptDTO, error) {
	script, err := h.UpdateScript.Execute(ctx, commands.UpdateScriptCommand{
		CampaignID:        campaignID,
		ScriptID:          scriptID,
		CopyText:          req.CopyText,
		VisualDescription: req.VisualDescription,
	})
	if err != nil {
		return httptransport.ScriptDTO{}, err
	}
	return mapScript(script), nil
}

func (h Handler) ApproveScriptHandler(ctx context.Context, campaignID, scriptID string) ([]httptransport.ScriptDTO, error) {
	scripts, err := h.ApproveScript.Execute(ctx, commands.ApproveScriptCommand{
		CampaignID: campaignID,
		ScriptID:   scriptID,
	})
	if err != nil {
		return nil, err
	}
	return mapScripts(scripts), nil
}

func (h Handler) GenerateConsistencyHandler(ctx context.Context, campaignID string) (json.RawMessage, error) {
	spec, err := h.GenerateConsistency.Execute(ctx, commands.GenerateConsistencySpecCommand{CampaignID: campaignID})
	if err != nil {
		return nil, err
	}
	return marshalRaw(spec), nil
}

func (h Handler) UpdateConsistencyHandler(ctx context.Context, campaignID string, body json.RawMessage) (json.RawMessage, error) {
	var spec entities.ConsistencySpec
	if err := json.Unmarshal(body, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrInvalidInput, err)
	}
	updated, err := h.UpdateConsistency.Execute(ctx, commands.UpdateConsistencySpecCommand{
		CampaignID: campaignID,
		Spec:       spec,
	})
	if err != nil {
		return nil, err
	}
	return marshalRaw(updated), nil
}

func (h Handler) LockConsistencyHandler(ctx context.Context, campaignID string) (json.RawMessage, error) {
	spec, err := h.LockConsistency.Execute(ctx, commands.LockConsistencySpecCommand{CampaignID: campaignID})
	if err != nil {
		return nil, err
	}
	return marshalRaw(spec), nil
}

func (h Handler) GenerateKeyframesHandler(ctx context.Context, campaignID string, req httptransport.GenerateKeyframesRequest) ([]httptransport.KeyframeDTO, error) {
	if err := h.validate(req); err != nil {
		return nil, err
	}
	keyframes, err := h.GenerateKeyframes.Execute(ctx, commands.GenerateKeyframesCommand{
		CampaignID: campaignID,
		Section:    entities.Section(req.Section),
		Position:   entities.Position(req.Position),
	})
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.KeyframeDTO, 0, len(keyframes))
	for _, keyframe := range keyframes {
		items = append(items, mapKeyframe(keyframe))
	}
	return items, nil
}

func (h Handler) SelectKeyframeHandler(ctx context.Context, campaignID string, req httptransport.SelectKeyframeRequest) (httptransport.SelectKeyframeResponse, error) {
	if err := h.validate(req); err != nil {
		return httptransport.SelectKeyframeResponse{}, err
	}
	result, err := h.SelectKeyframe.Execute(ctx, commands.SelectKeyframeCommand{
		CampaignID: campaignID,
		KeyframeID: req.KeyframeID,
	})
	if err != nil {
		return httptransport.SelectKeyframeResponse{}, err
	}
	resp := httptransport.SelectKeyframeResponse{
		Selected: mapKeyframe(result.Selected),
		Complete: result.Complete,
	}
	if result.NextSection != nil {
		section := string(*result.NextSection)
		resp.NextSection = &section
	}
	if result.NextPosition != nil {
		position := string(*result.NextPosition)
		resp.NextPosition = &position
	}
	return resp, nil
}

func (h Handler) GenerateTransitionsHandler(ctx context.Context, campaignID string, req httptransport.GenerateTransitionsRequest) ([]httptransport.TransitionPromptDTO, error) {
	if err := h.validate(req); err != nil {
		return nil, err
	}
	prompts, err := h.GenerateTransitions.Execute(ctx, commands.GenerateTransitionsCommand{
		CampaignID: campaignID,
		Section:    entities.Section(req.Section),
	})
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.TransitionPromptDTO, 0, len(prompts))
	for _, prompt := range prompts {
		items = append(items, mapTransition(prompt))
	}
	return items, nil
}

func (h Handler) EditTransitionHandler(ctx context.Context, campaignID, promptID string, req httptransport.EditTransitionRequest) (httptransport.TransitionPromptDTO, error) {
	if err := h.validate(req); err != nil {
		return httptransport.TransitionPromptDTO{}, err
	}
	prompt, err := h.EditTransition.Execute(ctx, commands.EditTransitionCommand{
		CampaignID: campaignID,
		PromptID:   promptID,
		Text:       req.Text,
	})
	if err != nil {
		return httptransport.TransitionPromptDTO{}, err
	}
	return mapTransition(prompt), nil
}

func (h Handler) AssembleStoryboardHandler(ctx context.Context, campaignID string) (json.RawMessage, error) {
	board, err := h.AssembleStoryboard.Execute(ctx, commands.AssembleStoryboardCommand{CampaignID: campaignID})
	if err != nil {
		return nil, err
	}
	return marshalRaw(board), nil
}

func (h Handler) ApproveStoryboardHandler(ctx context.Context, campaignID string) (json.RawMessage, error) {
	board, err := h.ApproveStoryboard.Execute(ctx, commands.ApproveStoryboardCommand{CampaignID: campaignID})
	if err != nil {
		return nil, err
	}
	return marshalRaw(board), nil
}

func (h Handler) GenerateVideoHandler(ctx context.Context, campaignID string) ([]httptransport.VideoSegmentDTO, error) {
	segments, err := h.GenerateVideo.Execute(ctx, commands.GenerateVideoCommand{CampaignID: campaignID})
	if err != nil {
		return nil, err
	}
	return mapSegments(segments), nil
}

func (h Handler) ApproveSegmentHandler(ctx context.Context, campaignID, segmentID string) (httptransport.VideoSegmentDTO, error) {
	segment, err := h.ApproveSegment.Execute(ctx, commands.ApproveSegmentCommand{
		CampaignID: campaignID,
		SegmentID:  segmentID,
	})
	if err != nil {
		return httptransport.VideoSegmentDTO{}, err
	}
	return mapSegment(segment), nil
}

func (h Handler) RegenerateSegmentHandler(ctx context.Context, campaignID, segmentID string, req httptransport.RegenerateSegmentRequest) (httptransport.VideoSegmentDTO, error) {
	segment, err := h.RegenerateSegment.Execute(ctx, commands.RegenerateSegmentCommand{
		CampaignID:     campaignID,
		SegmentID:      segmentID,
		PromptOverride: req.PromptOverride,
	})
	if err != nil {
		return httptransport.VideoSegmentDTO{}, err
	}
	return mapSegment(segment), nil
}

func (h Handler) ExportHandler(ctx context.Context, campaignID string) (httptransport.ExportResponse, error) {
	manifest, err := h.Export.Execute(ctx, commands.ExportCampaignCommand{CampaignID: campaignID})
	if err != nil {
		return httptransport.ExportResponse{}, err
	}
	return httptransport.ExportResponse{
		CampaignID:    manifest.CampaignID,
		TotalDuration: manifest.TotalDuration,
		Segments:      mapSegments(manifest.Segments),
	}, nil
}

func (h Handler) OperationHandler(ctx context.Context, req httptransport.OperationRequest) (any, error) {
	if err := h.validate(req); err != nil {
		return nil, err
	}
	return h.Operations.Execute(ctx, req.Operation, req.Payload)
}

func (h Handler) ProviderWebhookHandler(ctx context.Context, req httptransport.ProviderWebhookRequest) error {
	if err := h.validate(req); err != nil {
		return err
	}
	return h.CompleteByTask.Execute(ctx, commands.CompleteGenerationByTaskCommand{
		ProviderTaskID: req.TaskID,
		Status:         req.Status,
		ResultURL:      req.ResultURL,
	})
}

func mapOffer(item entities.Offer) httptransport.OfferDTO {
	return httptransport.OfferDTO{
		OfferID:             item.OfferID,
		Name:                item.Name,
		ProductName:         item.ProductName,
		DreamOutcome:        item.DreamOutcome,
		PerceivedLikelihood: item.PerceivedLikelihood,
		TimeDelay:           item.TimeDelay,
		EffortSacrifice:     item.EffortSacrifice,
		Summary:             item.Summary,
		KeySellingPoints:    item.KeySellingPoints,
		CreatedAt:           formatTime(item.CreatedAt),
		UpdatedAt:           formatTime(item.UpdatedAt),
	}
}

func offerFromRequest(offerID string, req httptransport.SaveOfferRequest) entities.Offer {
	return entities.Offer{
		OfferID:             offerID,
		Name:                req.Name,
		ProductName:         req.ProductName,
		DreamOutcome:        req.DreamOutcome,
		PerceivedLikelihood: req.PerceivedLikelihood,
		TimeDelay:           req.TimeDelay,
		EffortSacrifice:     req.EffortSacrifice,
		Summary:             req.Summary,
		KeySellingPoints:    append([]string(nil), req.KeySellingPoints...),
	}
}

func mapAvatar(item entities.Avatar) httptransport.AvatarDTO {
	return httptransport.AvatarDTO{
		AvatarID: item.AvatarID,
		Name:     item.Name,
		Demographics: httptransport.DemographicsDTO{
			Age:      item.Demographics.Age,
			Income:   item.Demographics.Income,
			Location: item.Demographics.Location,
			JobTitle: item.Demographics.JobTitle,
			Gender:   item.Demographics.Gender,
		},
		Psychographics: httptransport.PsychographicsDTO{
			Values:    item.Psychographics.Values,
			Fears:     item.Psychographics.Fears,
			Worldview: item.Psychographics.Worldview,
		},
		PainPoints:       item.PainPoints,
		FailedSolutions:  item.FailedSolutions,
		LanguagePatterns: item.LanguagePatterns,
		Objections:       item.Objections,
		TriggerEvents:    item.TriggerEvents,
		Aspirations:      item.Aspirations,
		FullBriefMD:      item.FullBriefMD,
		CreatedAt:        formatTime(item.CreatedAt),
		UpdatedAt:        formatTime(item.UpdatedAt),
	}
}

func avatarFromRequest(avatarID string, req httptransport.SaveAvatarRequest) entities.Avatar {
	return entities.Avatar{
		AvatarID: avatarID,
		Name:     req.Name,
		Demographics: entities.Demographics{
			Age:      req.Demographics.Age,
			Income:   req.Demographics.Income,
			Location: req.Demographics.Location,
			JobTitle: req.Demographics.JobTitle,
			Gender:   req.Demographics.Gender,
		},
		Psychographics: entities.Psychographics{
			Values:    append([]string(nil), req.Psychographics.Values...),
			Fears:     append([]string(nil), req.Psychographics.Fears...),
			Worldview: req.Psychographics.Worldview,
		},
		PainPoints:       append([]string(nil), req.PainPoints...),
		FailedSolutions:  append([]string(nil), req.FailedSolutions...),
		LanguagePatterns: append([]string(nil), req.LanguagePatterns...),
		Objections:       append([]string(nil), req.Objections...),
		TriggerEvents:    append([]string(nil), req.TriggerEvents...),
		Aspirations:      append([]string(nil), req.Aspirations...),
		FullBriefMD:      req.FullBriefMD,
	}
}

func mapCampaign(item entities.Campaign) httptransport.CampaignDTO {
	dto := httptransport.CampaignDTO{
		CampaignID:      item.CampaignID,
		OfferID:         item.OfferID,
		AvatarID:        item.AvatarID,
		AdFormat:        string(item.AdFormat),
		Phase:           item.Phase.String(),
		PhaseOrdinal:    int(item.Phase),
		SkipConsistency: item.SkipConsistency,
		Durations: httptransport.DurationAllocationDTO{
			Hook:        item.DurationAllocation.Hook,
			Problem:     item.DurationAllocation.Problem,
			Solution:    item.DurationAllocation.Solution,
			SocialProof: item.DurationAllocation.SocialProof,
			CTA:         item.DurationAllocation.CTA,
		},
		CreatedAt: formatTime(item.CreatedAt),
		UpdatedAt: formatTime(item.UpdatedAt),
	}
	if item.ConsistencySpec != nil {
		dto.ConsistencySpec = marshalRaw(item.ConsistencySpec)
	}
	if item.Storyboard != nil {
		dto.Storyboard = marshalRaw(item.Storyboard)
	}
	return dto
}

func mapCampaignState(state queries.CampaignState) httptransport.CampaignStateResponse {
	resp := httptransport.CampaignStateResponse{
		Campaign:    mapCampaign(state.Campaign),
		HookOptions: make([]httptransport.HookOptionDTO, 0, len(state.HookOptions)),
		Scripts:     mapScripts(state.Scripts),
		Keyframes:   make([]httptransport.KeyframeDTO, 0, len(state.Keyframes)),
		Transitions: make([]httptransport.TransitionPromptDTO, 0, len(state.Transitions)),
		Segments:    mapSegments(state.Segments),
	}
	for _, option := range state.HookOptions {
		resp.HookOptions = append(resp.HookOptions, mapHookOption(option))
	}
	for _, keyframe := range state.Keyframes {
		resp.Keyframes = append(resp.Keyframes, mapKeyframe(keyframe))
	}
	for _, prompt := range state.Transitions {
		resp.Transitions = append(resp.Transitions, mapTransition(prompt))
	}
	return resp
}

func mapHookOption(item entities.HookOption) httptransport.HookOptionDTO {
	return httptransport.HookOptionDTO{
		HookID:       item.HookID,
		VariantIndex: item.VariantIndex,
		Text:         item.Text,
		StyleTag:     item.StyleTag,
		Rationale:    item.Rationale,
		Status:       string(item.Status),
	}
}

func mapScript(item entities.Script) httptransport.ScriptDTO {
	return httptransport.ScriptDTO{
		ScriptID:          item.ScriptID,
		Section:           string(item.Section),
		CopyText:          item.CopyText,
		VisualDescription: item.VisualDescription,
		DurationSeconds:   item.DurationSeconds,
		Status:            string(item.Status),
	}
}

func mapScripts(items []entities.Script) []httptransport.ScriptDTO {
	out := make([]httptransport.ScriptDTO, 0, len(items))
	for _, item := range items {
		out = append(out, mapScript(item))
	}
	return out
}

func mapKeyframe(item entities.Keyframe) httptransport.KeyframeDTO {
	return httptransport.KeyframeDTO{
		KeyframeID:   item.KeyframeID,
		Section:      string(item.Section),
		Position:     string(item.Position),
		VariantIndex: item.VariantIndex,
		PromptText:   item.PromptText,
		ImageURL:     item.ImageURL,
		Status:       string(item.Status),
	}
}

func mapTransition(item entities.TransitionPrompt) httptransport.TransitionPromptDTO {
	return httptransport.TransitionPromptDTO{
		PromptID:      item.PromptID,
		Section:       string(item.Section),
		Direction:     string(item.Direction),
		PromptText:    item.PromptText,
		UserEdited:    item.UserEdited,
		EffectiveText: item.EffectiveText(),
	}
}

func mapSegment(item entities.VideoSegment) httptransport.VideoSegmentDTO {
	return httptransport.VideoSegmentDTO{
		SegmentID:       item.SegmentID,
		Section:         string(item.Section),
		Direction:       string(item.Direction),
		VideoPrompt:     item.VideoPrompt,
		VideoURL:        item.VideoURL,
		Provider:        item.Provider,
		Model:           item.Model,
		DurationSeconds: item.DurationSeconds,
		Status:          string(item.Status),
	}
}

func mapSegments(items []entities.VideoSegment) []httptransport.VideoSegmentDTO {
	out := make([]httptransport.VideoSegmentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, mapSegment(item))
	}
	return out
}

func marshalRaw(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return data
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
