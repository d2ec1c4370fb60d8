package http

import "encoding/json"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OfferDTO struct {
	OfferID             string   `json:"offer_id"`
	Name                string   `json:"name"`
	ProductName         string   `json:"product_name"`
	DreamOutcome        string   `json:"dream_outcome"`
	PerceivedLikelihood string   `json:"perceived_likelihood"`
	TimeDelay           string   `json:"time_delay"`
	EffortSacrifice     string   `json:"effort_sacrifice"`
	Summary             string   `json:"summary"`
	KeySellingPoints    []string `json:"key_selling_points"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

type SaveOfferRequest struct {
	Name                string   `json:"name" validate:"required"`
	ProductName         string   `json:"product_name" validate:"required"`
	DreamOutcome        string   `json:"dream_outcome"`
	PerceivedLikelihood string   `json:"perceived_likelihood"`
	TimeDelay           string   `json:"time_delay"`
	EffortSacrifice     string   `json:"effort_sacrifice"`
	Summary             string   `json:"summary"`
	KeySellingPoints    []string `json:"key_selling_points"`
}

type BuildOfferRequest struct {
	ProductName        string `json:"product_name" validate:"required"`
	ProductDescription string `json:"product_description" validate:"required"`
	TargetAudience     string `json:"target_audience"`
	UserNotes          string `json:"user_notes"`
}

type DemographicsDTO struct {
	Age      string `json:"age"`
	Income   string `json:"income"`
	Location string `json:"location"`
	JobTitle string `json:"job_title"`
	Gender   string `json:"gender"`
}

type PsychographicsDTO struct {
	Values    []string `json:"values"`
	Fears     []string `json:"fears"`
	Worldview string   `json:"worldview"`
}

type AvatarDTO struct {
	AvatarID         string            `json:"avatar_id"`
	Name             string            `json:"name"`
	Demographics     DemographicsDTO   `json:"demographics"`
	Psychographics   PsychographicsDTO `json:"psychographics"`
	PainPoints       []string          `json:"pain_points"`
	FailedSolutions  []string          `json:"failed_solutions"`
	LanguagePatterns []string          `json:"language_patterns"`
	Objections       []string          `json:"objections"`
	TriggerEvents    []string          `json:"trigger_events"`
	Aspirations      []string          `json:"aspirations"`
	FullBriefMD      string            `json:"full_brief_md"`
	CreatedAt        string            `json:"created_at"`
	UpdatedAt        string            `json:"updated_at"`
}

type SaveAvatarRequest struct {
	Name             string            `json:"name" validate:"required"`
	Demographics     DemographicsDTO   `json:"demographics"`
	Psychographics   PsychographicsDTO `json:"psychographics"`
	PainPoints       []string          `json:"pain_points"`
	FailedSolutions  []string          `json:"failed_solutions"`
	LanguagePatterns []string          `json:"language_patterns"`
	Objections       []string          `json:"objections"`
	TriggerEvents    []string          `json:"trigger_events"`
	Aspirations      []string          `json:"aspirations"`
	FullBriefMD      string            `json:"full_brief_md"`
}

type BuildAvatarRequest struct {
	OfferID           string `json:"offer_id" validate:"required"`
	TargetDescription string `json:"target_description" validate:"required"`
	Industry          string `json:"industry"`
	UserNotes         string `json:"user_notes"`
}

type DurationAllocationDTO struct {
	Hook        int `json:"hook"`
	Problem     int `json:"problem"`
	Solution    int `json:"solution"`
	SocialProof int `json:"social_proof"`
	CTA         int `json:"cta"`
}

type CreateCampaignRequest struct {
	OfferID         string                 `json:"offer_id" validate:"required"`
	AvatarID        string                 `json:"avatar_id" validate:"required"`
	AdFormat        string                 `json:"ad_format" validate:"required,oneof=ugc story_movie"`
	SkipConsistency bool                   `json:"skip_consistency"`
	Durations       *DurationAllocationDTO `json:"durations"`
}

type CampaignDTO struct {
	CampaignID      string                `json:"campaign_id"`
	OfferID         string                `json:"offer_id"`
	AvatarID        string                `json:"avatar_id"`
	AdFormat        string                `json:"ad_format"`
	Phase           string                `json:"phase"`
	PhaseOrdinal    int                   `json:"phase_ordinal"`
	SkipConsistency bool                  `json:"skip_consistency"`
	Durations       DurationAllocationDTO `json:"durations"`
	ConsistencySpec json.RawMessage       `json:"consistency_spec,omitempty"`
	Storyboard      json.RawMessage       `json:"storyboard,omitempty"`
	CreatedAt       string                `json:"created_at"`
	UpdatedAt       string                `json:"updated_at"`
}

type HookOptionDTO struct {
	HookID       string `json:"hook_id"`
	VariantIndex int    `json:"variant_index"`
	Text         string `json:"text"`
	StyleTag     string `json:"style_tag"`
	Rationale    string `json:"rationale"`
	Status       string `json:"status"`
}

type ScriptDTO struct {
	ScriptID          string `json:"script_id"`
	Section           string `json:"section"`
	CopyText          string `json:"copy_text"`
	VisualDescription string `json:"visual_description"`
	DurationSeconds   int    `json:"duration_seconds"`
	Status            string `json:"status"`
}

type KeyframeDTO struct {
	KeyframeID   string `json:"keyframe_id"`
	Section      string `json:"section"`
	Position     string `json:"position"`
	VariantIndex int    `json:"variant_index"`
	PromptText   string `json:"prompt_text"`
	ImageURL     string `json:"image_url"`
	Status       string `json:"status"`
}

type TransitionPromptDTO struct {
	PromptID      string `json:"prompt_id"`
	Section       string `json:"section"`
	Direction     string `json:"direction"`
	PromptText    string `json:"prompt_text"`
	UserEdited    bool   `json:"user_edited"`
	EffectiveText string `json:"effective_text"`
}

type VideoSegmentDTO struct {
	SegmentID       string `json:"segment_id"`
	Section         string `json:"section"`
	Direction       string `json:"direction"`
	VideoPrompt     string `json:"video_prompt"`
	VideoURL        string `json:"video_url"`
	Provider        string `json:"provider"`
	Model           string `json:"model"`
	DurationSeconds int    `json:"duration_seconds"`
	Status          string `json:"status"`
}

type CampaignStateResponse struct {
	Campaign    CampaignDTO           `json:"campaign"`
	HookOptions []HookOptionDTO       `json:"hook_options"`
	Scripts     []ScriptDTO           `json:"scripts"`
	Keyframes   []KeyframeDTO         `json:"keyframes"`
	Transitions []TransitionPromptDTO `json:"transitions"`
	Segments    []VideoSegmentDTO     `json:"segments"`
}

type AdvancePhaseRequest struct {
	Target string `json:"target" validate:"required"`
}

type SelectHookRequest struct {
	HookID string `json:"hook_id" validate:"required"`
}

type UpdateScriptRequest struct {
	CopyText          *string `json:"copy_text"`
	VisualDescription *string `json:"visual_description"`
}

type GenerateKeyframesRequest struct {
	Section  string `json:"section" validate:"required"`
	Position string `json:"position" validate:"required,oneof=start middle end"`
}

type SelectKeyframeRequest struct {
	KeyframeID string `json:"keyframe_id" validate:"required"`
}

type SelectKeyframeResponse struct {
	Selected     KeyframeDTO `json:"selected"`
	NextSection  *string     `json:"next_section,omitempty"`
	NextPosition *string     `json:"next_position,omitempty"`
	Complete     bool        `json:"complete"`
}

type GenerateTransitionsRequest struct {
	Section string `json:"section" validate:"required"`
}

type EditTransitionRequest struct {
	Text string `json:"text" validate:"required"`
}

type RegenerateSegmentRequest struct {
	PromptOverride string `json:"prompt_override"`
}

type ExportResponse struct {
	CampaignID    string            `json:"campaign_id"`
	TotalDuration int               `json:"total_duration"`
	Segments      []VideoSegmentDTO `json:"segments"`
}

type OperationRequest struct {
	Operation string          `json:"operation" validate:"required"`
	Payload   json.RawMessage `json:"payload"`
}

type ProviderWebhookRequest struct {
	TaskID    string `json:"task_id" validate:"required"`
	Status    string `json:"status" validate:"required"`
	ResultURL string `json:"result_url"`
}
