package ports

import (
	"context"
	"time"

	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	contractsv1 "adforge/contracts/gen/events/v1"
	"adforge/internal/shared/outbox"
)

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign entities.Campaign) error
	UpdateCampaign(ctx context.Context, campaign entities.Campaign) error
	GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error)
	ListCampaigns(ctx context.Context) ([]entities.Campaign, error)
}

type OfferRepository interface {
	CreateOffer(ctx context.Context, offer entities.Offer) error
	UpdateOffer(ctx context.Context, offer entities.Offer) error
	GetOffer(ctx context.Context, offerID string) (entities.Offer, error)
	ListOffers(ctx context.Context) ([]entities.Offer, error)
	DeleteOffer(ctx context.Context, offerID string) error
}

type AvatarRepository interface {
	CreateAvatar(ctx context.Context, avatar entities.Avatar) error
	UpdateAvatar(ctx context.Context, avatar entities.Avatar) error
	GetAvatar(ctx context.Context, avatarID string) (entities.Avatar, error)
	ListAvatars(ctx context.Context) ([]entities.Avatar, error)
	DeleteAvatar(ctx context.Context, avatarID string) error
}

type ScriptRepository interface {
	ReplaceScripts(ctx context.Context, campaignID string, scripts []entities.Script) error
	GetScript(ctx context.Context, scriptID string) (entities.Script, error)
	UpdateScript(ctx context.Context, script entities.Script) error
	ListScriptsByCampaign(ctx context.Context, campaignID string) ([]entities.Script, error)
}

type HookOptionRepository interface {
	ReplaceHookOptions(ctx context.Context, campaignID string, options []entities.HookOption) error
	GetHookOption(ctx context.Context, hookID string) (entities.HookOption, error)
	UpdateHookOption(ctx context.Context, option entities.HookOption) error
	ListHookOptionsByCampaign(ctx context.Context, campaignID string) ([]entities.HookOption, error)
}

type KeyframeRepository interface {
	CreateKeyframes(ctx context.Context, keyframes []entities.Keyframe) error
	GetKeyframe(ctx context.Context, keyframeID string) (entities.Keyframe, error)
	UpdateKeyframe(ctx context.Context, keyframe entities.Keyframe) error

	// ResolveKeyframeTask transitions a keyframe out of generating as a
	// compare-and-set keyed by keyframe id, so racing completions cannot
	// clobber an already-resolved record. Returns ErrPreconditionFailed
	// when the keyframe is no longer generating.
	ResolveKeyframeTask(ctx context.Context, keyframeID string, to entities.KeyframeStatus, imageURL string) error

	FindKeyframeByTask(ctx context.Context, providerTaskID string) (entities.Keyframe, error)
	ListKeyframesByCampaign(ctx context.Context, campaignID string) ([]entities.Keyframe, error)
	ListKeyframesBySlot(ctx context.Context, campaignID string, section entities.Section, position entities.Position) ([]entities.Keyframe, error)
	GetSelectedKeyframe(ctx context.Context, campaignID string, section entities.Section, position entities.Position) (entities.Keyframe, bool, error)
	CountSelectedKeyframes(ctx context.Context, campaignID string) (int, error)
}

type TransitionRepository interface {
	ReplaceTransitions(ctx context.Context, campaignID string, section entities.Section, prompts []entities.TransitionPrompt) error
	GetTransition(ctx context.Context, promptID string) (entities.TransitionPrompt, error)
	UpdateTransition(ctx context.Context, prompt entities.TransitionPrompt) error
	ListTransitionsByCampaign(ctx context.Context, campaignID string) ([]entities.TransitionPrompt, error)
}

type SegmentRepository interface {
	CreateSegments(ctx context.Context, segments []entities.VideoSegment) error
	GetSegment(ctx context.Context, segmentID string) (entities.VideoSegment, error)
	UpdateSegment(ctx context.Context, segment entities.VideoSegment) error

	// ResolveSegmentTask is the compare-and-set counterpart of
	// ResolveKeyframeTask for video segments in queued/generating state.
	ResolveSegmentTask(ctx context.Context, segmentID string, to entities.SegmentStatus, videoURL string) error

	FindSegmentByTask(ctx context.Context, providerTaskID string) (entities.VideoSegment, error)
	ListSegmentsByCampaign(ctx context.Context, campaignID string) ([]entities.VideoSegment, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = contractsv1.Envelope

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]outbox.Message, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

// MediaJob is one asynchronous generation request handed to the media
// pipeline. AssetID names the keyframe or segment record the result lands
// on; the pipeline reports back through task/asset updates, never by return
// value.
type MediaJob struct {
	AssetID           string
	Prompt            string
	NegativePrompt    string
	ReferenceImageURL string
	DurationSeconds   int
}

// MediaGenerator is the boundary to the asynchronous generation pipeline.
// Enqueue calls return as soon as the job is accepted; completion arrives
// later through the generation completion commands.
type MediaGenerator interface {
	EnqueueImage(ctx context.Context, job MediaJob) error
	EnqueueVideo(ctx context.Context, job MediaJob) error
}

// Drafts produced by the creative director for persistence by the studio.

type HookDraft struct {
	Text      string
	StyleTag  string
	Rationale string
}

type ScriptDraft struct {
	Section           entities.Section
	CopyText          string
	VisualDescription string
	DurationSeconds   int
}

type KeyframePromptDraft struct {
	VariantIndex   int
	PromptText     string
	NegativePrompt string
}

type TransitionDraft struct {
	Direction  entities.TransitionDirection
	PromptText string
}

type OfferBrief struct {
	ProductName        string
	ProductDescription string
	TargetAudience     string
	UserNotes          string
}

type AvatarBrief struct {
	Offer             entities.Offer
	TargetDescription string
	Industry          string
	UserNotes         string
}

type HookBrief struct {
	Offer    entities.Offer
	Avatar   entities.Avatar
	AdFormat entities.AdFormat
}

type ScriptBrief struct {
	Offer            entities.Offer
	Avatar           entities.Avatar
	AdFormat         entities.AdFormat
	Durations        entities.DurationAllocation
	SelectedHookText string
}

type ConsistencyBrief struct {
	Avatar   entities.Avatar
	AdFormat entities.AdFormat
}

type KeyframePromptBrief struct {
	Section         entities.Section
	Position        entities.Position
	AdFormat        entities.AdFormat
	Script          entities.Script
	ConsistencySpec *entities.ConsistencySpec
	ReferenceURL    string
}

type TransitionBrief struct {
	Section   entities.Section
	AdFormat  entities.AdFormat
	Script    entities.Script
	Keyframes entities.StoryboardKeyframes
}

type VideoPromptBrief struct {
	Section        entities.Section
	Direction      entities.TransitionDirection
	TransitionText string
	Dialogue       string
	AdFormat       entities.AdFormat
}

// CreativeDirector is the language-model boundary. Implementations draft
// offers, avatars, copy and prompts; the studio owns validation, identity
// and persistence of whatever comes back.
type CreativeDirector interface {
	BuildOffer(ctx context.Context, brief OfferBrief) (entities.Offer, error)
	BuildAvatar(ctx context.Context, brief AvatarBrief) (entities.Avatar, error)
	WriteHookOptions(ctx context.Context, brief HookBrief) ([]HookDraft, error)
	WriteScript(ctx context.Context, brief ScriptBrief) ([]ScriptDraft, error)
	DraftConsistencySpec(ctx context.Context, brief ConsistencyBrief) (entities.ConsistencySpec, error)
	WriteKeyframePrompts(ctx context.Context, brief KeyframePromptBrief) ([]KeyframePromptDraft, error)
	WriteTransitionPrompts(ctx context.Context, brief TransitionBrief) ([]TransitionDraft, error)
	WriteVideoPrompt(ctx context.Context, brief VideoPromptBrief) (string, error)
}
