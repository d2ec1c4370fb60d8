package postgresadapter

import (
	"encoding/json"
	"strings"
	"time"

	"adforge/contexts/ad-production/campaign-studio/domain/entities"
)

type campaignModel struct {
	CampaignID      string          `gorm:"column:campaign_id;primaryKey"`
	OfferID         string          `gorm:"column:offer_id"`
	AvatarID        string          `gorm:"column:avatar_id"`
	AdFormat        string          `gorm:"column:ad_format"`
	Phase           int             `gorm:"column:phase"`
	SkipConsistency bool            `gorm:"column:skip_consistency"`
	Durations       json.RawMessage `gorm:"column:durations;type:jsonb"`
	ConsistencySpec json.RawMessage `gorm:"column:consistency_spec;type:jsonb"`
	Storyboard      json.RawMessage `gorm:"column:storyboard;type:jsonb"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (campaignModel) TableName() string {
	return "studio_campaigns"
}

func campaignModelFromEntity(item entities.Campaign) (campaignModel, error) {
	durations, err := json.Marshal(item.DurationAllocation)
	if err != nil {
		return campaignModel{}, err
	}
	row := campaignModel{
		CampaignID:      strings.TrimSpace(item.CampaignID),
		OfferID:         strings.TrimSpace(item.OfferID),
		AvatarID:        strings.TrimSpace(item.AvatarID),
		AdFormat:        string(item.AdFormat),
		Phase:           int(item.Phase),
		SkipConsistency: item.SkipConsistency,
		Durations:       durations,
		CreatedAt:       item.CreatedAt.UTC(),
		UpdatedAt:       item.UpdatedAt.UTC(),
	}
	if item.ConsistencySpec != nil {
		spec, err := json.Marshal(item.ConsistencySpec)
		if err != nil {
			return campaignModel{}, err
		}
		row.ConsistencySpec = spec
	}
	if item.Storyboard != nil {
		board, err := json.Marshal(item.Storyboard)
		if err != nil {
			return campaignModel{}, err
		}
		row.Storyboard = board
	}
	return row, nil
}

func (m campaignModel) toEntity() (entities.Campaign, error) {
	item := entities.Campaign{
		CampaignID:      m.CampaignID,
		OfferID:         m.OfferID,
		AvatarID:        m.AvatarID,
		AdFormat:        entities.AdFormat(m.AdFormat),
		Phase:           entities.Phase(m.Phase),
		SkipConsistency: m.SkipConsistency,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
	if len(m.Durations) > 0 {
		if err := json.Unmarshal(m.Durations, &item.DurationAllocation); err != nil {
			return entities.Campaign{}, err
		}
	}
	if len(m.ConsistencySpec) > 0 {
		var spec entities.ConsistencySpec
		if err := json.Unmarshal(m.ConsistencySpec, &spec); err != nil {
			return entities.Campaign{}, err
		}
		item.ConsistencySpec = &spec
	}
	if len(m.Storyboard) > 0 {
		var board entities.Storyboard
		if err := json.Unmarshal(m.Storyboard, &board); err != nil {
			return entities.Campaign{}, err
		}
		item.Storyboard = &board
	}
	return item, nil
}

type offerModel struct {
	OfferID             string    `gorm:"column:offer_id;primaryKey"`
	Name                string    `gorm:"column:name"`
	ProductName         string    `gorm:"column:product_name"`
	DreamOutcome        string    `gorm:"column:dream_outcome"`
	PerceivedLikelihood string    `gorm:"column:perceived_likelihood"`
	TimeDelay           string    `gorm:"column:time_delay"`
	EffortSacrifice     string    `gorm:"column:effort_sacrifice"`
	Summary             string    `gorm:"column:summary"`
	KeySellingPoints    []string  `gorm:"column:key_selling_points;type:text[]"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (offerModel) TableName() string {
	return "studio_offers"
}

func offerModelFromEntity(item entities.Offer) offerModel {
	return offerModel{
		OfferID:             strings.TrimSpace(item.OfferID),
		Name:                strings.TrimSpace(item.Name),
		ProductName:         strings.TrimSpace(item.ProductName),
		DreamOutcome:        strings.TrimSpace(item.DreamOutcome),
		PerceivedLikelihood: strings.TrimSpace(item.PerceivedLikelihood),
		TimeDelay:           strings.TrimSpace(item.TimeDelay),
		EffortSacrifice:     strings.TrimSpace(item.EffortSacrifice),
		Summary:             strings.TrimSpace(item.Summary),
		KeySellingPoints:    copyOrEmpty(item.KeySellingPoints),
		CreatedAt:           item.CreatedAt.UTC(),
		UpdatedAt:           item.UpdatedAt.UTC(),
	}
}

func (m offerModel) toEntity() entities.Offer {
	return entities.Offer{
		OfferID:             m.OfferID,
		Name:                m.Name,
		ProductName:         m.ProductName,
		DreamOutcome:        m.DreamOutcome,
		PerceivedLikelihood: m.PerceivedLikelihood,
		TimeDelay:           m.TimeDelay,
		EffortSacrifice:     m.EffortSacrifice,
		Summary:             m.Summary,
		KeySellingPoints:    copyOrEmpty(m.KeySellingPoints),
		CreatedAt:           m.CreatedAt.UTC(),
		UpdatedAt:           m.UpdatedAt.UTC(),
	}
}

type avatarModel struct {
	AvatarID         string          `gorm:"column:avatar_id;primaryKey"`
	Name             string          `gorm:"column:name"`
	Demographics     json.RawMessage `gorm:"column:demographics;type:jsonb"`
	Psychographics   json.RawMessage `gorm:"column:psychographics;type:jsonb"`
	PainPoints       []string        `gorm:"column:pain_points;type:text[]"`
	FailedSolutions  []string        `gorm:"column:failed_solutions;type:text[]"`
	LanguagePatterns []string        `gorm:"column:language_patterns;type:text[]"`
	Objections       []string        `gorm:"column:objections;type:text[]"`
	TriggerEvents    []string        `gorm:"column:trigger_events;type:text[]"`
	Aspirations      []string        `gorm:"column:aspirations;type:text[]"`
	FullBriefMD      string          `gorm:"column:full_brief_md"`
	CreatedAt        time.Time       `gorm:"column:created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at"`
}

func (avatarModel) TableName() string {
	return "studio_avatars"
}

func avatarModelFromEntity(item entities.Avatar) (avatarModel, error) {
	demographics, err := json.Marshal(item.Demographics)
	if err != nil {
		return avatarModel{}, err
	}
	psychographics, err := json.Marshal(item.Psychographics)
	if err != nil {
		return avatarModel{}, err
	}
	return avatarModel{
		AvatarID:         strings.TrimSpace(item.AvatarID),
		Name:             strings.TrimSpace(item.Name),
		Demographics:     demographics,
		Psychographics:   psychographics,
		PainPoints:       copyOrEmpty(item.PainPoints),
		FailedSolutions:  copyOrEmpty(item.FailedSolutions),
		LanguagePatterns: copyOrEmpty(item.LanguagePatterns),
		Objections:       copyOrEmpty(item.Objections),
		TriggerEvents:    copyOrEmpty(item.TriggerEvents),
		Aspirations:      copyOrEmpty(item.Aspirations),
		FullBriefMD:      item.FullBriefMD,
		CreatedAt:        item.CreatedAt.UTC(),
		UpdatedAt:        item.UpdatedAt.UTC(),
	}, nil
}

func (m avatarModel) toEntity() (entities.Avatar, error) {
	item := entities.Avatar{
		AvatarID:         m.AvatarID,
		Name:             m.Name,
		PainPoints:       copyOrEmpty(m.PainPoints),
		FailedSolutions:  copyOrEmpty(m.FailedSolutions),
		LanguagePatterns: copyOrEmpty(m.LanguagePatterns),
		Objections:       copyOrEmpty(m.Objections),
		TriggerEvents:    copyOrEmpty(m.TriggerEvents),
		Aspirations:      copyOrEmpty(m.Aspirations),
		FullBriefMD:      m.FullBriefMD,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
	if len(m.Demographics) > 0 {
		if err := json.Unmarshal(m.Demographics, &item.Demographics); err != nil {
			return entities.Avatar{}, err
		}
	}
	if len(m.Psychographics) > 0 {
		if err := json.Unmarshal(m.Psychographics, &item.Psychographics); err != nil {
			return entities.Avatar{}, err
		}
	}
	return item, nil
}

type hookOptionModel struct {
	HookID       string    `gorm:"column:hook_id;primaryKey"`
	CampaignID   string    `gorm:"column:campaign_id;index"`
	VariantIndex int       `gorm:"column:variant_index"`
	Text         string    `gorm:"column:text"`
	StyleTag     string    `gorm:"column:style_tag"`
	Rationale    string    `gorm:"column:rationale"`
	Status       string    `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (hookOptionModel) TableName() string {
	return "studio_hook_options"
}

func hookOptionModelFromEntity(item entities.HookOption) hookOptionModel {
	return hookOptionModel{
		HookID:       strings.TrimSpace(item.HookID),
		CampaignID:   strings.TrimSpace(item.CampaignID),
		VariantIndex: item.VariantIndex,
		Text:         item.Text,
		StyleTag:     item.StyleTag,
		Rationale:    item.Rationale,
		Status:       string(item.Status),
		CreatedAt:    item.CreatedAt.UTC(),
		UpdatedAt:    item.UpdatedAt.UTC(),
	}
}

func (m hookOptionModel) toEntity() entities.HookOption {
	return entities.HookOption{
		HookID:       m.HookID,
		CampaignID:   m.CampaignID,
		VariantIndex: m.VariantIndex,
		Text:         m.Text,
		StyleTag:     m.StyleTag,
		Rationale:    m.Rationale,
		Status:       entities.HookOptionStatus(m.Status),
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

type scriptModel struct {
	ScriptID          string    `gorm:"column:script_id;primaryKey"`
	CampaignID        string    `gorm:"column:campaign_id;index"`
	Section           string    `gorm:"column:section"`
	CopyText          string    `gorm:"column:copy_text"`
	VisualDescription string    `gorm:"column:visual_description"`
	DurationSeconds   int       `gorm:"column:duration_seconds"`
	Status            string    `gorm:"column:status"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (scriptModel) TableName() string {
	return "studio_scripts"
}

func scriptModelFromEntity(item entities.Script) scriptModel {
	return scriptModel{
		ScriptID:          strings.TrimSpace(item.ScriptID),
		CampaignID:        strings.TrimSpace(item.CampaignID),
		Section:           string(item.Section),
		CopyText:          item.CopyText,
		VisualDescription: item.VisualDescription,
		DurationSeconds:   item.DurationSeconds,
		Status:            string(item.Status),
		CreatedAt:         item.CreatedAt.UTC(),
		UpdatedAt:         item.UpdatedAt.UTC(),
	}
}

func (m scriptModel) toEntity() entities.Script {
	return entities.Script{
		ScriptID:          m.ScriptID,
		CampaignID:        m.CampaignID,
		Section:           entities.Section(m.Section),
		CopyText:          m.CopyText,
		VisualDescription: m.VisualDescription,
		DurationSeconds:   m.DurationSeconds,
		Status:            entities.ScriptStatus(m.Status),
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}

type keyframeModel struct {
	KeyframeID     string    `gorm:"column:keyframe_id;primaryKey"`
	CampaignID     string    `gorm:"column:campaign_id;index"`
	Section        string    `gorm:"column:section"`
	Position       string    `gorm:"column:position"`
	VariantIndex   int       `gorm:"column:variant_index"`
	PromptText     string    `gorm:"column:prompt_text"`
	NegativePrompt string    `gorm:"column:negative_prompt"`
	ImageURL       string    `gorm:"column:image_url"`
	ProviderTaskID string    `gorm:"column:provider_task_id;index"`
	Status         string    `gorm:"column:status"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (keyframeModel) TableName() string {
	return "studio_keyframes"
}

func keyframeModelFromEntity(item entities.Keyframe) keyframeModel {
	return keyframeModel{
		KeyframeID:     strings.TrimSpace(item.KeyframeID),
		CampaignID:     strings.TrimSpace(item.CampaignID),
		Section:        string(item.Section),
		Position:       string(item.Position),
		VariantIndex:   item.VariantIndex,
		PromptText:     item.PromptText,
		NegativePrompt: item.NegativePrompt,
		ImageURL:       item.ImageURL,
		ProviderTaskID: item.ProviderTaskID,
		Status:         string(item.Status),
		CreatedAt:      item.CreatedAt.UTC(),
		UpdatedAt:      item.UpdatedAt.UTC(),
	}
}

func (m keyframeModel) toEntity() entities.Keyframe {
	return entities.Keyframe{
		KeyframeID:     m.KeyframeID,
		CampaignID:     m.CampaignID,
		Section:        entities.Section(m.Section),
		Position:       entities.Position(m.Position),
		VariantIndex:   m.VariantIndex,
		PromptText:     m.PromptText,
		NegativePrompt: m.NegativePrompt,
		ImageURL:       m.ImageURL,
		ProviderTaskID: m.ProviderTaskID,
		Status:         entities.KeyframeStatus(m.Status),
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

type transitionModel struct {
	PromptID       string    `gorm:"column:prompt_id;primaryKey"`
	CampaignID     string    `gorm:"column:campaign_id;index"`
	Section        string    `gorm:"column:section"`
	Direction      string    `gorm:"column:direction"`
	PromptText     string    `gorm:"column:prompt_text"`
	UserEdited     bool      `gorm:"column:user_edited"`
	UserEditedText string    `gorm:"column:user_edited_text"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (transitionModel) TableName() string {
	return "studio_transition_prompts"
}

func transitionModelFromEntity(item entities.TransitionPrompt) transitionModel {
	return transitionModel{
		PromptID:       strings.TrimSpace(item.PromptID),
		CampaignID:     strings.TrimSpace(item.CampaignID),
		Section:        string(item.Section),
		Direction:      string(item.Direction),
		PromptText:     item.PromptText,
		UserEdited:     item.UserEdited,
		UserEditedText: item.UserEditedText,
		CreatedAt:      item.CreatedAt.UTC(),
		UpdatedAt:      item.UpdatedAt.UTC(),
	}
}

func (m transitionModel) toEntity() entities.TransitionPrompt {
	return entities.TransitionPrompt{
		PromptID:       m.PromptID,
		CampaignID:     m.CampaignID,
		Section:        entities.Section(m.Section),
		Direction:      entities.TransitionDirection(m.Direction),
		PromptText:     m.PromptText,
		UserEdited:     m.UserEdited,
		UserEditedText: m.UserEditedText,
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

type segmentModel struct {
	SegmentID         string    `gorm:"column:segment_id;primaryKey"`
	CampaignID        string    `gorm:"column:campaign_id;index"`
	Section           string    `gorm:"column:section"`
	Direction         string    `gorm:"column:direction"`
	VideoPrompt       string    `gorm:"column:video_prompt"`
	SourceKeyframeURL string    `gorm:"column:source_keyframe_url"`
	VideoURL          string    `gorm:"column:video_url"`
	Provider          string    `gorm:"column:provider"`
	Model             string    `gorm:"column:model"`
	ProviderTaskID    string    `gorm:"column:provider_task_id;index"`
	DurationSeconds   int       `gorm:"column:duration_seconds"`
	Status            string    `gorm:"column:status"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (segmentModel) TableName() string {
	return "studio_video_segments"
}

func segmentModelFromEntity(item entities.VideoSegment) segmentModel {
	return segmentModel{
		SegmentID:         strings.TrimSpace(item.SegmentID),
		CampaignID:        strings.TrimSpace(item.CampaignID),
		Section:           string(item.Section),
		Direction:         string(item.Direction),
		VideoPrompt:       item.VideoPrompt,
		SourceKeyframeURL: item.SourceKeyframeURL,
		VideoURL:          item.VideoURL,
		Provider:          item.Provider,
		Model:             item.Model,
		ProviderTaskID:    item.ProviderTaskID,
		DurationSeconds:   item.DurationSeconds,
		Status:            string(item.Status),
		CreatedAt:         item.CreatedAt.UTC(),
		UpdatedAt:         item.UpdatedAt.UTC(),
	}
}

func (m segmentModel) toEntity() entities.VideoSegment {
	return entities.VideoSegment{
		SegmentID:         m.SegmentID,
		CampaignID:        m.CampaignID,
		Section:           entities.Section(m.Section),
		Direction:         entities.TransitionDirection(m.Direction),
		VideoPrompt:       m.VideoPrompt,
		SourceKeyframeURL: m.SourceKeyframeURL,
		VideoURL:          m.VideoURL,
		Provider:          m.Provider,
		Model:             m.Model,
		ProviderTaskID:    m.ProviderTaskID,
		DurationSeconds:   m.DurationSeconds,
		Status:            entities.SegmentStatus(m.Status),
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}

type outboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	CampaignID  string     `gorm:"column:campaign_id"`
	Payload     []byte     `gorm:"column:payload;type:jsonb"`
	Status      string     `gorm:"column:status;index"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "studio_outbox"
}

func copyOrEmpty(values []string) []string {
	if len(values) == 0 {
		return []string{}
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
