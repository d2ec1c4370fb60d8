package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	domainerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
	"adforge/contexts/ad-production/campaign-studio/ports"
	"adforge/internal/shared/outbox"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

// Repository implements every campaign-studio repository port against
// postgres through gorm.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// Migrate creates or updates the studio tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&campaignModel{},
		&offerModel{},
		&avatarModel{},
		&hookOptionModel{},
		&scriptModel{},
		&keyframeModel{},
		&transitionModel{},
		&segmentModel{},
		&outboxModel{},
	)
}

func (r *Repository) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	row, err := campaignModelFromEntity(campaign)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateCampaign(ctx context.Context, campaign entities.Campaign) error {
	row, err := campaignModelFromEntity(campaign)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&campaignModel{}).
		Where("campaign_id = ?", row.CampaignID).
		Updates(map[string]any{
			"phase":            row.Phase,
			"skip_consistency": row.SkipConsistency,
			"durations":        row.Durations,
			"consistency_spec": row.ConsistencySpec,
			"storyboard":       row.Storyboard,
			"updated_at":       row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

func (r *Repository) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListCampaigns(ctx context.Context) ([]entities.Campaign, error) {
	var rows []campaignModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Campaign, 0, len(rows))
	for _, row := range rows {
		item, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) CreateOffer(ctx context.Context, offer entities.Offer) error {
	row := offerModelFromEntity(offer)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateOffer(ctx context.Context, offer entities.Offer) error {
	row := offerModelFromEntity(offer)
	result := r.db.WithContext(ctx).
		Model(&offerModel{}).
		Where("offer_id = ?", row.OfferID).
		Updates(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOfferNotFound
	}
	return nil
}

func (r *Repository) GetOffer(ctx context.Context, offerID string) (entities.Offer, error) {
	var row offerModel
	err := r.db.WithContext(ctx).
		Where("offer_id = ?", strings.TrimSpace(offerID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Offer{}, domainerrors.ErrOfferNotFound
		}
		return entities.Offer{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListOffers(ctx context.Context) ([]entities.Offer, error) {
	var rows []offerModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Offer, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteOffer(ctx context.Context, offerID string) error {
	result := r.db.WithContext(ctx).
		Where("offer_id = ?", strings.TrimSpace(offerID)).
		Delete(&offerModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOfferNotFound
	}
	return nil
}

func (r *Repository) CreateAvatar(ctx context.Context, avatar entities.Avatar) error {
	row, err := avatarModelFromEntity(avatar)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateAvatar(ctx context.Context, avatar entities.Avatar) error {
	row, err := avatarModelFromEntity(avatar)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&avatarModel{}).
		Where("avatar_id = ?", row.AvatarID).
		Updates(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAvatarNotFound
	}
	return nil
}

func (r *Repository) GetAvatar(ctx context.Context, avatarID string) (entities.Avatar, error) {
	var row avatarModel
	err := r.db.WithContext(ctx).
		Where("avatar_id = ?", strings.TrimSpace(avatarID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Avatar{}, domainerrors.ErrAvatarNotFound
		}
		return entities.Avatar{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListAvatars(ctx context.Context) ([]entities.Avatar, error) {
	var rows []avatarModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Avatar, 0, len(rows))
	for _, row := range rows {
		item, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) DeleteAvatar(ctx context.Context, avatarID string) error {
	result := r.db.WithContext(ctx).
		Where("avatar_id = ?", strings.TrimSpace(avatarID)).
		Delete(&avatarModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAvatarNotFound
	}
	return nil
}

func (r *Repository) ReplaceHookOptions(ctx context.Context, campaignID string, options []entities.HookOption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("campaign_id = ?", strings.TrimSpace(campaignID)).
			Delete(&hookOptionModel{}).
			Error; err != nil {
			return err
		}
		for _, option := range options {
			row := hookOptionModelFromEntity(option)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) GetHookOption(ctx context.Context, hookID string) (entities.HookOption, error) {
	var row hookOptionModel
	err := r.db.WithContext(ctx).
		Where("hook_id = ?", strings.TrimSpace(hookID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.HookOption{}, domainerrors.ErrHookOptionNotFound
		}
		return entities.HookOption{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateHookOption(ctx context.Context, option entities.HookOption) error {
	row := hookOptionModelFromEntity(option)
	result := r.db.WithContext(ctx).
		Model(&hookOptionModel{}).
		Where("hook_id = ?", row.HookID).
		Updates(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrHookOptionNotFound
	}
	return nil
}

func (r *Repository) ListHookOptionsByCampaign(ctx context.Context, campaignID string) ([]entities.HookOption, error) {
	var rows []hookOptionModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Order("variant_index ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.HookOption, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ReplaceScripts(ctx context.Context, campaignID string, scripts []entities.Script) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("campaign_id = ?", strings.TrimSpace(campaignID)).
			Delete(&scriptModel{}).
			Error; err != nil {
			return err
		}
		for _, script := range scripts {
			row := scriptModelFromEntity(script)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) GetScript(ctx context.Context, scriptID string) (entities.Script, error) {
	var row scriptModel
	err := r.db.WithContext(ctx).
		Where("script_id = ?", strings.TrimSpace(scriptID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Script{}, domainerrors.ErrScriptNotFound
		}
		return entities.Script{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateScript(ctx context.Context, script entities.Script) error {
	row := scriptModelFromEntity(script)
	result := r.db.WithContext(ctx).
		Model(&scriptModel{}).
		Where("script_id = ?", row.ScriptID).
		Updates(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrScriptNotFound
	}
	return nil
}

func (r *Repository) ListScriptsByCampaign(ctx context.Context, campaignID string) ([]entities.Script, error) {
	var rows []scriptModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Script, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	sortScriptsCanonical(items)
	return items, nil
}

func (r *Repository) CreateKeyframes(ctx context.Context, keyframes []entities.Keyframe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, keyframe := range keyframes {
			row := keyframeModelFromEntity(keyframe)
			if err := tx.Create(&row).Error; err != nil {
				if isUniqueViolation(err) {
					return domainerrors.ErrInvalidInput
				}
				return err
			}
		}
		return nil
	})
}

func (r *Repository) GetKeyframe(ctx context.Context, keyframeID string) (entities.Keyframe, error) {
	var row keyframeModel
	err := r.db.WithContext(ctx).
		Where("keyframe_id = ?", strings.TrimSpace(keyframeID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Keyframe{}, domainerrors.ErrKeyframeNotFound
		}
		return entities.Keyframe{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateKeyframe(ctx context.Context, keyframe entities.Keyframe) error {
	row := keyframeModelFromEntity(keyframe)
	result := r.db.WithContext(ctx).
		Model(&keyframeModel{}).
		Where("keyframe_id = ?", row.KeyframeID).
		Updates(map[string]any{
			"prompt_text":      row.PromptText,
			"negative_prompt":  row.NegativePrompt,
			"image_url":        row.ImageURL,
			"provider_task_id": row.ProviderTaskID,
			"status":           row.Status,
			"updated_at":       row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrKeyframeNotFound
	}
	return nil
}

// ResolveKeyframeTask narrows the update to rows still generating so a
// racing completion loses cleanly instead of overwriting a decided state.
func (r *Repository) ResolveKeyframeTask(ctx context.Context, keyframeID string, to entities.KeyframeStatus, imageURL string) error {
	updates := map[string]any{
		"status":     string(to),
		"updated_at": time.Now().UTC(),
	}
	if imageURL != "" {
		updates["image_url"] = imageURL
	}
	result := r.db.WithContext(ctx).
		Model(&keyframeModel{}).
		Where("keyframe_id = ? AND status = ?", strings.TrimSpace(keyframeID), string(entities.KeyframeStatusGenerating)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&keyframeModel{}).
			Where("keyframe_id = ?", strings.TrimSpace(keyframeID)).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrKeyframeNotFound
		}
		return domainerrors.ErrPreconditionFailed
	}
	return nil
}

func (r *Repository) FindKeyframeByTask(ctx context.Context, providerTaskID string) (entities.Keyframe, error) {
	var row keyframeModel
	err := r.db.WithContext(ctx).
		Where("provider_task_id = ? AND provider_task_id <> ''", strings.TrimSpace(providerTaskID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Keyframe{}, domainerrors.ErrKeyframeNotFound
		}
		return entities.Keyframe{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListKeyframesByCampaign(ctx context.Context, campaignID string) ([]entities.Keyframe, error) {
	var rows []keyframeModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Order("section ASC, position ASC, variant_index ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Keyframe, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListKeyframesBySlot(ctx context.Context, campaignID string, section entities.Section, position entities.Position) ([]entities.Keyframe, error) {
	var rows []keyframeModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ? AND section = ? AND position = ?",
			strings.TrimSpace(campaignID), string(section), string(position)).
		Order("variant_index ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Keyframe, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetSelectedKeyframe(ctx context.Context, campaignID string, section entities.Section, position entities.Position) (entities.Keyframe, bool, error) {
	var row keyframeModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ? AND section = ? AND position = ? AND status = ?",
			strings.TrimSpace(campaignID), string(section), string(position), string(entities.KeyframeStatusSelected)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Keyframe{}, false, nil
		}
		return entities.Keyframe{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) CountSelectedKeyframes(ctx context.Context, campaignID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&keyframeModel{}).
		Where("campaign_id = ? AND status = ?", strings.TrimSpace(campaignID), string(entities.KeyframeStatusSelected)).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *Repository) ReplaceTransitions(ctx context.Context, campaignID string, section entities.Section, prompts []entities.TransitionPrompt) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("campaign_id = ? AND section = ?", strings.TrimSpace(campaignID), string(section)).
			Delete(&transitionModel{}).
			Error; err != nil {
			return err
		}
		for _, prompt := range prompts {
			row := transitionModelFromEntity(prompt)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) GetTransition(ctx context.Context, promptID string) (entities.TransitionPrompt, error) {
	var row transitionModel
	err := r.db.WithContext(ctx).
		Where("prompt_id = ?", strings.TrimSpace(promptID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.TransitionPrompt{}, domainerrors.ErrTransitionNotFound
		}
		return entities.TransitionPrompt{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateTransition(ctx context.Context, prompt entities.TransitionPrompt) error {
	row := transitionModelFromEntity(prompt)
	result := r.db.WithContext(ctx).
		Model(&transitionModel{}).
		Where("prompt_id = ?", row.PromptID).
		Updates(map[string]any{
			"prompt_text":      row.PromptText,
			"user_edited":      row.UserEdited,
			"user_edited_text": row.UserEditedText,
			"updated_at":       row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTransitionNotFound
	}
	return nil
}

func (r *Repository) ListTransitionsByCampaign(ctx context.Context, campaignID string) ([]entities.TransitionPrompt, error) {
	var rows []transitionModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.TransitionPrompt, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CreateSegments(ctx context.Context, segments []entities.VideoSegment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, segment := range segments {
			row := segmentModelFromEntity(segment)
			if err := tx.Create(&row).Error; err != nil {
				if isUniqueViolation(err) {
					return domainerrors.ErrInvalidInput
				}
				return err
			}
		}
		return nil
	})
}

func (r *Repository) GetSegment(ctx context.Context, segmentID string) (entities.VideoSegment, error) {
	var row segmentModel
	err := r.db.WithContext(ctx).
		Where("segment_id = ?", strings.TrimSpace(segmentID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.VideoSegment{}, domainerrors.ErrSegmentNotFound
		}
		return entities.VideoSegment{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateSegment(ctx context.Context, segment entities.VideoSegment) error {
	row := segmentModelFromEntity(segment)
	result := r.db.WithContext(ctx).
		Model(&segmentModel{}).
		Where("segment_id = ?", row.SegmentID).
		Updates(map[string]any{
			"video_prompt":     row.VideoPrompt,
			"video_url":        row.VideoURL,
			"provider":         row.Provider,
			"model":            row.Model,
			"provider_task_id": row.ProviderTaskID,
			"status":           row.Status,
			"updated_at":       row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSegmentNotFound
	}
	return nil
}

// ResolveSegmentTask is the video counterpart of ResolveKeyframeTask:
// only queued or generating rows accept the transition.
func (r *Repository) ResolveSegmentTask(ctx context.Context, segmentID string, to entities.SegmentStatus, videoURL string) error {
	updates := map[string]any{
		"status":     string(to),
		"updated_at": time.Now().UTC(),
	}
	if videoURL != "" {
		updates["video_url"] = videoURL
	}
	result := r.db.WithContext(ctx).
		Model(&segmentModel{}).
		Where("segment_id = ? AND status IN ?", strings.TrimSpace(segmentID),
			[]string{string(entities.SegmentStatusQueued), string(entities.SegmentStatusGenerating)}).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&segmentModel{}).
			Where("segment_id = ?", strings.TrimSpace(segmentID)).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrSegmentNotFound
		}
		return domainerrors.ErrPreconditionFailed
	}
	return nil
}

func (r *Repository) FindSegmentByTask(ctx context.Context, providerTaskID string) (entities.VideoSegment, error) {
	var row segmentModel
	err := r.db.WithContext(ctx).
		Where("provider_task_id = ? AND provider_task_id <> ''", strings.TrimSpace(providerTaskID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.VideoSegment{}, domainerrors.ErrSegmentNotFound
		}
		return entities.VideoSegment{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListSegmentsByCampaign(ctx context.Context, campaignID string) ([]entities.VideoSegment, error) {
	var rows []segmentModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.VideoSegment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxModel{
		OutboxID:   strings.TrimSpace(envelope.EventID),
		EventType:  strings.TrimSpace(envelope.EventType),
		CampaignID: strings.TrimSpace(envelope.CampaignID),
		Payload:    payload,
		Status:     outboxStatusPending,
		CreatedAt:  envelope.OccurredAt.UTC(),
	}
	if row.OutboxID == "" {
		row.OutboxID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "outbox_id"}},
			DoNothing: true,
		}).
		Create(&row).
		Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]outbox.Message, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]outbox.Message, 0, len(rows))
	for _, row := range rows {
		items = append(items, outbox.Message{
			OutboxID:   row.OutboxID,
			EventType:  row.EventType,
			CampaignID: row.CampaignID,
			Payload:    append([]byte(nil), row.Payload...),
			CreatedAt:  row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		})
	return result.Error
}

func sortScriptsCanonical(scripts []entities.Script) {
	rank := func(section entities.Section) int {
		for i, s := range entities.Sections {
			if s == section {
				return i
			}
		}
		return len(entities.Sections)
	}
	for i := 1; i < len(scripts); i++ {
		for j := i; j > 0 && rank(scripts[j].Section) < rank(scripts[j-1].Section); j-- {
			scripts[j], scripts[j-1] = scripts[j-1], scripts[j]
		}
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
