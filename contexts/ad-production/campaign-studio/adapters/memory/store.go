package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	domainerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
	"adforge/contexts/ad-production/campaign-studio/ports"
	"adforge/internal/shared/outbox"

	"github.com/google/uuid"
)

// Store is the in-memory implementation of every campaign-studio port. One
// mutex guards all collections; the studio's write volume never justifies
// finer locking here.
type Store struct {
	mu sync.RWMutex

	campaigns   map[string]entities.Campaign
	offers      map[string]entities.Offer
	avatars     map[string]entities.Avatar
	hooks       map[string]entities.HookOption
	scripts     map[string]entities.Script
	keyframes   map[string]entities.Keyframe
	transitions map[string]entities.TransitionPrompt
	segments    map[string]entities.VideoSegment

	outboxRows []outboxRow
}

type outboxRow struct {
	message   outbox.Message
	published bool
}

func NewStore() *Store {
	return &Store{
		campaigns:   make(map[string]entities.Campaign),
		offers:      make(map[string]entities.Offer),
		avatars:     make(map[string]entities.Avatar),
		hooks:       make(map[string]entities.HookOption),
		scripts:     make(map[string]entities.Script),
		keyframes:   make(map[string]entities.Keyframe),
		transitions: make(map[string]entities.TransitionPrompt),
		segments:    make(map[string]entities.VideoSegment),
	}
}

func (s *Store) CreateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaign.CampaignID]; exists {
		return domainerrors.ErrInvalidInput
	}
	s.campaigns[campaign.CampaignID] = campaign
	return nil
}

func (s *Store) UpdateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaign.CampaignID]; !exists {
		return domainerrors.ErrCampaignNotFound
	}
	s.campaigns[campaign.CampaignID] = campaign
	return nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.campaigns[strings.TrimSpace(campaignID)]
	if !exists {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return item, nil
}

func (s *Store) ListCampaigns(_ context.Context) ([]entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Campaign, 0, len(s.campaigns))
	for _, campaign := range s.campaigns {
		items = append(items, campaign)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) CreateOffer(_ context.Context, offer entities.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.offers[offer.OfferID]; exists {
		return domainerrors.ErrInvalidInput
	}
	s.offers[offer.OfferID] = offer
	return nil
}

func (s *Store) UpdateOffer(_ context.Context, offer entities.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.offers[offer.OfferID]; !exists {
		return domainerrors.ErrOfferNotFound
	}
	s.offers[offer.OfferID] = offer
	return nil
}

func (s *Store) GetOffer(_ context.Context, offerID string) (entities.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.offers[strings.TrimSpace(offerID)]
	if !exists {
		return entities.Offer{}, domainerrors.ErrOfferNotFound
	}
	return item, nil
}

func (s *Store) ListOffers(_ context.Context) ([]entities.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Offer, 0, len(s.offers))
	for _, offer := range s.offers {
		items = append(items, offer)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) DeleteOffer(_ context.Context, offerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.offers[strings.TrimSpace(offerID)]; !exists {
		return domainerrors.ErrOfferNotFound
	}
	delete(s.offers, strings.TrimSpace(offerID))
	return nil
}

func (s *Store) CreateAvatar(_ context.Context, avatar entities.Avatar) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.avatars[avatar.AvatarID]; exists {
		return domainerrors.ErrInvalidInput
	}
	s.avatars[avatar.AvatarID] = avatar
	return nil
}

func (s *Store) UpdateAvatar(_ context.Context, avatar entities.Avatar) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.avatars[avatar.AvatarID]; !exists {
		return domainerrors.ErrAvatarNotFound
	}
	s.avatars[avatar.AvatarID] = avatar
	return nil
}

func (s *Store) GetAvatar(_ context.Context, avatarID string) (entities.Avatar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.avatars[strings.TrimSpace(avatarID)]
	if !exists {
		return entities.Avatar{}, domainerrors.ErrAvatarNotFound
	}
	return item, nil
}

func (s *Store) ListAvatars(_ context.Context) ([]entities.Avatar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Avatar, 0, len(s.avatars))
	for _, avatar := range s.avatars {
		items = append(items, avatar)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) DeleteAvatar(_ context.Context, avatarID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.avatars[strings.TrimSpace(avatarID)]; !exists {
		return domainerrors.ErrAvatarNotFound
	}
	delete(s.avatars, strings.TrimSpace(avatarID))
	return nil
}

func (s *Store) ReplaceHookOptions(_ context.Context, campaignID string, options []entities.HookOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, option := range s.hooks {
		if option.CampaignID == campaignID {
			delete(s.hooks, id)
		}
	}
	for _, option := range options {
		s.hooks[option.HookID] = option
	}
	return nil
}

func (s *Store) GetHookOption(_ context.Context, hookID string) (entities.HookOption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.hooks[strings.TrimSpace(hookID)]
	if !exists {
		return entities.HookOption{}, domainerrors.ErrHookOptionNotFound
	}
	return item, nil
}

func (s *Store) UpdateHookOption(_ context.Context, option entities.HookOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.hooks[option.HookID]; !exists {
		return domainerrors.ErrHookOptionNotFound
	}
	s.hooks[option.HookID] = option
	return nil
}

func (s *Store) ListHookOptionsByCampaign(_ context.Context, campaignID string) ([]entities.HookOption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.HookOption, 0, entities.HookOptionCount)
	for _, option := range s.hooks {
		if option.CampaignID == strings.TrimSpace(campaignID) {
			items = append(items, option)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].VariantIndex < items[j].VariantIndex
	})
	return items, nil
}

func (s *Store) ReplaceScripts(_ context.Context, campaignID string, scripts []entities.Script) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, script := range s.scripts {
		if script.CampaignID == campaignID {
			delete(s.scripts, id)
		}
	}
	for _, script := range scripts {
		s.scripts[script.ScriptID] = script
	}
	return nil
}

func (s *Store) GetScript(_ context.Context, scriptID string) (entities.Script, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.scripts[strings.TrimSpace(scriptID)]
	if !exists {
		return entities.Script{}, domainerrors.ErrScriptNotFound
	}
	return item, nil
}

func (s *Store) UpdateScript(_ context.Context, script entities.Script) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.scripts[script.ScriptID]; !exists {
		return domainerrors.ErrScriptNotFound
	}
	s.scripts[script.ScriptID] = script
	return nil
}

func (s *Store) ListScriptsByCampaign(_ context.Context, campaignID string) ([]entities.Script, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Script, 0, len(entities.Sections))
	for _, script := range s.scripts {
		if script.CampaignID == strings.TrimSpace(campaignID) {
			items = append(items, script)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return sectionRank(items[i].Section) < sectionRank(items[j].Section)
	})
	return items, nil
}

func (s *Store) CreateKeyframes(_ context.Context, keyframes []entities.Keyframe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, keyframe := range keyframes {
		if _, exists := s.keyframes[keyframe.KeyframeID]; exists {
			return domainerrors.ErrInvalidInput
		}
	}
	for _, keyframe := range keyframes {
		s.keyframes[keyframe.KeyframeID] = keyframe
	}
	return nil
}

func (s *Store) GetKeyframe(_ context.Context, keyframeID string) (entities.Keyframe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.keyframes[strings.TrimSpace(keyframeID)]
	if !exists {
		return entities.Keyframe{}, domainerrors.ErrKeyframeNotFound
	}
	return item, nil
}

func (s *Store) UpdateKeyframe(_ context.Context, keyframe entities.Keyframe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.keyframes[keyframe.KeyframeID]; !exists {
		return domainerrors.ErrKeyframeNotFound
	}
	s.keyframes[keyframe.KeyframeID] = keyframe
	return nil
}

func (s *Store) ResolveKeyframeTask(_ context.Context, keyframeID string, to entities.KeyframeStatus, imageURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keyframe, exists := s.keyframes[strings.TrimSpace(keyframeID)]
	if !exists {
		return domainerrors.ErrKeyframeNotFound
	}
	if keyframe.Status != entities.KeyframeStatusGenerating {
		return domainerrors.ErrPreconditionFailed
	}
	keyframe.Status = to
	if imageURL != "" {
		keyframe.ImageURL = imageURL
	}
	keyframe.UpdatedAt = time.Now().UTC()
	s.keyframes[keyframe.KeyframeID] = keyframe
	return nil
}

func (s *Store) FindKeyframeByTask(_ context.Context, providerTaskID string) (entities.Keyframe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, keyframe := range s.keyframes {
		if keyframe.ProviderTaskID != "" && keyframe.ProviderTaskID == strings.TrimSpace(providerTaskID) {
			return keyframe, nil
		}
	}
	return entities.Keyframe{}, domainerrors.ErrKeyframeNotFound
}

func (s *Store) ListKeyframesByCampaign(_ context.Context, campaignID string) ([]entities.Keyframe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Keyframe, 0)
	for _, keyframe := range s.keyframes {
		if keyframe.CampaignID == strings.TrimSpace(campaignID) {
			items = append(items, keyframe)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Section != items[j].Section {
			return sectionRank(items[i].Section) < sectionRank(items[j].Section)
		}
		if items[i].Position != items[j].Position {
			return positionRank(items[i].Position) < positionRank(items[j].Position)
		}
		return items[i].VariantIndex < items[j].VariantIndex
	})
	return items, nil
}

func (s *Store) ListKeyframesBySlot(_ context.Context, campaignID string, section entities.Section, position entities.Position) ([]entities.Keyframe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Keyframe, 0, entities.KeyframeVariantCount)
	for _, keyframe := range s.keyframes {
		if keyframe.CampaignID == strings.TrimSpace(campaignID) && keyframe.Section == section && keyframe.Position == position {
			items = append(items, keyframe)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].VariantIndex < items[j].VariantIndex
	})
	return items, nil
}

func (s *Store) GetSelectedKeyframe(_ context.Context, campaignID string, section entities.Section, position entities.Position) (entities.Keyframe, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, keyframe := range s.keyframes {
		if keyframe.CampaignID == strings.TrimSpace(campaignID) &&
			keyframe.Section == section &&
			keyframe.Position == position &&
			keyframe.Status == entities.KeyframeStatusSelected {
			return keyframe, true, nil
		}
	}
	return entities.Keyframe{}, false, nil
}

func (s *Store) CountSelectedKeyframes(_ context.Context, campaignID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, keyframe := range s.keyframes {
		if keyframe.CampaignID == strings.TrimSpace(campaignID) && keyframe.Status == entities.KeyframeStatusSelected {
			count++
		}
	}
	return count, nil
}

func (s *Store) ReplaceTransitions(_ context.Context, campaignID string, section entities.Section, prompts []entities.TransitionPrompt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, prompt := range s.transitions {
		if prompt.CampaignID == campaignID && prompt.Section == section {
			delete(s.transitions, id)
		}
	}
	for _, prompt := range prompts {
		s.transitions[prompt.PromptID] = prompt
	}
	return nil
}

func (s *Store) GetTransition(_ context.Context, promptID string) (entities.TransitionPrompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.transitions[strings.TrimSpace(promptID)]
	if !exists {
		return entities.TransitionPrompt{}, domainerrors.ErrTransitionNotFound
	}
	return item, nil
}

func (s *Store) UpdateTransition(_ context.Context, prompt entities.TransitionPrompt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.transitions[prompt.PromptID]; !exists {
		return domainerrors.ErrTransitionNotFound
	}
	s.transitions[prompt.PromptID] = prompt
	return nil
}

func (s *Store) ListTransitionsByCampaign(_ context.Context, campaignID string) ([]entities.TransitionPrompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.TransitionPrompt, 0)
	for _, prompt := range s.transitions {
		if prompt.CampaignID == strings.TrimSpace(campaignID) {
			items = append(items, prompt)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Section != items[j].Section {
			return sectionRank(items[i].Section) < sectionRank(items[j].Section)
		}
		return items[i].Direction < items[j].Direction
	})
	return items, nil
}

func (s *Store) CreateSegments(_ context.Context, segments []entities.VideoSegment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, segment := range segments {
		if _, exists := s.segments[segment.SegmentID]; exists {
			return domainerrors.ErrInvalidInput
		}
	}
	for _, segment := range segments {
		s.segments[segment.SegmentID] = segment
	}
	return nil
}

func (s *Store) GetSegment(_ context.Context, segmentID string) (entities.VideoSegment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.segments[strings.TrimSpace(segmentID)]
	if !exists {
		return entities.VideoSegment{}, domainerrors.ErrSegmentNotFound
	}
	return item, nil
}

func (s *Store) UpdateSegment(_ context.Context, segment entities.VideoSegment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.segments[segment.SegmentID]; !exists {
		return domainerrors.ErrSegmentNotFound
	}
	s.segments[segment.SegmentID] = segment
	return nil
}

func (s *Store) ResolveSegmentTask(_ context.Context, segmentID string, to entities.SegmentStatus, videoURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	segment, exists := s.segments[strings.TrimSpace(segmentID)]
	if !exists {
		return domainerrors.ErrSegmentNotFound
	}
	if segment.Status != entities.SegmentStatusQueued && segment.Status != entities.SegmentStatusGenerating {
		return domainerrors.ErrPreconditionFailed
	}
	segment.Status = to
	if videoURL != "" {
		segment.VideoURL = videoURL
	}
	segment.UpdatedAt = time.Now().UTC()
	s.segments[segment.SegmentID] = segment
	return nil
}

func (s *Store) ListSegmentsByCampaign(_ context.Context, campaignID string) ([]entities.VideoSegment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.VideoSegment, 0)
	for _, segment := range s.segments {
		if segment.CampaignID == strings.TrimSpace(campaignID) {
			items = append(items, segment)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) FindSegmentByTask(_ context.Context, providerTaskID string) (entities.VideoSegment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, segment := range s.segments {
		if segment.ProviderTaskID != "" && segment.ProviderTaskID == strings.TrimSpace(providerTaskID) {
			return segment, nil
		}
	}
	return entities.VideoSegment{}, domainerrors.ErrSegmentNotFound
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	s.outboxRows = append(s.outboxRows, outboxRow{
		message: outbox.Message{
			OutboxID:   envelope.EventID,
			EventType:  envelope.EventType,
			CampaignID: envelope.CampaignID,
			Payload:    payload,
			CreatedAt:  time.Now().UTC(),
		},
	})
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]outbox.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]outbox.Message, 0, limit)
	for _, row := range s.outboxRows {
		if row.published {
			continue
		}
		items = append(items, row.message)
		if len(items) >= limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.outboxRows {
		if s.outboxRows[i].message.OutboxID == outboxID {
			s.outboxRows[i].published = true
			return nil
		}
	}
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func sectionRank(section entities.Section) int {
	for i, s := range entities.Sections {
		if s == section {
			return i
		}
	}
	return len(entities.Sections)
}

func positionRank(position entities.Position) int {
	for i, p := range entities.Positions {
		if p == position {
			return i
		}
	}
	return len(entities.Positions)
}
