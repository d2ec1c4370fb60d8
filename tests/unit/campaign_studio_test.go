package unit

import (
	"context"
	"strings"
	"sync"
	"testing"

	campaignstudio "adforge/contexts/ad-production/campaign-studio"
	"adforge/contexts/ad-production/campaign-studio/application/commands"
	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	studioports "adforge/contexts/ad-production/campaign-studio/ports"
	httptransport "adforge/contexts/ad-production/campaign-studio/transport/http"
	creativeagents "adforge/contexts/ad-production/creative-agents"
	"adforge/internal/app/bootstrap"
)

// stubMedia records enqueued jobs so tests can resolve them explicitly via
// the completion command, keeping the pipeline deterministic.
type stubMedia struct {
	mu     sync.Mutex
	images []studioports.MediaJob
	videos []studioports.MediaJob
}

func (m *stubMedia) EnqueueImage(_ context.Context, job studioports.MediaJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images = append(m.images, job)
	return nil
}

func (m *stubMedia) EnqueueVideo(_ context.Context, job studioports.MediaJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.videos = append(m.videos, job)
	return nil
}

func newStudioModule() (campaignstudio.Module, *stubMedia) {
	media := &stubMedia{}
	director := bootstrap.NewAgentDirector(creativeagents.NewInMemoryModule(nil))
	module := campaignstudio.NewInMemoryModule(director, media, nil)
	return module, media
}

func advancePhase(t *testing.T, module campaignstudio.Module, campaignID, target string) httptransport.CampaignDTO {
	t.Helper()
	campaign, err := module.Handler.AdvancePhaseHandler(context.Background(), campaignID, httptransport.AdvancePhaseRequest{Target: target})
	if err != nil {
		t.Fatalf("advance to %s failed: %v", target, err)
	}
	return campaign
}

// newScriptingCampaign builds an offer and avatar through the agents and
// walks a fresh campaign to the scripting phase.
func newScriptingCampaign(t *testing.T, module campaignstudio.Module) string {
	t.Helper()
	ctx := context.Background()

	offer, err := module.Handler.BuildOfferHandler(ctx, httptransport.BuildOfferRequest{
		ProductName:        "SiteTrack Pro",
		ProductDescription: "Field service management software for small contractor crews",
		TargetAudience:     "general contractors running 2-4 crews",
	})
	if err != nil {
		t.Fatalf("build offer failed: %v", err)
	}
	if offer.OfferID == "" || offer.DreamOutcome == "" {
		t.Fatalf("expected populated offer, got %+v", offer)
	}

	avatar, err := module.Handler.BuildAvatarHandler(ctx, httptransport.BuildAvatarRequest{
		OfferID:           offer.OfferID,
		TargetDescription: "overworked general contractor",
		Industry:          "construction",
	})
	if err != nil {
		t.Fatalf("build avatar failed: %v", err)
	}
	if avatar.AvatarID == "" || len(avatar.PainPoints) == 0 {
		t.Fatalf("expected populated avatar, got %+v", avatar)
	}

	campaign, err := module.Handler.CreateCampaignHandler(ctx, httptransport.CreateCampaignRequest{
		OfferID:  offer.OfferID,
		AvatarID: avatar.AvatarID,
		AdFormat: "ugc",
	})
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	if campaign.Phase != "setup" {
		t.Fatalf("expected new campaign in setup, got %s", campaign.Phase)
	}

	advancePhase(t, module, campaign.CampaignID, "brief")
	advancePhase(t, module, campaign.CampaignID, "scripting")
	return campaign.CampaignID
}

// approveScripts runs hook selection and script generation and approves
// every section.
func approveScripts(t *testing.T, module campaignstudio.Module, campaignID string) {
	t.Helper()
	ctx := context.Background()

	hooks, err := module.Handler.GenerateHooksHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("generate hooks failed: %v", err)
	}
	if len(hooks) != entities.HookOptionCount {
		t.Fatalf("expected %d hook options, got %d", entities.HookOptionCount, len(hooks))
	}
	if _, err := module.Handler.SelectHookHandler(ctx, campaignID, httptransport.SelectHookRequest{HookID: hooks[0].HookID}); err != nil {
		t.Fatalf("select hook failed: %v", err)
	}

	scripts, err := module.Handler.GenerateScriptHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("generate script failed: %v", err)
	}
	if len(scripts) != len(entities.Sections) {
		t.Fatalf("expected %d script sections, got %d", len(entities.Sections), len(scripts))
	}
	if _, err := module.Handler.ApproveScriptHandler(ctx, campaignID, ""); err != nil {
		t.Fatalf("approve scripts failed: %v", err)
	}
}

func lockConsistency(t *testing.T, module campaignstudio.Module, campaignID string) {
	t.Helper()
	ctx := context.Background()

	advancePhase(t, module, campaignID, "consistency")
	if _, err := module.Handler.GenerateConsistencyHandler(ctx, campaignID); err != nil {
		t.Fatalf("generate consistency spec failed: %v", err)
	}
	if _, err := module.Handler.LockConsistencyHandler(ctx, campaignID); err != nil {
		t.Fatalf("lock consistency spec failed: %v", err)
	}
}

// fillKeyframes walks all fifteen slots in canonical order: generate four
// variants, resolve them, select the first.
func fillKeyframes(t *testing.T, module campaignstudio.Module, campaignID string) {
	t.Helper()
	ctx := context.Background()

	for _, section := range entities.Sections {
		for _, position := range entities.Positions {
			variants, err := module.Handler.GenerateKeyframesHandler(ctx, campaignID, httptransport.GenerateKeyframesRequest{
				Section:  string(section),
				Position: string(position),
			})
			if err != nil {
				t.Fatalf("generate keyframes %s/%s failed: %v", section, position, err)
			}
			if len(variants) != entities.KeyframeVariantCount {
				t.Fatalf("expected %d variants at %s/%s, got %d",
					entities.KeyframeVariantCount, section, position, len(variants))
			}
			for _, variant := range variants {
				if variant.Status != "generating" {
					t.Fatalf("expected variant %s generating, got %s", variant.KeyframeID, variant.Status)
				}
				err := module.Complete.Execute(ctx, commands.CompleteGenerationCommand{
					AssetID:   variant.KeyframeID,
					Succeeded: true,
					ResultURL: "https://cdn.test/keyframes/" + variant.KeyframeID + ".png",
				})
				if err != nil {
					t.Fatalf("complete keyframe %s failed: %v", variant.KeyframeID, err)
				}
			}
			if _, err := module.Handler.SelectKeyframeHandler(ctx, campaignID, httptransport.SelectKeyframeRequest{
				KeyframeID: variants[0].KeyframeID,
			}); err != nil {
				t.Fatalf("select keyframe %s/%s failed: %v", section, position, err)
			}
		}
	}
}

func TestFullPipelineToExport(t *testing.T) {
	module, media := newStudioModule()
	ctx := context.Background()

	campaignID := newScriptingCampaign(t, module)
	approveScripts(t, module, campaignID)
	lockConsistency(t, module, campaignID)
	advancePhase(t, module, campaignID, "keyframing")
	fillKeyframes(t, module, campaignID)

	if got := len(media.images); got != entities.SlotCount*entities.KeyframeVariantCount {
		t.Fatalf("expected %d image jobs, got %d", entities.SlotCount*entities.KeyframeVariantCount, got)
	}

	for _, section := range entities.Sections {
		prompts, err := module.Handler.GenerateTransitionsHandler(ctx, campaignID, httptransport.GenerateTransitionsRequest{
			Section: string(section),
		})
		if err != nil {
			t.Fatalf("generate transitions for %s failed: %v", section, err)
		}
		if len(prompts) != len(entities.TransitionDirections) {
			t.Fatalf("expected %d transition prompts for %s, got %d",
				len(entities.TransitionDirections), section, len(prompts))
		}
	}

	advancePhase(t, module, campaignID, "storyboarding")
	board, err := module.Handler.AssembleStoryboardHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("assemble storyboard failed: %v", err)
	}
	if !strings.Contains(string(board), "\"total_duration\":60") && !strings.Contains(string(board), "\"TotalDuration\":60") {
		t.Fatalf("expected 60 second storyboard, got %s", board)
	}
	if _, err := module.Handler.ApproveStoryboardHandler(ctx, campaignID); err != nil {
		t.Fatalf("approve storyboard failed: %v", err)
	}

	advancePhase(t, module, campaignID, "generating_video")
	segments, err := module.Handler.GenerateVideoHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("generate video failed: %v", err)
	}
	wantSegments := len(entities.Sections) * len(entities.TransitionDirections)
	if len(segments) != wantSegments {
		t.Fatalf("expected %d segments, got %d", wantSegments, len(segments))
	}
	if len(media.videos) != wantSegments {
		t.Fatalf("expected %d video jobs, got %d", wantSegments, len(media.videos))
	}
	for _, segment := range segments {
		err := module.Complete.Execute(ctx, commands.CompleteGenerationCommand{
			AssetID:   segment.SegmentID,
			Succeeded: true,
			ResultURL: "https://cdn.test/videos/" + segment.SegmentID + ".mp4",
		})
		if err != nil {
			t.Fatalf("complete segment %s failed: %v", segment.SegmentID, err)
		}
	}

	advancePhase(t, module, campaignID, "reviewing")
	for _, segment := range segments {
		if _, err := module.Handler.ApproveSegmentHandler(ctx, campaignID, segment.SegmentID); err != nil {
			t.Fatalf("approve segment %s failed: %v", segment.SegmentID, err)
		}
	}

	manifest, err := module.Handler.ExportHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if manifest.TotalDuration != 60 {
		t.Fatalf("expected 60 second export, got %d", manifest.TotalDuration)
	}
	if len(manifest.Segments) != wantSegments {
		t.Fatalf("expected %d exported segments, got %d", wantSegments, len(manifest.Segments))
	}
	if manifest.Segments[0].Section != "hook" || manifest.Segments[0].Direction != "start_to_middle" {
		t.Fatalf("expected hook/start_to_middle first, got %s/%s",
			manifest.Segments[0].Section, manifest.Segments[0].Direction)
	}

	state, err := module.Handler.GetCampaignStateHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("get campaign state failed: %v", err)
	}
	if state.Campaign.Phase != "exported" {
		t.Fatalf("expected campaign exported, got %s", state.Campaign.Phase)
	}
}

func TestSelectHookRejectsSiblings(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID := newScriptingCampaign(t, module)
	hooks, err := module.Handler.GenerateHooksHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("generate hooks failed: %v", err)
	}
	selected, err := module.Handler.SelectHookHandler(ctx, campaignID, httptransport.SelectHookRequest{HookID: hooks[2].HookID})
	if err != nil {
		t.Fatalf("select hook failed: %v", err)
	}
	if selected.Status != "selected" {
		t.Fatalf("expected selected status, got %s", selected.Status)
	}

	state, err := module.Handler.GetCampaignStateHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("get campaign state failed: %v", err)
	}
	selectedCount, rejectedCount := 0, 0
	for _, option := range state.HookOptions {
		switch option.Status {
		case "selected":
			selectedCount++
		case "rejected":
			rejectedCount++
		}
	}
	if selectedCount != 1 || rejectedCount != entities.HookOptionCount-1 {
		t.Fatalf("expected 1 selected and %d rejected, got %d/%d",
			entities.HookOptionCount-1, selectedCount, rejectedCount)
	}
}

func TestSelectKeyframeRejectsSiblingsAndReportsNextSlot(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID := newScriptingCampaign(t, module)
	approveScripts(t, module, campaignID)
	lockConsistency(t, module, campaignID)
	advancePhase(t, module, campaignID, "keyframing")

	variants, err := module.Handler.GenerateKeyframesHandler(ctx, campaignID, httptransport.GenerateKeyframesRequest{
		Section:  "hook",
		Position: "start",
	})
	if err != nil {
		t.Fatalf("generate keyframes failed: %v", err)
	}
	for _, variant := range variants {
		err := module.Complete.Execute(ctx, commands.CompleteGenerationCommand{
			AssetID:   variant.KeyframeID,
			Succeeded: true,
			ResultURL: "https://cdn.test/" + variant.KeyframeID + ".png",
		})
		if err != nil {
			t.Fatalf("complete keyframe failed: %v", err)
		}
	}

	result, err := module.Handler.SelectKeyframeHandler(ctx, campaignID, httptransport.SelectKeyframeRequest{
		KeyframeID: variants[1].KeyframeID,
	})
	if err != nil {
		t.Fatalf("select keyframe failed: %v", err)
	}
	if result.Selected.Status != "selected" {
		t.Fatalf("expected selected keyframe, got %s", result.Selected.Status)
	}
	if result.Complete {
		t.Fatalf("first slot selection must not complete the sequence")
	}
	if result.NextPosition == nil || *result.NextPosition != "middle" {
		t.Fatalf("expected next position middle, got %v", result.NextPosition)
	}

	state, err := module.Handler.GetCampaignStateHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("get campaign state failed: %v", err)
	}
	rejected := 0
	for _, keyframe := range state.Keyframes {
		if keyframe.Status == "rejected" {
			rejected++
		}
	}
	if rejected != entities.KeyframeVariantCount-1 {
		t.Fatalf("expected %d rejected siblings, got %d", entities.KeyframeVariantCount-1, rejected)
	}
}

func TestTransitionUserEditWinsInStoryboard(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID := newScriptingCampaign(t, module)
	approveScripts(t, module, campaignID)
	lockConsistency(t, module, campaignID)
	advancePhase(t, module, campaignID, "keyframing")
	fillKeyframes(t, module, campaignID)

	var editedPromptID string
	for _, section := range entities.Sections {
		prompts, err := module.Handler.GenerateTransitionsHandler(ctx, campaignID, httptransport.GenerateTransitionsRequest{
			Section: string(section),
		})
		if err != nil {
			t.Fatalf("generate transitions for %s failed: %v", section, err)
		}
		if section == entities.SectionHook {
			editedPromptID = prompts[0].PromptID
		}
	}

	const override = "Whip-pan from the dark cab to the glowing map screen."
	edited, err := module.Handler.EditTransitionHandler(ctx, campaignID, editedPromptID, httptransport.EditTransitionRequest{Text: override})
	if err != nil {
		t.Fatalf("edit transition failed: %v", err)
	}
	if !edited.UserEdited || edited.EffectiveText != override {
		t.Fatalf("expected user edit to take effect, got %+v", edited)
	}

	advancePhase(t, module, campaignID, "storyboarding")
	board, err := module.Handler.AssembleStoryboardHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("assemble storyboard failed: %v", err)
	}
	if !strings.Contains(string(board), override) {
		t.Fatalf("expected storyboard to carry the edited transition text")
	}
}
