package unit

import (
	"context"
	"errors"
	"testing"

	campaignstudio "adforge/contexts/ad-production/campaign-studio"
	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	domainerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
	httptransport "adforge/contexts/ad-production/campaign-studio/transport/http"
)

func TestPhaseCannotSkipAhead(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID := newScriptingCampaign(t, module)

	_, err := module.Handler.AdvancePhaseHandler(ctx, campaignID, httptransport.AdvancePhaseRequest{Target: "keyframing"})
	if !errors.Is(err, domainerrors.ErrPhaseViolation) {
		t.Fatalf("expected phase violation skipping consistency without the flag, got %v", err)
	}
	_, err = module.Handler.AdvancePhaseHandler(ctx, campaignID, httptransport.AdvancePhaseRequest{Target: "exported"})
	if !errors.Is(err, domainerrors.ErrPhaseViolation) {
		t.Fatalf("expected phase violation jumping to exported, got %v", err)
	}
}

func TestPhaseNeverMovesBackward(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID := newScriptingCampaign(t, module)
	_, err := module.Handler.AdvancePhaseHandler(ctx, campaignID, httptransport.AdvancePhaseRequest{Target: "brief"})
	if !errors.Is(err, domainerrors.ErrPhaseViolation) {
		t.Fatalf("expected phase violation moving backward, got %v", err)
	}
	_, err = module.Handler.AdvancePhaseHandler(ctx, campaignID, httptransport.AdvancePhaseRequest{Target: "scripting"})
	if !errors.Is(err, domainerrors.ErrPhaseViolation) {
		t.Fatalf("expected phase violation on a self transition, got %v", err)
	}
}

func TestConsistencyGateRequiresApprovedScripts(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID := newScriptingCampaign(t, module)
	_, err := module.Handler.AdvancePhaseHandler(ctx, campaignID, httptransport.AdvancePhaseRequest{Target: "consistency"})
	if !errors.Is(err, domainerrors.ErrPhaseViolation) {
		t.Fatalf("expected phase violation without approved scripts, got %v", err)
	}
}

// newSkipConsistencyCampaign walks a skip_consistency campaign to scripting.
func newSkipConsistencyCampaign(t *testing.T, module campaignstudio.Module) string {
	t.Helper()
	ctx := context.Background()

	offer, err := module.Handler.BuildOfferHandler(ctx, httptransport.BuildOfferRequest{
		ProductName:        "SiteTrack Pro",
		ProductDescription: "Field service management software",
	})
	if err != nil {
		t.Fatalf("build offer failed: %v", err)
	}
	avatar, err := module.Handler.BuildAvatarHandler(ctx, httptransport.BuildAvatarRequest{
		OfferID:           offer.OfferID,
		TargetDescription: "overworked general contractor",
	})
	if err != nil {
		t.Fatalf("build avatar failed: %v", err)
	}
	campaign, err := module.Handler.CreateCampaignHandler(ctx, httptransport.CreateCampaignRequest{
		OfferID:         offer.OfferID,
		AvatarID:        avatar.AvatarID,
		AdFormat:        "story_movie",
		SkipConsistency: true,
	})
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	advancePhase(t, module, campaign.CampaignID, "brief")
	advancePhase(t, module, campaign.CampaignID, "scripting")
	return campaign.CampaignID
}

func TestSkipConsistencyBypassesToKeyframing(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID := newSkipConsistencyCampaign(t, module)
	approveScripts(t, module, campaignID)

	campaign := advancePhase(t, module, campaignID, "keyframing")
	if campaign.Phase != "keyframing" {
		t.Fatalf("expected keyframing after bypass, got %s", campaign.Phase)
	}

	// The bypassed campaign keyframes without a consistency spec.
	variants, err := module.Handler.GenerateKeyframesHandler(ctx, campaignID, httptransport.GenerateKeyframesRequest{
		Section:  "hook",
		Position: "start",
	})
	if err != nil {
		t.Fatalf("generate keyframes after bypass failed: %v", err)
	}
	if len(variants) != entities.KeyframeVariantCount {
		t.Fatalf("expected %d variants, got %d", entities.KeyframeVariantCount, len(variants))
	}
}

func TestKeyframingGateRequiresLockedSpec(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID := newScriptingCampaign(t, module)
	approveScripts(t, module, campaignID)
	advancePhase(t, module, campaignID, "consistency")

	_, err := module.Handler.AdvancePhaseHandler(ctx, campaignID, httptransport.AdvancePhaseRequest{Target: "keyframing"})
	if !errors.Is(err, domainerrors.ErrPhaseViolation) {
		t.Fatalf("expected phase violation without locked spec, got %v", err)
	}

	if _, err := module.Handler.GenerateConsistencyHandler(ctx, campaignID); err != nil {
		t.Fatalf("generate consistency spec failed: %v", err)
	}
	if _, err := module.Handler.LockConsistencyHandler(ctx, campaignID); err != nil {
		t.Fatalf("lock consistency spec failed: %v", err)
	}
	advancePhase(t, module, campaignID, "keyframing")
}

func TestLockedSpecIsImmutable(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID := newScriptingCampaign(t, module)
	approveScripts(t, module, campaignID)
	lockConsistency(t, module, campaignID)

	_, err := module.Handler.GenerateConsistencyHandler(ctx, campaignID)
	if !errors.Is(err, domainerrors.ErrPreconditionFailed) {
		t.Fatalf("expected precondition failure regenerating a locked spec, got %v", err)
	}

	// Locking twice is a no-op, not an error.
	if _, err := module.Handler.LockConsistencyHandler(ctx, campaignID); err != nil {
		t.Fatalf("re-locking failed: %v", err)
	}
}

func TestKeyframeSlotsFillInSequence(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID := newScriptingCampaign(t, module)
	approveScripts(t, module, campaignID)
	lockConsistency(t, module, campaignID)
	advancePhase(t, module, campaignID, "keyframing")

	_, err := module.Handler.GenerateKeyframesHandler(ctx, campaignID, httptransport.GenerateKeyframesRequest{
		Section:  "hook",
		Position: "middle",
	})
	if !errors.Is(err, domainerrors.ErrPreconditionFailed) {
		t.Fatalf("expected precondition failure generating middle before start resolves, got %v", err)
	}

	_, err = module.Handler.GenerateKeyframesHandler(ctx, campaignID, httptransport.GenerateKeyframesRequest{
		Section:  "problem",
		Position: "start",
	})
	if !errors.Is(err, domainerrors.ErrPreconditionFailed) {
		t.Fatalf("expected precondition failure generating the next section early, got %v", err)
	}
}

func TestSelectKeyframeRequiresGeneratedVariant(t *testing.T) {
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

	_, err = module.Handler.SelectKeyframeHandler(ctx, campaignID, httptransport.SelectKeyframeRequest{
		KeyframeID: variants[0].KeyframeID,
	})
	if !errors.Is(err, domainerrors.ErrPreconditionFailed) {
		t.Fatalf("expected precondition failure selecting a generating variant, got %v", err)
	}
}

func TestApprovedScriptIsImmutable(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID := newScriptingCampaign(t, module)
	approveScripts(t, module, campaignID)

	state, err := module.Handler.GetCampaignStateHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("get campaign state failed: %v", err)
	}
	copyText := "rewrite attempt"
	_, err = module.Handler.UpdateScriptHandler(ctx, campaignID, state.Scripts[0].ScriptID, httptransport.UpdateScriptRequest{
		CopyText: &copyText,
	})
	if !errors.Is(err, domainerrors.ErrPreconditionFailed) {
		t.Fatalf("expected precondition failure editing an approved script, got %v", err)
	}
}

func TestDraftStoryboardBlocksVideoGeneration(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID := newScriptingCampaign(t, module)
	approveScripts(t, module, campaignID)
	lockConsistency(t, module, campaignID)
	advancePhase(t, module, campaignID, "keyframing")
	fillKeyframes(t, module, campaignID)
	for _, section := range entities.Sections {
		if _, err := module.Handler.GenerateTransitionsHandler(ctx, campaignID, httptransport.GenerateTransitionsRequest{
			Section: string(section),
		}); err != nil {
			t.Fatalf("generate transitions failed: %v", err)
		}
	}
	advancePhase(t, module, campaignID, "storyboarding")
	if _, err := module.Handler.AssembleStoryboardHandler(ctx, campaignID); err != nil {
		t.Fatalf("assemble storyboard failed: %v", err)
	}

	// Draft storyboards block video generation unless the operator opted in.
	_, err := module.Handler.AdvancePhaseHandler(ctx, campaignID, httptransport.AdvancePhaseRequest{Target: "generating_video"})
	if !errors.Is(err, domainerrors.ErrPhaseViolation) {
		t.Fatalf("expected phase violation on draft storyboard, got %v", err)
	}
}
