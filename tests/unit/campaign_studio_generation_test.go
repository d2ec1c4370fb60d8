package unit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	campaignstudio "adforge/contexts/ad-production/campaign-studio"
	"adforge/contexts/ad-production/campaign-studio/application/commands"
	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	domainerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
	httptransport "adforge/contexts/ad-production/campaign-studio/transport/http"
)

// firstKeyframeSlot walks a campaign to keyframing and generates the first
// slot's variants.
func firstKeyframeSlot(t *testing.T, module campaignstudio.Module) (string, []httptransport.KeyframeDTO) {
	t.Helper()
	campaignID := newScriptingCampaign(t, module)
	approveScripts(t, module, campaignID)
	lockConsistency(t, module, campaignID)
	advancePhase(t, module, campaignID, "keyframing")

	variants, err := module.Handler.GenerateKeyframesHandler(context.Background(), campaignID, httptransport.GenerateKeyframesRequest{
		Section:  "hook",
		Position: "start",
	})
	if err != nil {
		t.Fatalf("generate keyframes failed: %v", err)
	}
	return campaignID, variants
}

func keyframeByID(t *testing.T, module campaignstudio.Module, campaignID, keyframeID string) httptransport.KeyframeDTO {
	t.Helper()
	state, err := module.Handler.GetCampaignStateHandler(context.Background(), campaignID)
	if err != nil {
		t.Fatalf("get campaign state failed: %v", err)
	}
	for _, keyframe := range state.Keyframes {
		if keyframe.KeyframeID == keyframeID {
			return keyframe
		}
	}
	t.Fatalf("keyframe %s not in campaign state", keyframeID)
	return httptransport.KeyframeDTO{}
}

func TestProviderWebhookResolvesKeyframe(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID, variants := firstKeyframeSlot(t, module)
	err := module.RecordTask.Execute(ctx, commands.RecordGenerationTaskCommand{
		AssetID:        variants[0].KeyframeID,
		Provider:       "freepik",
		Model:          "flux-dev",
		ProviderTaskID: "task-hook-start-0",
	})
	if err != nil {
		t.Fatalf("record task failed: %v", err)
	}

	err = module.Handler.ProviderWebhookHandler(ctx, httptransport.ProviderWebhookRequest{
		TaskID:    "task-hook-start-0",
		Status:    "COMPLETED",
		ResultURL: "https://cdn.test/hook-start.png",
	})
	if err != nil {
		t.Fatalf("webhook failed: %v", err)
	}

	keyframe := keyframeByID(t, module, campaignID, variants[0].KeyframeID)
	if keyframe.Status != "generated" || keyframe.ImageURL != "https://cdn.test/hook-start.png" {
		t.Fatalf("expected generated keyframe with image url, got %+v", keyframe)
	}
}

func TestProviderWebhookUnknownTask(t *testing.T) {
	module, _ := newStudioModule()

	err := module.Handler.ProviderWebhookHandler(context.Background(), httptransport.ProviderWebhookRequest{
		TaskID: "no-such-task",
		Status: "COMPLETED",
	})
	if !errors.Is(err, domainerrors.ErrTaskNotFound) {
		t.Fatalf("expected task not found, got %v", err)
	}
}

func TestProviderWebhookIgnoresNonTerminalStatus(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID, variants := firstKeyframeSlot(t, module)
	err := module.RecordTask.Execute(ctx, commands.RecordGenerationTaskCommand{
		AssetID:        variants[1].KeyframeID,
		Provider:       "freepik",
		Model:          "flux-dev",
		ProviderTaskID: "task-in-progress",
	})
	if err != nil {
		t.Fatalf("record task failed: %v", err)
	}

	err = module.Handler.ProviderWebhookHandler(ctx, httptransport.ProviderWebhookRequest{
		TaskID: "task-in-progress",
		Status: "IN_PROGRESS",
	})
	if err != nil {
		t.Fatalf("progress callback must be acknowledged, got %v", err)
	}
	keyframe := keyframeByID(t, module, campaignID, variants[1].KeyframeID)
	if keyframe.Status != "generating" {
		t.Fatalf("expected keyframe still generating, got %s", keyframe.Status)
	}
}

func TestLateCompletionCannotClobberResolvedAsset(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID, variants := firstKeyframeSlot(t, module)
	target := variants[0].KeyframeID
	err := module.Complete.Execute(ctx, commands.CompleteGenerationCommand{
		AssetID:   target,
		Succeeded: true,
		ResultURL: "https://cdn.test/first.png",
	})
	if err != nil {
		t.Fatalf("first completion failed: %v", err)
	}

	// A stale poll reporting failure afterwards is swallowed.
	err = module.Complete.Execute(ctx, commands.CompleteGenerationCommand{
		AssetID:   target,
		Succeeded: false,
	})
	if err != nil {
		t.Fatalf("late completion must be a no-op, got %v", err)
	}
	keyframe := keyframeByID(t, module, campaignID, target)
	if keyframe.Status != "generated" || keyframe.ImageURL != "https://cdn.test/first.png" {
		t.Fatalf("expected the first completion to stand, got %+v", keyframe)
	}
}

func TestFailedGenerationRejectsVariant(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	campaignID, variants := firstKeyframeSlot(t, module)
	err := module.Complete.Execute(ctx, commands.CompleteGenerationCommand{
		AssetID:   variants[3].KeyframeID,
		Succeeded: false,
	})
	if err != nil {
		t.Fatalf("failure completion failed: %v", err)
	}
	keyframe := keyframeByID(t, module, campaignID, variants[3].KeyframeID)
	if keyframe.Status != "rejected" {
		t.Fatalf("expected rejected keyframe, got %s", keyframe.Status)
	}

	_, err = module.Handler.SelectKeyframeHandler(ctx, campaignID, httptransport.SelectKeyframeRequest{
		KeyframeID: variants[3].KeyframeID,
	})
	if !errors.Is(err, domainerrors.ErrPreconditionFailed) {
		t.Fatalf("expected precondition failure selecting a rejected variant, got %v", err)
	}
}

func TestOperationsDispatcher(t *testing.T) {
	module, _ := newStudioModule()
	ctx := context.Background()

	payload, _ := json.Marshal(map[string]string{
		"productName":        "SiteTrack Pro",
		"productDescription": "Field service management software",
	})
	result, err := module.Handler.OperationHandler(ctx, httptransport.OperationRequest{
		Operation: "buildOffer",
		Payload:   payload,
	})
	if err != nil {
		t.Fatalf("buildOffer operation failed: %v", err)
	}
	offer, ok := result.(entities.Offer)
	if !ok {
		t.Fatalf("expected an offer result, got %T", result)
	}
	if offer.OfferID == "" || offer.DreamOutcome == "" {
		t.Fatalf("expected populated offer, got %+v", offer)
	}

	_, err = module.Handler.OperationHandler(ctx, httptransport.OperationRequest{
		Operation: "transcodeAudio",
	})
	if !errors.Is(err, domainerrors.ErrUnknownOperation) {
		t.Fatalf("expected unknown operation, got %v", err)
	}
}

func TestRegenerateSegmentResetsAndRequeues(t *testing.T) {
	module, media := newStudioModule()
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
	if _, err := module.Handler.ApproveStoryboardHandler(ctx, campaignID); err != nil {
		t.Fatalf("approve storyboard failed: %v", err)
	}
	advancePhase(t, module, campaignID, "generating_video")
	segments, err := module.Handler.GenerateVideoHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("generate video failed: %v", err)
	}

	target := segments[0]
	if _, err := module.Handler.ApproveSegmentHandler(ctx, campaignID, target.SegmentID); !errors.Is(err, domainerrors.ErrPreconditionFailed) {
		t.Fatalf("expected precondition failure approving a queued segment, got %v", err)
	}

	err = module.Complete.Execute(ctx, commands.CompleteGenerationCommand{
		AssetID:   target.SegmentID,
		Succeeded: true,
		ResultURL: "https://cdn.test/take-one.mp4",
	})
	if err != nil {
		t.Fatalf("complete segment failed: %v", err)
	}

	jobsBefore := len(media.videos)
	const override = "Hold steady on the map screen, then rack focus to the contractor's grin."
	regenerated, err := module.Handler.RegenerateSegmentHandler(ctx, campaignID, target.SegmentID, httptransport.RegenerateSegmentRequest{
		PromptOverride: override,
	})
	if err != nil {
		t.Fatalf("regenerate segment failed: %v", err)
	}
	if regenerated.Status != "queued" || regenerated.VideoURL != "" || regenerated.VideoPrompt != override {
		t.Fatalf("expected requeued segment with override, got %+v", regenerated)
	}
	if len(media.videos) != jobsBefore+1 {
		t.Fatalf("expected one new video job, got %d extra", len(media.videos)-jobsBefore)
	}
	if media.videos[len(media.videos)-1].Prompt != override {
		t.Fatalf("expected requeued job to carry the override prompt")
	}
}

func TestExportRequiresAllSegmentsApproved(t *testing.T) {
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
	if _, err := module.Handler.ApproveStoryboardHandler(ctx, campaignID); err != nil {
		t.Fatalf("approve storyboard failed: %v", err)
	}
	advancePhase(t, module, campaignID, "generating_video")
	segments, err := module.Handler.GenerateVideoHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("generate video failed: %v", err)
	}
	for _, segment := range segments {
		err := module.Complete.Execute(ctx, commands.CompleteGenerationCommand{
			AssetID:   segment.SegmentID,
			Succeeded: true,
			ResultURL: "https://cdn.test/" + segment.SegmentID + ".mp4",
		})
		if err != nil {
			t.Fatalf("complete segment failed: %v", err)
		}
	}
	advancePhase(t, module, campaignID, "reviewing")

	// Approve all but one.
	for _, segment := range segments[1:] {
		if _, err := module.Handler.ApproveSegmentHandler(ctx, campaignID, segment.SegmentID); err != nil {
			t.Fatalf("approve segment failed: %v", err)
		}
	}
	_, err = module.Handler.ExportHandler(ctx, campaignID)
	if !errors.Is(err, domainerrors.ErrPreconditionFailed) {
		t.Fatalf("expected precondition failure with an unapproved segment, got %v", err)
	}

	if _, err := module.Handler.ApproveSegmentHandler(ctx, campaignID, segments[0].SegmentID); err != nil {
		t.Fatalf("approve last segment failed: %v", err)
	}
	manifest, err := module.Handler.ExportHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	// Exporting again returns the same manifest.
	again, err := module.Handler.ExportHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("repeat export failed: %v", err)
	}
	if manifest.TotalDuration != again.TotalDuration || len(manifest.Segments) != len(again.Segments) {
		t.Fatalf("expected identical manifests, got %+v and %+v", manifest, again)
	}
}
