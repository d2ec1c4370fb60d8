package operations

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	application "adforge/contexts/ad-production/campaign-studio/application"
	"adforge/contexts/ad-production/campaign-studio/application/commands"
	"adforge/contexts/ad-production/campaign-studio/application/queries"
	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	domainerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
)

// Operation names accepted by the dispatcher. The set is closed: anything
// else fails with ErrUnknownOperation before payload decoding.
const (
	OpBuildOffer                = "buildOffer"
	OpBuildAvatar               = "buildAvatar"
	OpCreateCampaign            = "createCampaign"
	OpGetCampaignState          = "getCampaignState"
	OpAdvancePhase              = "advancePhase"
	OpGenerateHookOptions       = "generateHookOptions"
	OpSelectHook                = "selectHook"
	OpGenerateScript            = "generateScript"
	OpApproveScript             = "approveScript"
	OpApproveAllScripts         = "approveAllScripts"
	OpGenerateConsistencySpec   = "generateConsistencySpec"
	OpLockConsistency           = "lockConsistency"
	OpGenerateKeyframeSlot      = "generateKeyframeSlot"
	OpSelectKeyframe            = "selectKeyframe"
	OpGenerateTransitionPrompts = "generateTransitionPrompts"
	OpEditTransitionPrompt      = "editTransitionPrompt"
	OpAssembleStoryboard        = "assembleStoryboard"
	OpApproveStoryboard         = "approveStoryboard"
	OpGenerateVideoSegments     = "generateVideoSegments"
	OpApproveSegment            = "approveSegment"
	OpRegenerateSegment         = "regenerateSegment"
	OpExport                    = "export"
)

// Dispatcher maps operation names to use cases for callers that drive the
// pipeline by name with JSON payloads, such as a reasoning collaborator or
// an internal job runner.
type Dispatcher struct {
	BuildOffer          commands.BuildOfferUseCase
	BuildAvatar         commands.BuildAvatarUseCase
	CreateCampaign      commands.CreateCampaignUseCase
	AdvancePhase        commands.AdvancePhaseUseCase
	GenerateHooks       commands.GenerateHooksUseCase
	SelectHook          commands.SelectHookUseCase
	GenerateScript      commands.GenerateScriptUseCase
	ApproveScript       commands.ApproveScriptUseCase
	GenerateConsistency commands.GenerateConsistencySpecUseCase
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
	GetCampaignState    queries.GetCampaignStateUseCase

	Logger *slog.Logger
}

// Execute runs one named operation against its JSON payload and returns the
// use case's result verbatim.
func (d Dispatcher) Execute(ctx context.Context, name string, payload json.RawMessage) (any, error) {
	logger := application.ResolveLogger(d.Logger)
	logger.Debug("operation dispatched",
		"event", "operation_dispatched",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"operation", name,
	)

	switch name {
	case OpBuildOffer:
		var cmd commands.BuildOfferCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.BuildOffer.Execute(ctx, cmd)

	case OpBuildAvatar:
		var cmd commands.BuildAvatarCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.BuildAvatar.Execute(ctx, cmd)

	case OpCreateCampaign:
		var cmd commands.CreateCampaignCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.CreateCampaign.Execute(ctx, cmd)

	case OpGetCampaignState:
		var query queries.GetCampaignStateQuery
		if err := decode(payload, &query); err != nil {
			return nil, err
		}
		return d.GetCampaignState.Execute(ctx, query)

	case OpAdvancePhase:
		var body struct {
			CampaignID string `json:"campaignId"`
			Target     string `json:"target"`
		}
		if err := decode(payload, &body); err != nil {
			return nil, err
		}
		target, ok := entities.ParsePhase(body.Target)
		if !ok {
			return nil, fmt.Errorf("%w: unknown phase %q", domainerrors.ErrInvalidInput, body.Target)
		}
		return d.AdvancePhase.Execute(ctx, commands.AdvancePhaseCommand{
			CampaignID: body.CampaignID,
			Target:     target,
		})

	case OpGenerateHookOptions:
		var cmd commands.GenerateHooksCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.GenerateHooks.Execute(ctx, cmd)

	case OpSelectHook:
		var cmd commands.SelectHookCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.SelectHook.Execute(ctx, cmd)

	case OpGenerateScript:
		var cmd commands.GenerateScriptCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.GenerateScript.Execute(ctx, cmd)

	case OpApproveScript:
		var cmd commands.ApproveScriptCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		if cmd.ScriptID == "" {
			return nil, fmt.Errorf("%w: scriptId is required", domainerrors.ErrInvalidInput)
		}
		return d.ApproveScript.Execute(ctx, cmd)

	case OpApproveAllScripts:
		var cmd commands.ApproveScriptCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		cmd.ScriptID = ""
		return d.ApproveScript.Execute(ctx, cmd)

	case OpGenerateConsistencySpec:
		var cmd commands.GenerateConsistencySpecCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.GenerateConsistency.Execute(ctx, cmd)

	case OpLockConsistency:
		var cmd commands.LockConsistencySpecCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.LockConsistency.Execute(ctx, cmd)

	case OpGenerateKeyframeSlot:
		var cmd commands.GenerateKeyframesCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.GenerateKeyframes.Execute(ctx, cmd)

	case OpSelectKeyframe:
		var cmd commands.SelectKeyframeCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.SelectKeyframe.Execute(ctx, cmd)

	case OpGenerateTransitionPrompts:
		var cmd commands.GenerateTransitionsCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.GenerateTransitions.Execute(ctx, cmd)

	case OpEditTransitionPrompt:
		var cmd commands.EditTransitionCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.EditTransition.Execute(ctx, cmd)

	case OpAssembleStoryboard:
		var cmd commands.AssembleStoryboardCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.AssembleStoryboard.Execute(ctx, cmd)

	case OpApproveStoryboard:
		var cmd commands.ApproveStoryboardCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.ApproveStoryboard.Execute(ctx, cmd)

	case OpGenerateVideoSegments:
		var cmd commands.GenerateVideoCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.GenerateVideo.Execute(ctx, cmd)

	case OpApproveSegment:
		var cmd commands.ApproveSegmentCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.ApproveSegment.Execute(ctx, cmd)

	case OpRegenerateSegment:
		var cmd commands.RegenerateSegmentCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.RegenerateSegment.Execute(ctx, cmd)

	case OpExport:
		var cmd commands.ExportCampaignCommand
		if err := decode(payload, &cmd); err != nil {
			return nil, err
		}
		return d.Export.Execute(ctx, cmd)

	default:
		return nil, fmt.Errorf("%w: %s", domainerrors.ErrUnknownOperation, name)
	}
}

func decode(payload json.RawMessage, out any) error {
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrInvalidInput, err)
	}
	return nil
}
