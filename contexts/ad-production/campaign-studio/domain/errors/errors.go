package errors

import "errors"

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrOfferNotFound      = errors.New("offer not found")
	ErrAvatarNotFound     = errors.New("avatar not found")
	ErrScriptNotFound     = errors.New("script not found")
	ErrHookOptionNotFound = errors.New("hook option not found")
	ErrKeyframeNotFound   = errors.New("keyframe not found")
	ErrTransitionNotFound = errors.New("transition prompt not found")
	ErrSegmentNotFound    = errors.New("video segment not found")
	ErrTaskNotFound       = errors.New("no asset owns the provider task")

	// ErrPhaseViolation means the operation is illegal in the current phase.
	// Wrapped messages name the missing precondition.
	ErrPhaseViolation = errors.New("operation not allowed in current phase")

	// ErrPreconditionFailed means the phase allows the operation but entity
	// state does not, e.g. selecting into an already-rejected slot.
	ErrPreconditionFailed = errors.New("precondition failed")

	ErrInvalidInput = errors.New("invalid input")

	// ErrGenerationFailed surfaces a provider failure after the fallback
	// attempt was exhausted.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrUnknownOperation is returned by the dispatcher for operation tags
	// outside the closed set.
	ErrUnknownOperation = errors.New("unknown operation")
)
