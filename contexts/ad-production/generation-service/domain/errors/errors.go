package errors

import "errors"

var (
	// ErrGenerationFailed marks a job whose provider attempts all ended in a
	// terminal failure.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrTaskNotFound is returned when a provider poll references a task the
	// provider does not know.
	ErrTaskNotFound = errors.New("generation task not found")
	// ErrInvalidJob rejects enqueue requests missing a prompt or asset id.
	ErrInvalidJob = errors.New("invalid generation job")
	// ErrQueueClosed is returned by submissions after the pool shut down.
	ErrQueueClosed = errors.New("job queue closed")
)
