package errors

import "errors"

var (
	// ErrModelUnavailable covers transport failures talking to the text model.
	ErrModelUnavailable = errors.New("text model unavailable")
	// ErrBadModelOutput marks a completion that did not decode into the
	// agent's expected shape.
	ErrBadModelOutput = errors.New("malformed model output")
)
