package answers

import "errors"

var (
	// ErrMissingInput indicates an empty question or token.
	ErrMissingInput = errors.New("missing question or token")

	// ErrUnknownToken indicates the token does not resolve to a document.
	ErrUnknownToken = errors.New("invalid file token")

	// ErrGenerationFailed indicates the model backend failed.
	ErrGenerationFailed = errors.New("generation failed")
)
