package documents

import "errors"

var (
	// ErrMissingInput indicates the caller did not supply a file.
	ErrMissingInput = errors.New("missing input")

	// ErrExtractionFailed indicates the uploaded document could not be parsed.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrUnknownToken indicates a token that was never issued by this store.
	ErrUnknownToken = errors.New("unknown token")

	// ErrTokenExists guards against overwriting an issued token.
	ErrTokenExists = errors.New("token already exists")
)
