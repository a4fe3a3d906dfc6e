package documents

import "context"

// TextStore maps issued tokens to extracted document text. A token, once
// stored, resolves to the same immutable text for the lifetime of the store.
type TextStore interface {
	// Put stores text under token. It returns ErrTokenExists if the token
	// is already present; existing entries are never overwritten.
	Put(ctx context.Context, token, text string) error

	// Get returns the text stored under token, or ErrUnknownToken.
	Get(ctx context.Context, token string) (string, error)
}
