package extract

import (
	"context"
	"testing"
)

func TestTextEmptyPayload(t *testing.T) {
	if _, err := Text(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestTextUnparseablePayload(t *testing.T) {
	if _, err := Text(context.Background(), []byte("this is not a pdf")); err == nil {
		t.Fatal("expected error for non-pdf payload")
	}
}

func TestTextCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Text(ctx, []byte("%PDF-1.4")); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
