package logger

import (
	"context"
	"testing"
)

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// Must not panic and must stay silent.
	l.Info().Str("k", "v").Msg("discarded")
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("FromContext returned nil")
	}
}

func TestWithContext_RoundTrip(t *testing.T) {
	parent := Nop()
	ctx := parent.WithContext(context.Background())

	got := FromContext(ctx)
	if got == nil {
		t.Fatal("expected logger from context")
	}
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	if child == nil {
		t.Fatal("expected child logger")
	}
	child.Debug().Msg("child logger works")
}
