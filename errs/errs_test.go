package errs

import (
	"errors"
	"testing"
)

func TestWrapfMatchesSentinelWithIs(t *testing.T) {
	err := Wrapf(ErrPayloadSizeMismatch, "payload size %d is not a multiple of stride %d", 6, 4)
	if !errors.Is(err, ErrPayloadSizeMismatch) {
		t.Fatal("Wrapf's result must still match its sentinel via errors.Is")
	}
	if errors.Is(err, ErrSchemaMismatch) {
		t.Fatal("Wrapf's result must not match an unrelated sentinel")
	}
}

func TestMessageReturnsStableTag(t *testing.T) {
	err := Wrap(ErrSchemaMismatch, "file.vpack does not match target schema")
	if got := Message(err); got != "schema_mismatch" {
		t.Fatalf("Message = %q, want schema_mismatch", got)
	}
}

func TestMessageDegradesForUnknownError(t *testing.T) {
	if got := Message(errors.New("boom")); got != "boom" {
		t.Fatalf("Message = %q, want boom", got)
	}
}

func TestMessageEmptyForNil(t *testing.T) {
	if got := Message(nil); got != "" {
		t.Fatalf("Message(nil) = %q, want empty string", got)
	}
}
