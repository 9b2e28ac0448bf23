package streamcodec

import (
	"bytes"
	"testing"
)

func TestSizePrefixRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 0x7F, 0x80, 0x3FFF, 0x4000, 0x8000, 0x3FFFFF, MaxPayloadBytes} {
		var buf bytes.Buffer
		hook := NewIOHook(&buf)
		if err := writeSizePrefix(hook, v); err != nil {
			t.Fatalf("writeSizePrefix(%d): %v", v, err)
		}
		got, err := readSizePrefix(NewIOHook(&buf))
		if err != nil {
			t.Fatalf("readSizePrefix after writing %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip of %d produced %d", v, got)
		}
	}
}

func TestSizePrefixWidths(t *testing.T) {
	cases := []struct {
		v         uint32
		wantBytes int
	}{
		{0, 1},
		{0x7F, 1},
		{0x80, 2},
		{0x3FFF, 2},
		{0x4000, 4},
		{0x8000, 4},
		{MaxPayloadBytes, 4},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		if err := writeSizePrefix(NewIOHook(&buf), c.v); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != c.wantBytes {
			t.Errorf("size prefix for %d took %d bytes, want %d", c.v, buf.Len(), c.wantBytes)
		}
	}
}

func TestWriteSizePrefixRejectsOverLimit(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSizePrefix(NewIOHook(&buf), MaxPayloadBytes+1); err == nil {
		t.Fatal("expected an error for a size beyond MaxPayloadBytes")
	}
}
