package vpack_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nsrdbin/vpack"
	"github.com/nsrdbin/vpack/errs"
	"github.com/nsrdbin/vpack/internal/examplerecord"
)

func TestWriteReadBinaryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "example.vpack")

	buf := newExampleBuffer()
	buf.EmplaceBack().IDMut().Set(123)
	buf.EmplaceBack().IDMut().Set(456)

	if err := vpack.WriteBinary(nil, path, buf); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}

	into := newExampleBuffer()
	if err := vpack.ReadBinary(nil, path, into); err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if into.Size() != 2 || into.At(0).ID().Get() != 123 || into.At(1).ID().Get() != 456 {
		t.Fatal("binary round trip did not preserve record contents")
	}
}

func TestReadBinaryRejectsMissingFile(t *testing.T) {
	err := vpack.ReadBinary(nil, filepath.Join(t.TempDir(), "missing.vpack"), newExampleBuffer())
	if !errors.Is(err, errs.ErrOpenFailed) {
		t.Fatalf("error = %v, want ErrOpenFailed", err)
	}
}

func TestReadBinaryRejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.vpack")
	data := make([]byte, 40+examplerecord.ExampleStride)
	copy(data, "NOTMAGIC")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	err := vpack.ReadBinary(nil, path, newExampleBuffer())
	if !errors.Is(err, errs.ErrInvalidHeader) {
		t.Fatalf("error = %v, want ErrInvalidHeader", err)
	}
}

func TestReadBinaryRejectsSchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mismatch.vpack")

	other := vpack.NewBuffer[examplerecord.InnerRef, examplerecord.InnerConstRef](
		examplerecord.InnerStride,
		examplerecord.InnerLayout.Fingerprint,
		examplerecord.NewInnerRef,
		examplerecord.NewInnerConstRef,
	)
	other.EmplaceBack()
	if err := vpack.WriteBinary(nil, path, other); err != nil {
		t.Fatal(err)
	}

	err := vpack.ReadBinary(nil, path, newExampleBuffer())
	if !errors.Is(err, errs.ErrSchemaMismatch) {
		t.Fatalf("error = %v, want ErrSchemaMismatch", err)
	}
}

func TestReadBinaryRejectsTruncatedPayload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "truncated.vpack")

	buf := newExampleBuffer()
	buf.EmplaceBack()
	buf.EmplaceBack()
	if err := vpack.WriteBinary(nil, path, buf); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data[:len(data)-1], 0o644); err != nil {
		t.Fatal(err)
	}

	rerr := vpack.ReadBinary(nil, path, newExampleBuffer())
	if !errors.Is(rerr, errs.ErrTruncatedPayload) {
		t.Fatalf("error = %v, want ErrTruncatedPayload", rerr)
	}
}

func TestReadBinaryLeavesBufferUntouchedOnRejection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.vpack")
	buf := newExampleBuffer()
	buf.EmplaceBack().IDMut().Set(99)

	_ = vpack.ReadBinary(nil, path, buf)
	if buf.Size() != 1 || buf.At(0).ID().Get() != 99 {
		t.Fatal("a rejected read must leave the buffer exactly as it was")
	}
}
