package vpack_test

import (
	"testing"

	"github.com/nsrdbin/vpack"
	"github.com/nsrdbin/vpack/internal/examplerecord"
)

func newExampleBuffer() *vpack.Buffer[examplerecord.ExampleRef, examplerecord.ExampleConstRef] {
	return vpack.NewBuffer[examplerecord.ExampleRef, examplerecord.ExampleConstRef](
		examplerecord.ExampleStride,
		examplerecord.ExampleLayout.Fingerprint,
		examplerecord.NewExampleRef,
		examplerecord.NewExampleConstRef,
	)
}

func TestBufferEmplaceBackAndAt(t *testing.T) {
	buf := newExampleBuffer()
	r := buf.EmplaceBack()
	r.IDMut().Set(7)
	if buf.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", buf.Size())
	}
	if buf.At(0).ID().Get() != 7 {
		t.Fatal("At(0) must alias the record EmplaceBack returned")
	}
	if buf.ConstAt(0).ID().Get() != 7 {
		t.Fatal("ConstAt(0) must read the same bytes")
	}
}

func TestBufferWithDefaults(t *testing.T) {
	buf := vpack.NewBuffer[examplerecord.ExampleRef, examplerecord.ExampleConstRef](
		examplerecord.ExampleStride,
		examplerecord.ExampleLayout.Fingerprint,
		examplerecord.NewExampleRef,
		examplerecord.NewExampleConstRef,
		vpack.WithDefaults[examplerecord.ExampleRef, examplerecord.ExampleConstRef](func(r examplerecord.ExampleRef) {
			r.KindMut().Set(examplerecord.KindBeta)
		}),
	)
	r := buf.EmplaceBack()
	if r.Kind().Get() != examplerecord.KindBeta {
		t.Fatal("EmplaceBack must apply registered defaults")
	}
}

func TestBufferEmplaceFreeFunction(t *testing.T) {
	buf := newExampleBuffer()
	r := vpack.Emplace(buf, func(ref examplerecord.ExampleRef, d examplerecord.ExampleData) {
		ref.Assign(d)
	}, examplerecord.ExampleData{Flag: true, ID: 9, Kind: examplerecord.KindAlpha})
	if !r.Flag().Get() || r.ID().Get() != 9 {
		t.Fatal("Emplace must assign through the provided function")
	}
}

func TestBufferBytesRoundTrip(t *testing.T) {
	buf := newExampleBuffer()
	buf.EmplaceBack().IDMut().Set(1)
	buf.EmplaceBack().IDMut().Set(2)

	raw := buf.Bytes()
	other := newExampleBuffer()
	if err := other.AssignBytes(raw); err != nil {
		t.Fatalf("AssignBytes: %v", err)
	}
	if other.Size() != 2 || other.At(0).ID().Get() != 1 || other.At(1).ID().Get() != 2 {
		t.Fatal("Bytes/AssignBytes did not round-trip record contents")
	}
}

func TestBufferWithRecordsPerPage(t *testing.T) {
	buf := vpack.NewBuffer[examplerecord.ExampleRef, examplerecord.ExampleConstRef](
		examplerecord.ExampleStride,
		examplerecord.ExampleLayout.Fingerprint,
		examplerecord.NewExampleRef,
		examplerecord.NewExampleConstRef,
		vpack.WithRecordsPerPage[examplerecord.ExampleRef, examplerecord.ExampleConstRef](1),
	)
	first := buf.EmplaceBack()
	first.IDMut().Set(11)
	buf.EmplaceBack() // forces a second page under a 1-record page size
	if buf.At(0).ID().Get() != 11 {
		t.Fatal("a new page must not disturb an earlier one's contents")
	}
}
