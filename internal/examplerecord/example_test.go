package examplerecord

import "testing"

func TestExampleFreshRecordHoldsAlternativeZero(t *testing.T) {
	buf := make([]byte, ExampleStride)
	r := NewExampleRef(buf)
	if !r.HoldsValueI32() {
		t.Fatal("a freshly zeroed record must read as alternative 0 (I32), not an empty sentinel")
	}
	if got, ok := r.GetIfValueI32(); !ok || got.Get() != 0 {
		t.Fatalf("GetIfValueI32 = %v, %v; want 0, true", got.Get(), ok)
	}
	if _, ok := r.GetIfValueF64(); ok {
		t.Fatal("GetIfValueF64 must fail while I32 is active")
	}
}

func TestExampleEmplaceValueSwitchesAlternative(t *testing.T) {
	buf := make([]byte, ExampleStride)
	r := NewExampleRef(buf)

	r.IDMut().Set(0x12345678)
	r.EmplaceValueI32().Set(7)
	if !r.HoldsValueI32() {
		t.Fatal("expected I32 active after EmplaceValueI32")
	}
	if v, _ := r.GetIfValueI32(); v.Get() != 7 {
		t.Fatalf("I32 value = %d, want 7", v.Get())
	}

	r.EmplaceValueF64().Set(1.5)
	if !r.HoldsValueF64() {
		t.Fatal("expected F64 active after EmplaceValueF64")
	}
	if v, _ := r.GetIfValueF64(); v.Get() != 1.5 {
		t.Fatalf("F64 value = %f, want 1.5", v.Get())
	}
	if _, ok := r.GetIfValueI32(); ok {
		t.Fatal("I32 must no longer be active after emplacing F64")
	}
	if r.ID().Get() != 0x12345678 {
		t.Fatalf("ID = %x, want 0x12345678", r.ID().Get())
	}
}

func TestExampleInnerAndAssign(t *testing.T) {
	buf := make([]byte, ExampleStride)
	r := NewExampleRef(buf)
	r.Assign(ExampleData{Flag: true, ID: 42, Kind: KindGamma})
	r.InnerMut().ScoreMut().Set(99)
	r.InnerMut().EnabledMut().Set(true)

	if !r.Flag().Get() || r.ID().Get() != 42 || r.Kind().Get() != KindGamma {
		t.Fatal("Assign did not populate scalar fields correctly")
	}
	if r.Inner().Score().Get() != 99 || !r.Inner().Enabled().Get() {
		t.Fatal("nested Inner record did not round-trip")
	}
}

func TestRawExampleUntaggedSumHasNoDiscriminant(t *testing.T) {
	buf := make([]byte, RawExampleStride)
	r := NewRawExampleRef(buf)
	r.EmplaceRawPoint().Set(Vec2{X: 1, Y: 2})
	p := r.AsRawPoint().Get()
	if p.X != 1 || p.Y != 2 {
		t.Fatalf("Vec2 round trip = %+v, want {1 2}", p)
	}
	// Nothing prevents reading the same bytes as the other alternative -
	// an untagged sum has no tag to forbid it, unlike Example.Value above.
	_ = r.AsRawScalar().Get()
}
