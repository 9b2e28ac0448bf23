package examplerecord

import "github.com/nsrdbin/vpack"

// Kind is Example's trailing enum field's Go type: an unlisted wire value
// round-trips through Kind unchanged, read back as whatever constant (or
// none) happens to share that byte - the schema carries no "unknown"
// variant of its own, per this module's enum-compatibility decision.
type Kind uint8

const (
	KindAlpha Kind = iota
	KindBeta
	KindGamma
)

// Example: flag bool, id int32, inner Inner, value tagged_sum<int32,
// float64>, kind Kind. Offsets follow declaration order with no padding:
// Flag takes byte 0, ID the next 4, Inner the 3 after that, Value's 4-byte
// discriminant plus 8-byte payload the 12 after that, Kind the last byte.
const (
	ExampleStride      = 21
	ExampleFlagOffset  = 0
	ExampleIDOffset    = 1
	ExampleInnerOffset = 5
	ExampleValueOffset = 8
	ExampleKindOffset  = 20
)

type ExampleRef struct{ data []byte }
type ExampleConstRef struct{ data []byte }

func NewExampleRef(data []byte) ExampleRef           { return ExampleRef{data: data} }
func NewExampleConstRef(data []byte) ExampleConstRef { return ExampleConstRef{data: data} }

func (r ExampleRef) Flag() vpack.BoolConstRef { return vpack.NewBoolConstRef(r.data, ExampleFlagOffset) }
func (r ExampleRef) FlagMut() vpack.BoolRef   { return vpack.NewBoolRef(r.data, ExampleFlagOffset) }

func (r ExampleRef) ID() vpack.ScalarConstRef[int32] {
	return vpack.NewScalarConstRef[int32](r.data, ExampleIDOffset)
}
func (r ExampleRef) IDMut() vpack.ScalarRef[int32] {
	return vpack.NewScalarRef[int32](r.data, ExampleIDOffset)
}

func (r ExampleRef) Inner() InnerConstRef { return NewInnerConstRef(r.data[ExampleInnerOffset:]) }
func (r ExampleRef) InnerMut() InnerRef   { return NewInnerRef(r.data[ExampleInnerOffset:]) }

func (r ExampleRef) Kind() vpack.ScalarConstRef[Kind] {
	return vpack.NewScalarConstRef[Kind](r.data, ExampleKindOffset)
}
func (r ExampleRef) KindMut() vpack.ScalarRef[Kind] {
	return vpack.NewScalarRef[Kind](r.data, ExampleKindOffset)
}

// ValueTag exposes Value's raw discriminant. HoldsValueI32/GetIfValueI32/
// EmplaceValueI32 and HoldsValueF64/GetIfValueF64/EmplaceValueF64 below are
// what callers actually use; ValueTag serves code that only needs to know
// which alternative is live without reading it.
func (r ExampleRef) ValueTag() vpack.TagRef { return vpack.NewTagRef(r.data, ExampleValueOffset) }

const exampleValuePayloadOffset = ExampleValueOffset + 4
const exampleValuePayloadSize = 8 // max(sizeof(int32), sizeof(float64))

func (r ExampleRef) HoldsValueI32() bool { return r.ValueTag().Index() == 0 }
func (r ExampleRef) GetIfValueI32() (vpack.ScalarConstRef[int32], bool) {
	if !r.HoldsValueI32() {
		var zero vpack.ScalarConstRef[int32]
		return zero, false
	}
	return vpack.NewScalarConstRef[int32](r.data, exampleValuePayloadOffset), true
}
func (r ExampleRef) EmplaceValueI32() vpack.ScalarRef[int32] {
	vpack.BeginTaggedEmplace(r.ValueTag(), vpack.NewPayloadRef(r.data, exampleValuePayloadOffset, exampleValuePayloadSize), 0)
	return vpack.NewScalarRef[int32](r.data, exampleValuePayloadOffset)
}

func (r ExampleRef) HoldsValueF64() bool { return r.ValueTag().Index() == 1 }
func (r ExampleRef) GetIfValueF64() (vpack.Float64ConstRef, bool) {
	if !r.HoldsValueF64() {
		var zero vpack.Float64ConstRef
		return zero, false
	}
	return vpack.NewFloat64ConstRef(r.data, exampleValuePayloadOffset), true
}
func (r ExampleRef) EmplaceValueF64() vpack.Float64Ref {
	vpack.BeginTaggedEmplace(r.ValueTag(), vpack.NewPayloadRef(r.data, exampleValuePayloadOffset, exampleValuePayloadSize), 1)
	return vpack.NewFloat64Ref(r.data, exampleValuePayloadOffset)
}

// VisitValue dispatches on ValueTag().Index() to whichever callback matches
// the live alternative; the other is never called. A nil callback for the
// live alternative is simply skipped.
func (r ExampleRef) VisitValue(onI32 func(vpack.ScalarRef[int32]), onF64 func(vpack.Float64Ref)) {
	switch r.ValueTag().Index() {
	case 0:
		if onI32 != nil {
			onI32(vpack.NewScalarRef[int32](r.data, exampleValuePayloadOffset))
		}
	case 1:
		if onF64 != nil {
			onF64(vpack.NewFloat64Ref(r.data, exampleValuePayloadOffset))
		}
	}
}

func (r ExampleConstRef) Flag() vpack.BoolConstRef { return vpack.NewBoolConstRef(r.data, ExampleFlagOffset) }
func (r ExampleConstRef) ID() vpack.ScalarConstRef[int32] {
	return vpack.NewScalarConstRef[int32](r.data, ExampleIDOffset)
}
func (r ExampleConstRef) Inner() InnerConstRef { return NewInnerConstRef(r.data[ExampleInnerOffset:]) }
func (r ExampleConstRef) Kind() vpack.ScalarConstRef[Kind] {
	return vpack.NewScalarConstRef[Kind](r.data, ExampleKindOffset)
}
func (r ExampleConstRef) ValueTag() vpack.TagRef { return vpack.NewTagRef(r.data, ExampleValueOffset) }
func (r ExampleConstRef) HoldsValueI32() bool    { return r.ValueTag().Index() == 0 }
func (r ExampleConstRef) GetIfValueI32() (vpack.ScalarConstRef[int32], bool) {
	if !r.HoldsValueI32() {
		var zero vpack.ScalarConstRef[int32]
		return zero, false
	}
	return vpack.NewScalarConstRef[int32](r.data, exampleValuePayloadOffset), true
}
func (r ExampleConstRef) HoldsValueF64() bool { return r.ValueTag().Index() == 1 }
func (r ExampleConstRef) GetIfValueF64() (vpack.Float64ConstRef, bool) {
	if !r.HoldsValueF64() {
		var zero vpack.Float64ConstRef
		return zero, false
	}
	return vpack.NewFloat64ConstRef(r.data, exampleValuePayloadOffset), true
}

func (r ExampleConstRef) VisitValue(onI32 func(vpack.ScalarConstRef[int32]), onF64 func(vpack.Float64ConstRef)) {
	switch r.ValueTag().Index() {
	case 0:
		if onI32 != nil {
			onI32(vpack.NewScalarConstRef[int32](r.data, exampleValuePayloadOffset))
		}
	case 1:
		if onF64 != nil {
			onF64(vpack.NewFloat64ConstRef(r.data, exampleValuePayloadOffset))
		}
	}
}

// ExampleData is the Data twin Emplace assigns through: every field but
// Inner and Value, which nest deep enough that a caller composing one
// through plain Go struct literals gains nothing over calling InnerMut/
// EmplaceValueXxx directly after EmplaceBack.
type ExampleData struct {
	Flag bool
	ID   int32
	Kind Kind
}

// Assign writes d's fields through r, one Set call per plain field.
// genschema.Render does not emit Data types or Assign methods; this one is
// hand-written.
func (r ExampleRef) Assign(d ExampleData) {
	r.FlagMut().Set(d.Flag)
	r.IDMut().Set(d.ID)
	r.KindMut().Set(d.Kind)
}
