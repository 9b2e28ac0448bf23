package examplerecord

import "github.com/nsrdbin/vpack"

// Inner: score int16, enabled bool. Declaration order is wire order, so
// Score sits at offset 0 and Enabled immediately after it at offset 2 -
// no implicit padding between a 2-byte and a 1-byte field.
const (
	InnerStride        = 3
	InnerScoreOffset   = 0
	InnerEnabledOffset = 2
)

type InnerRef struct{ data []byte }
type InnerConstRef struct{ data []byte }

func NewInnerRef(data []byte) InnerRef           { return InnerRef{data: data} }
func NewInnerConstRef(data []byte) InnerConstRef { return InnerConstRef{data: data} }

func (r InnerRef) Score() vpack.ScalarConstRef[int16] {
	return vpack.NewScalarConstRef[int16](r.data, InnerScoreOffset)
}
func (r InnerRef) ScoreMut() vpack.ScalarRef[int16] {
	return vpack.NewScalarRef[int16](r.data, InnerScoreOffset)
}
func (r InnerRef) Enabled() vpack.BoolConstRef { return vpack.NewBoolConstRef(r.data, InnerEnabledOffset) }
func (r InnerRef) EnabledMut() vpack.BoolRef   { return vpack.NewBoolRef(r.data, InnerEnabledOffset) }

func (r InnerConstRef) Score() vpack.ScalarConstRef[int16] {
	return vpack.NewScalarConstRef[int16](r.data, InnerScoreOffset)
}
func (r InnerConstRef) Enabled() vpack.BoolConstRef {
	return vpack.NewBoolConstRef(r.data, InnerEnabledOffset)
}
