package examplerecord

import "github.com/nsrdbin/vpack"

// Vec2 is a plain pair of float32s: a native pass-through type. Its bytes
// are reinterpreted directly rather than walked field by field, so it
// must stay trivially copyable - no pointers, no padding surprises - and
// is only valid on a little-endian host, same as every other native field
// in this module.
type Vec2 struct {
	X, Y float32
}

func init() { vpack.RequireLittleEndianHost() }

// RawExample: raw union_<float32, Vec2>. An untagged sum has no
// discriminant of its own; the caller is the only party who knows, after
// an Emplace call, which alternative the payload bytes mean.
const (
	RawExampleStride    = 8 // max(sizeof(float32), sizeof(Vec2))
	RawExampleRawOffset = 0
)

type RawExampleRef struct{ data []byte }
type RawExampleConstRef struct{ data []byte }

func NewRawExampleRef(data []byte) RawExampleRef           { return RawExampleRef{data: data} }
func NewRawExampleConstRef(data []byte) RawExampleConstRef { return RawExampleConstRef{data: data} }

func (r RawExampleRef) AsRawScalar() vpack.Float32Ref {
	return vpack.NewFloat32Ref(r.data, RawExampleRawOffset)
}
func (r RawExampleRef) EmplaceRawScalar() vpack.Float32Ref {
	vpack.BeginUnionEmplace(vpack.NewPayloadRef(r.data, RawExampleRawOffset, RawExampleStride))
	return vpack.NewFloat32Ref(r.data, RawExampleRawOffset)
}

func (r RawExampleRef) AsRawPoint() vpack.NativeRef[Vec2] {
	return vpack.NewNativeRef[Vec2](r.data, RawExampleRawOffset)
}
func (r RawExampleRef) EmplaceRawPoint() vpack.NativeRef[Vec2] {
	vpack.BeginUnionEmplace(vpack.NewPayloadRef(r.data, RawExampleRawOffset, RawExampleStride))
	return vpack.NewNativeRef[Vec2](r.data, RawExampleRawOffset)
}

func (r RawExampleConstRef) AsRawScalar() vpack.Float32ConstRef {
	return vpack.NewFloat32ConstRef(r.data, RawExampleRawOffset)
}
func (r RawExampleConstRef) AsRawPoint() vpack.NativeConstRef[Vec2] {
	return vpack.NewNativeConstRef[Vec2](r.data, RawExampleRawOffset)
}
