// Package examplerecord is the fixture this module's own tests exercise:
// the Inner/Example/Kind schema worked through scalar offsets, a nested
// record, a tagged sum and an enum, plus RawExample, which exercises an
// untagged sum holding a native pass-through alternative. Each schema is
// expressed twice - as a genschema.Schema value, so internal/genschema's
// Build and Fingerprint run against a schema with every kind genschema
// knows about, and as hand-written Ref/ConstRef types in this package's
// other files, the shape a real schema's generated file takes in this
// module.
package examplerecord

import "github.com/nsrdbin/vpack/internal/genschema"

// InnerSchema describes Inner: score int16, enabled bool.
var InnerSchema = genschema.Schema{
	Name: "Inner",
	Fields: []genschema.Field{
		{Name: "Score", Kind: genschema.KindInt, GoType: "int16", Size: 2},
		{Name: "Enabled", Kind: genschema.KindBool},
	},
}

// ExampleSchema describes Example: flag bool, id int32, inner Inner,
// value tagged_sum<int32, float64>, kind uint8.
var ExampleSchema = genschema.Schema{
	Name: "Example",
	Fields: []genschema.Field{
		{Name: "Flag", Kind: genschema.KindBool},
		{Name: "ID", Kind: genschema.KindInt, GoType: "int32", Size: 4},
		{Name: "Inner", Kind: genschema.KindRecord, GoType: "Inner", Size: InnerStride},
		{Name: "Value", Kind: genschema.KindTaggedSum, Alts: []genschema.Alt{
			{Name: "I32", GoType: "int32", Kind: genschema.KindInt, Size: 4},
			{Name: "F64", GoType: "float64", Kind: genschema.KindFloat, Size: 8},
		}},
		{Name: "Kind", Kind: genschema.KindInt, GoType: "uint8", Size: 1},
	},
}

// Vec2Schema describes a native pass-through pair of float32s, the
// alternative RawExample's untagged sum holds alongside a plain float32.
var Vec2Schema = genschema.Schema{
	Name: "Vec2",
	Fields: []genschema.Field{
		{Name: "X", Kind: genschema.KindFloat, GoType: "float32", Size: 4},
		{Name: "Y", Kind: genschema.KindFloat, GoType: "float32", Size: 4},
	},
}

// RawExampleSchema describes RawExample: raw union_<float32, Vec2>.
var RawExampleSchema = genschema.Schema{
	Name: "RawExample",
	Fields: []genschema.Field{
		{Name: "Raw", Kind: genschema.KindUntaggedSum, Alts: []genschema.Alt{
			{Name: "Scalar", GoType: "float32", Kind: genschema.KindFloat, Size: 4},
			{Name: "Point", GoType: "Vec2", Kind: genschema.KindNative, Size: 8},
		}},
	},
}

// InnerLayout, ExampleLayout and RawExampleLayout are what cmd/vpackgen
// would compute from the schemas above; this module's tests check the
// hand-written constants in this package against these directly, so a hand-written
// schema file and a generated one can never silently drift apart.
var (
	InnerLayout      = genschema.Build(InnerSchema)
	ExampleLayout    = genschema.Build(ExampleSchema)
	RawExampleLayout = genschema.Build(RawExampleSchema)
)
