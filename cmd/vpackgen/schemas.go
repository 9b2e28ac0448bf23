package main

import "github.com/nsrdbin/vpack/internal/genschema"

// registeredSchemas stands in for the source-annotation scan a real
// generator would run: a fixed, compiled-in map from schema name to
// description. internal/examplerecord's own schemas are registered here,
// so //go:generate go run ./cmd/vpackgen -schema Example ... renders
// accessors over the same layout as the hand-written examplerecord/example.go.
// The rendered file is not identical to it: it types Kind as plain uint8
// and has no ExampleData type or Assign method.
var registeredSchemas = map[string]genschema.Schema{
	"Inner": {
		Name: "Inner",
		Fields: []genschema.Field{
			{Name: "Score", Kind: genschema.KindInt, GoType: "int16", Size: 2},
			{Name: "Enabled", Kind: genschema.KindBool},
		},
	},
	"Example": {
		Name: "Example",
		Fields: []genschema.Field{
			{Name: "Flag", Kind: genschema.KindBool},
			{Name: "ID", Kind: genschema.KindInt, GoType: "int32", Size: 4},
			{Name: "Inner", Kind: genschema.KindRecord, GoType: "Inner", Size: 3},
			{Name: "Value", Kind: genschema.KindTaggedSum, Alts: []genschema.Alt{
				{Name: "I32", GoType: "int32", Kind: genschema.KindInt, Size: 4},
				{Name: "F64", GoType: "float64", Kind: genschema.KindFloat, Size: 8},
			}},
			{Name: "Kind", Kind: genschema.KindInt, GoType: "uint8", Size: 1},
		},
	},
	"RawExample": {
		Name: "RawExample",
		Fields: []genschema.Field{
			{Name: "Raw", Kind: genschema.KindUntaggedSum, Alts: []genschema.Alt{
				{Name: "Scalar", GoType: "float32", Kind: genschema.KindFloat, Size: 4},
				{Name: "Point", GoType: "Vec2", Kind: genschema.KindNative, Size: 8},
			}},
		},
	},
}
