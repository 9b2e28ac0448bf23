package genschema

import (
	"strings"
	"testing"
)

func TestRenderProducesCompilableShape(t *testing.T) {
	s := Schema{
		Name: "Inner",
		Fields: []Field{
			{Name: "Score", Kind: KindInt, GoType: "int16", Size: 2},
			{Name: "Enabled", Kind: KindBool},
		},
	}
	src := Render("examplerecord", Build(s))

	for _, want := range []string{
		"package examplerecord",
		"InnerStride      = 3",
		"type InnerRef struct",
		"type InnerConstRef struct",
		"func NewInnerRef(data []byte) InnerRef",
		"func (r InnerRef) Score() vpack.ScalarConstRef[int16]",
		"func (r InnerRef) ScoreMut() vpack.ScalarRef[int16]",
		"func (r InnerRef) Enabled() vpack.BoolConstRef",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("rendered source missing %q\n---\n%s", want, src)
		}
	}
}

func TestRenderTaggedSumAccessors(t *testing.T) {
	s := Schema{
		Name: "Example",
		Fields: []Field{
			{Name: "Value", Kind: KindTaggedSum, Alts: []Alt{
				{Name: "I32", GoType: "int32", Kind: KindInt, Size: 4},
				{Name: "F64", GoType: "float64", Kind: KindFloat, Size: 8},
			}},
		},
	}
	src := Render("examplerecord", Build(s))
	for _, want := range []string{
		"func (r ExampleRef) HoldsValueI32() bool",
		"func (r ExampleRef) GetIfValueI32() (vpack.ScalarConstRef[int32], bool)",
		"func (r ExampleRef) EmplaceValueI32() vpack.ScalarRef[int32]",
		"func (r ExampleRef) HoldsValueF64() bool",
		"func (r ExampleRef) EmplaceValueF64() vpack.Float64Ref",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("rendered source missing %q\n---\n%s", want, src)
		}
	}
}
