package genschema

import "testing"

func TestBuildInnerStride(t *testing.T) {
	s := Schema{
		Name: "Inner",
		Fields: []Field{
			{Name: "Score", Kind: KindInt, GoType: "int16", Size: 2},
			{Name: "Enabled", Kind: KindBool},
		},
	}
	l := Build(s)
	if l.Stride != 3 {
		t.Fatalf("stride = %d, want 3", l.Stride)
	}
	if l.Fields[0].Offset != 0 || l.Fields[1].Offset != 2 {
		t.Fatalf("offsets = %d,%d, want 0,2", l.Fields[0].Offset, l.Fields[1].Offset)
	}
}

func TestBuildTaggedSumLayout(t *testing.T) {
	s := Schema{
		Name: "Example",
		Fields: []Field{
			{Name: "Flag", Kind: KindBool},
			{Name: "ID", Kind: KindInt, GoType: "int32", Size: 4},
			{Name: "Inner", Kind: KindRecord, GoType: "Inner", Size: 3},
			{Name: "Value", Kind: KindTaggedSum, Alts: []Alt{
				{Name: "I32", GoType: "int32", Kind: KindInt, Size: 4},
				{Name: "F64", GoType: "float64", Kind: KindFloat, Size: 8},
			}},
			{Name: "Kind", Kind: KindInt, GoType: "uint8", Size: 1},
		},
	}
	l := Build(s)
	if l.Stride != 21 {
		t.Fatalf("stride = %d, want 21", l.Stride)
	}
	value := l.Fields[3]
	if value.Offset != 8 || value.TagOffset != 8 || value.PayloadOffset != 12 || value.PayloadSize != 8 {
		t.Fatalf("value layout = %+v, want offset 8 tag 8 payload 12 size 8", value)
	}
	if l.Fields[4].Offset != 20 {
		t.Fatalf("kind offset = %d, want 20", l.Fields[4].Offset)
	}
}

func TestBuildDuplicateFieldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate field name")
		}
	}()
	Build(Schema{Name: "Bad", Fields: []Field{
		{Name: "X", Kind: KindBool},
		{Name: "X", Kind: KindBool},
	}})
}

func TestBuildUntaggedSumHasNoTag(t *testing.T) {
	s := Schema{
		Name: "RawExample",
		Fields: []Field{
			{Name: "Raw", Kind: KindUntaggedSum, Alts: []Alt{
				{Name: "Scalar", GoType: "float32", Kind: KindFloat, Size: 4},
				{Name: "Point", GoType: "Vec2", Kind: KindNative, Size: 8},
			}},
		},
	}
	l := Build(s)
	if l.Stride != 8 {
		t.Fatalf("stride = %d, want 8", l.Stride)
	}
	if l.Fields[0].PayloadOffset != 0 || l.Fields[0].PayloadSize != 8 {
		t.Fatalf("raw layout = %+v, want payload offset 0 size 8", l.Fields[0])
	}
}
