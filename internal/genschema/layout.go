package genschema

import "go.hasen.dev/generic"

// FieldLayout is one field's resolved position within its schema.
type FieldLayout struct {
	Field Field
	// Offset is the field's byte offset within the record.
	Offset int
	// TagOffset and PayloadOffset are only meaningful for sum kinds.
	// TagOffset is Offset for a tagged sum's 4-byte discriminant;
	// PayloadOffset is where its payload starts (Offset+4 for a tagged
	// sum, Offset itself for an untagged one, which has no discriminant).
	TagOffset     int
	PayloadOffset int
	PayloadSize   int
}

// Layout is a schema resolved into concrete byte offsets, a stride and a
// fingerprint - everything generated code needs to render accessors.
type Layout struct {
	Schema      Schema
	Fields      []FieldLayout
	Stride      int
	Fingerprint uint64
}

func maxAltSize(alts []Alt) int {
	m := 0
	for _, a := range alts {
		if a.Size > m {
			m = a.Size
		}
	}
	return m
}

func fieldSize(f Field) int {
	switch f.Kind {
	case KindBool:
		return 1
	case KindInt, KindFloat, KindRecord, KindNative:
		return f.Size
	case KindTaggedSum:
		return 4 + maxAltSize(f.Alts)
	case KindUntaggedSum:
		return maxAltSize(f.Alts)
	default:
		panic("vpack/genschema: unknown field kind")
	}
}

// Build resolves s into a Layout: declaration-order offsets, no implicit
// padding, and the schema's fingerprint.
func Build(s Schema) Layout {
	var seen map[string]bool
	generic.InitMap(&seen)

	offset := 0
	fields := make([]FieldLayout, 0, len(s.Fields))
	for _, f := range s.Fields {
		if seen[f.Name] {
			panic("vpack/genschema: duplicate field name " + f.Name)
		}
		seen[f.Name] = true

		fl := FieldLayout{Field: f, Offset: offset}
		switch f.Kind {
		case KindTaggedSum:
			fl.TagOffset = offset
			fl.PayloadOffset = offset + 4
			fl.PayloadSize = maxAltSize(f.Alts)
		case KindUntaggedSum:
			fl.PayloadOffset = offset
			fl.PayloadSize = maxAltSize(f.Alts)
		}
		fields = append(fields, fl)
		offset += fieldSize(f)
	}

	stride := offset
	return Layout{
		Schema:      s,
		Fields:      fields,
		Stride:      stride,
		Fingerprint: Fingerprint(s, stride),
	}
}
