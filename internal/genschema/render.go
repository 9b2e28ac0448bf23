package genschema

import (
	"fmt"
	"strings"
)

// Render renders the Go source for layout's schema: package clause,
// imports, a Layout-shaped constant block, and Ref/ConstRef types with
// one accessor pair per field. pkg is the package name the generated
// file declares itself as part of.
//
// The rendered accessors call into the vpack package's view constructors
// the same way the hand-written files under internal/examplerecord do.
// Render emits no Data type, no Assign method and no defaults function.
func Render(pkg string, l Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by vpackgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import \"github.com/nsrdbin/vpack\"\n\n")

	name := l.Schema.Name
	fmt.Fprintf(&b, "const (\n")
	fmt.Fprintf(&b, "\t%sStride      = %d\n", name, l.Stride)
	fmt.Fprintf(&b, "\t%sFingerprint = uint64(0x%X)\n", name, l.Fingerprint)
	for _, fl := range l.Fields {
		fmt.Fprintf(&b, "\t%s%sOffset = %d\n", name, fl.Field.Name, fl.Offset)
	}
	fmt.Fprintf(&b, ")\n\n")

	if hasNativeField(l) {
		fmt.Fprintf(&b, "func init() { vpack.RequireLittleEndianHost() }\n\n")
	}

	renderRefType(&b, name, "Ref", l, false)
	renderRefType(&b, name, "ConstRef", l, true)

	return b.String()
}

// hasNativeField reports whether l has a field (or, for a sum field, an
// alternative) of KindNative - a native pass-through type whose bytes are
// reinterpreted directly and so only mean anything on a little-endian host.
func hasNativeField(l Layout) bool {
	for _, fl := range l.Fields {
		f := fl.Field
		if f.Kind == KindNative {
			return true
		}
		for _, a := range f.Alts {
			if a.Kind == KindNative {
				return true
			}
		}
	}
	return false
}

func renderRefType(b *strings.Builder, name, suffix string, l Layout, readOnly bool) {
	typeName := name + suffix
	fmt.Fprintf(b, "type %s struct {\n\tdata []byte\n}\n\n", typeName)
	fmt.Fprintf(b, "func New%s(data []byte) %s { return %s{data: data} }\n\n", typeName, typeName, typeName)

	for _, fl := range l.Fields {
		renderAccessor(b, name, typeName, fl, readOnly)
	}
}

func renderAccessor(b *strings.Builder, name, typeName string, fl FieldLayout, readOnly bool) {
	f := fl.Field
	offConst := fmt.Sprintf("%s%sOffset", name, f.Name)

	switch f.Kind {
	case KindBool:
		fmt.Fprintf(b, "func (r %s) %s() vpack.BoolConstRef { return vpack.NewBoolConstRef(r.data, %s) }\n",
			typeName, f.Name, offConst)
		if !readOnly {
			fmt.Fprintf(b, "func (r %s) %sMut() vpack.BoolRef { return vpack.NewBoolRef(r.data, %s) }\n",
				typeName, f.Name, offConst)
		}
	case KindInt:
		fmt.Fprintf(b, "func (r %s) %s() vpack.ScalarConstRef[%s] { return vpack.NewScalarConstRef[%s](r.data, %s) }\n",
			typeName, f.Name, f.GoType, f.GoType, offConst)
		if !readOnly {
			fmt.Fprintf(b, "func (r %s) %sMut() vpack.ScalarRef[%s] { return vpack.NewScalarRef[%s](r.data, %s) }\n",
				typeName, f.Name, f.GoType, f.GoType, offConst)
		}
	case KindFloat:
		ctor := "Float64"
		if f.Size == 4 {
			ctor = "Float32"
		}
		fmt.Fprintf(b, "func (r %s) %s() vpack.%sConstRef { return vpack.New%sConstRef(r.data, %s) }\n",
			typeName, f.Name, ctor, ctor, offConst)
		if !readOnly {
			fmt.Fprintf(b, "func (r %s) %sMut() vpack.%sRef { return vpack.New%sRef(r.data, %s) }\n",
				typeName, f.Name, ctor, ctor, offConst)
		}
	case KindNative:
		fmt.Fprintf(b, "func (r %s) %s() vpack.NativeConstRef[%s] { return vpack.NewNativeConstRef[%s](r.data, %s) }\n",
			typeName, f.Name, f.GoType, f.GoType, offConst)
		if !readOnly {
			fmt.Fprintf(b, "func (r %s) %sMut() vpack.NativeRef[%s] { return vpack.NewNativeRef[%s](r.data, %s) }\n",
				typeName, f.Name, f.GoType, f.GoType, offConst)
		}
	case KindRecord:
		fmt.Fprintf(b, "func (r %s) %s() %sConstRef { return New%sConstRef(r.data[%s:]) }\n",
			typeName, f.Name, f.GoType, f.GoType, offConst)
		if !readOnly {
			fmt.Fprintf(b, "func (r %s) %sMut() %sRef { return New%sRef(r.data[%s:]) }\n",
				typeName, f.Name, f.GoType, f.GoType, offConst)
		}
	case KindTaggedSum:
		payloadOff := fmt.Sprintf("%s+4", offConst)
		payloadSize := maxAltSize(f.Alts)
		fmt.Fprintf(b, "func (r %s) %sTag() vpack.TagRef { return vpack.NewTagRef(r.data, %s) }\n",
			typeName, f.Name, offConst)
		for i, a := range f.Alts {
			getType := accessorReturnType(a, true)
			fmt.Fprintf(b, "func (r %s) Holds%s%s() bool { return r.%sTag().Index() == %d }\n",
				typeName, f.Name, a.Name, f.Name, i)
			fmt.Fprintf(b, "func (r %s) GetIf%s%s() (%s, bool) {\n", typeName, f.Name, a.Name, getType)
			fmt.Fprintf(b, "\tif !r.Holds%s%s() {\n\t\tvar zero %s\n\t\treturn zero, false\n\t}\n", f.Name, a.Name, getType)
			fmt.Fprintf(b, "\treturn %s, true\n}\n", altView(a, payloadOff, true))
			if !readOnly {
				setType := accessorReturnType(a, false)
				fmt.Fprintf(b, "func (r %s) Emplace%s%s() %s {\n", typeName, f.Name, a.Name, setType)
				fmt.Fprintf(b, "\tvpack.BeginTaggedEmplace(r.%sTag(), vpack.NewPayloadRef(r.data, %s, %d), %d)\n",
					f.Name, payloadOff, payloadSize, i)
				fmt.Fprintf(b, "\treturn %s\n}\n", altView(a, payloadOff, false))
			}
		}
		renderVisit(b, typeName, f, payloadOff, readOnly)
	case KindUntaggedSum:
		payloadOff := offConst
		payloadSize := maxAltSize(f.Alts)
		for _, a := range f.Alts {
			getType := accessorReturnType(a, readOnly)
			fmt.Fprintf(b, "func (r %s) As%s%s() %s { return %s }\n",
				typeName, f.Name, a.Name, getType, altView(a, payloadOff, readOnly))
			if !readOnly {
				setType := accessorReturnType(a, false)
				fmt.Fprintf(b, "func (r %s) Emplace%s%s() %s {\n", typeName, f.Name, a.Name, setType)
				fmt.Fprintf(b, "\tvpack.BeginUnionEmplace(vpack.NewPayloadRef(r.data, %s, %d))\n", payloadOff, payloadSize)
				fmt.Fprintf(b, "\treturn %s\n}\n", altView(a, payloadOff, false))
			}
		}
	}
	b.WriteByte('\n')
}

// renderVisit emits a Visit<Field> method for a tagged-sum field: one
// callback parameter per alternative, dispatched on the tag's Index() the
// same way the original generator's visit(visitor) switches on index() and
// calls visitor with the matching alternative - split into one typed
// callback per case instead of a single generic call, since Go has no
// overload resolution to hang that on. A nil callback for the live
// alternative is simply not called.
func renderVisit(b *strings.Builder, typeName string, f Field, payloadOff string, readOnly bool) {
	params := make([]string, len(f.Alts))
	for i, a := range f.Alts {
		params[i] = fmt.Sprintf("on%s func(%s)", a.Name, accessorReturnType(a, readOnly))
	}
	fmt.Fprintf(b, "func (r %s) Visit%s(%s) {\n", typeName, f.Name, strings.Join(params, ", "))
	fmt.Fprintf(b, "\tswitch r.%sTag().Index() {\n", f.Name)
	for i, a := range f.Alts {
		fmt.Fprintf(b, "\tcase %d:\n", i)
		fmt.Fprintf(b, "\t\tif on%s != nil {\n\t\t\ton%s(%s)\n\t\t}\n", a.Name, a.Name, altView(a, payloadOff, readOnly))
	}
	fmt.Fprintf(b, "\t}\n}\n")
}

// accessorReturnType names the view type an alternative's accessor
// returns. constRef selects the read-only counterpart, used for
// GetIfXxx/AsXxx; EmplaceXxx always uses the mutable one regardless of
// the caller parameter.
func accessorReturnType(a Alt, constRef bool) string {
	suffix := "Ref"
	if constRef {
		suffix = "ConstRef"
	}
	switch a.Kind {
	case KindBool:
		return "vpack.Bool" + suffix
	case KindFloat:
		if a.Size == 4 {
			return "vpack.Float32" + suffix
		}
		return "vpack.Float64" + suffix
	case KindRecord:
		return a.GoType + suffix
	case KindNative:
		return "vpack.Native" + suffix + "[" + a.GoType + "]"
	default: // KindInt
		return "vpack.Scalar" + suffix + "[" + a.GoType + "]"
	}
}

func altView(a Alt, payloadOff string, constRef bool) string {
	suffix := "Ref"
	if constRef {
		suffix = "ConstRef"
	}
	switch a.Kind {
	case KindBool:
		return fmt.Sprintf("vpack.NewBool%s(r.data, %s)", suffix, payloadOff)
	case KindFloat:
		ctor := "Float64"
		if a.Size == 4 {
			ctor = "Float32"
		}
		return fmt.Sprintf("vpack.New%s%s(r.data, %s)", ctor, suffix, payloadOff)
	case KindRecord:
		return fmt.Sprintf("New%s%s(r.data[%s:])", a.GoType, suffix, payloadOff)
	case KindNative:
		return fmt.Sprintf("vpack.NewNative%s[%s](r.data, %s)", suffix, a.GoType, payloadOff)
	default: // KindInt
		return fmt.Sprintf("vpack.NewScalar%s[%s](r.data, %s)", suffix, a.GoType, payloadOff)
	}
}
