package vpack

// TagRef gives raw access to a tagged sum's 4-byte little-endian
// discriminant. Generated code embeds one per tagged-sum field; callers
// never see it directly, they see the HoldsXxx/GetIfXxx/EmplaceXxx methods
// generated alongside it.
type TagRef struct {
	base []byte // at least 4 bytes: the discriminant region
}

// NewTagRef builds a TagRef over the 4 bytes starting at off.
func NewTagRef(base []byte, off int) TagRef {
	return TagRef{base: base[off:]}
}

// Index returns the active alternative's position in the schema's
// declaration-order alternative list. Index 0 is the first alternative,
// not a reserved "empty" sentinel - a freshly zeroed record therefore reads
// as alternative 0 holding a zero value, which is exactly what a field of
// bytes all equal to zero looks like before any Emplace call runs.
func (t TagRef) Index() uint32 { return LoadInt[uint32](t.base) }

// SetIndex writes the discriminant. Generated EmplaceXxx methods call this
// before zeroing and writing the payload; nothing else needs to call it.
func (t TagRef) SetIndex(i uint32) { StoreInt(t.base, i) }

// PayloadRef gives raw access to a sum field's payload region, sized to the
// widest alternative declared on the field.
type PayloadRef struct {
	base []byte
}

// NewPayloadRef builds a PayloadRef over exactly size bytes starting at off.
func NewPayloadRef(base []byte, off, size int) PayloadRef {
	return PayloadRef{base: base[off : off+size]}
}

// Zero clears the entire payload region. Every EmplaceXxx method on a
// generated sum view calls this before writing its alternative's bytes, so
// bytes left over from a previously live, wider alternative never leak
// into a narrower one.
func (p PayloadRef) Zero() {
	for i := range p.base {
		p.base[i] = 0
	}
}

// BeginTaggedEmplace writes the discriminant and zeroes the payload, in
// that order, ahead of a generated EmplaceXxx method writing its
// alternative's value into the (now zeroed) payload.
func BeginTaggedEmplace(tag TagRef, payload PayloadRef, index uint32) {
	tag.SetIndex(index)
	payload.Zero()
}

// BeginUnionEmplace zeroes an untagged sum's payload ahead of a generated
// EmplaceXxx method writing its alternative's value. There is no
// discriminant to write: the caller is the only one who knows, after this
// call, which alternative is live.
func BeginUnionEmplace(payload PayloadRef) {
	payload.Zero()
}
