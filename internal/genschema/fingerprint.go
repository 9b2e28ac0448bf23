package genschema

import "strings"

const (
	fnvOffsetBasis uint64 = 0xCBF29CE484222325
	fnvPrime       uint64 = 0x100000001B3
)

func fnv1a(s string) uint64 {
	h := fnvOffsetBasis
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}
	return h
}

// signature renders s into the canonical text a fingerprint is computed
// over: the schema name, then one line per field of "kind:gotype:name",
// with tagged/untagged sum fields followed by one "|name:gotype:size" per
// alternative in declaration order. Two schemas that differ in field
// names, kinds, wire types, alternative sets or declaration order never
// produce the same signature; two schemas that differ only in Go-side
// concerns the wire format ignores - accessor doc comments, Default
// expressions - always do.
func signature(s Schema) string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('\n')
	for _, f := range s.Fields {
		b.WriteString(f.Kind.String())
		b.WriteByte(':')
		b.WriteString(f.GoType)
		b.WriteByte(':')
		b.WriteString(f.Name)
		for _, a := range f.Alts {
			b.WriteByte('|')
			b.WriteString(a.Name)
			b.WriteByte(':')
			b.WriteString(a.GoType)
			b.WriteByte(':')
			b.WriteString(itoa(a.Size))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Fingerprint computes a schema's 64-bit identity over its canonical
// signature and stride, using FNV-1a with a final stride-dependent mix so
// that two schemas with identical fields but different padding/stride
// never collide.
func Fingerprint(s Schema, stride int) uint64 {
	h := fnv1a(signature(s))
	h ^= uint64(stride)
	h *= fnvPrime
	return h
}
