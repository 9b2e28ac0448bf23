/*
Package vpack implements a schema-driven record buffer: a homogeneous
collection of fixed-stride binary records stored as one little-endian byte
image, exposed through typed views instead of a decoded copy.

# Schemas and generated code

vpack itself never parses a schema. A schema is an ordinary Go type plus a
small amount of generated glue: per-field byte offsets, the record's total
stride, and a 64-bit fingerprint that changes whenever the layout changes.
cmd/vpackgen (backed by internal/genschema) is the reference generator this
module ships so its own tests have something to generate from; real callers
are free to write the generated shape by hand for a handful of schemas, the
same way the examples under internal/examplerecord were produced.

Given a generated schema S, the buffer for it looks like:

	buf := vpack.NewBuffer(examplerecord.ExampleStride, examplerecord.ExampleLayout.Fingerprint,
	    examplerecord.NewExampleRef, examplerecord.NewExampleConstRef)

	ref := buf.EmplaceBack()
	ref.FlagMut().Set(true)
	ref.IDMut().Set(0x12345678)
	ref.EmplaceValueI32().Set(7)

	view := buf.At(0)
	fmt.Println(view.Flag().Get())

# Views, not copies

Every accessor on a generated Ref/ConstRef returns a small value type
(ScalarRef[T], BoolRef, NativeRef[T], ...) that holds a slice pointing
directly into the buffer's backing bytes. Reading or writing through the
view reads or writes the buffer in place; there is no decode step and no
allocation on the hot path. Mutable views stay valid across further
EmplaceBack calls on a segmented buffer (the default storage policy); they
do not survive Clear, AssignBytes, or growth of a contiguous buffer, since
both can move or discard the bytes the view was pointing at.

# Sum types

A schema field can be a tagged sum (variant: an explicit 32-bit discriminant
selects at most one live alternative) or an untagged sum (union_: no
discriminant, the caller tracks which alternative is live). Generated code
renders one method pair per alternative - HoldsXxx/GetIfXxx/EmplaceXxx for
tagged sums, AsXxx/EmplaceXxx for untagged ones - rather than a single
generic accessor that panics on a type mismatch; vpack deliberately has no
"get or panic" entry point anywhere in this package.

# Binary file format and stream codec hooks

WriteBinary/ReadBinary persist a buffer as a 40-byte-headered file
(magic, fingerprint, stride, record count, payload size, then the raw
payload) and validate all five of those against the buffer's own schema
and length before touching the payload. Package streamcodec provides the
equivalent hook contract for embedding a buffer inside someone else's
length-prefixed wire format, plus a msgpack-extension adapter.

# Concurrency

A Buffer is not safe for concurrent mutation. Views borrowed from one
goroutine must not be read or written from another while the buffer itself
is being mutated; callers serialize access the same way they would around
any other mutable, non-atomic Go value.
*/
package vpack
