package vpack

// Buffer is the typed front end over a Container: a homogeneous collection
// of fixed-stride records, exposed through a generated Ref (mutable view)
// and ConstRef (read-only view) pair instead of decoded Go values.
//
// Buffer is not safe for concurrent mutation. Views borrowed from it
// remain valid exactly as long as Container's own rules say they do (see
// doc.go); callers serialize access externally the same way they would
// around a plain slice.
type Buffer[Ref any, ConstRef any] struct {
	container   *Container
	fingerprint uint64
	newRef      func([]byte) Ref
	newConstRef func([]byte) ConstRef
	defaults    func(Ref)
}

// BufferOption configures a Buffer at construction time.
type BufferOption[Ref any, ConstRef any] func(*Buffer[Ref, ConstRef])

// WithDefaults registers a function EmplaceBack runs, after zeroing and
// before returning, to populate a schema's default field values. Schemas
// with no defaults simply don't pass this option, and EmplaceBack behaves
// exactly as a bare zeroed record.
func WithDefaults[Ref any, ConstRef any](apply func(Ref)) BufferOption[Ref, ConstRef] {
	return func(b *Buffer[Ref, ConstRef]) { b.defaults = apply }
}

// WithRecordsPerPage overrides DefaultRecordsPerPage for a segmented Buffer.
func WithRecordsPerPage[Ref any, ConstRef any](n int) BufferOption[Ref, ConstRef] {
	return func(b *Buffer[Ref, ConstRef]) {
		b.container = NewContainer(b.container.Stride(), n)
	}
}

// NewBuffer builds a segmented Buffer for a schema of the given stride and
// fingerprint, using newRef/newConstRef (generated per schema) to wrap raw
// record bytes into typed views.
func NewBuffer[Ref any, ConstRef any](
	stride int,
	fingerprint uint64,
	newRef func([]byte) Ref,
	newConstRef func([]byte) ConstRef,
	opts ...BufferOption[Ref, ConstRef],
) *Buffer[Ref, ConstRef] {
	b := &Buffer[Ref, ConstRef]{
		container:   NewContainer(stride, DefaultRecordsPerPage),
		fingerprint: fingerprint,
		newRef:      newRef,
		newConstRef: newConstRef,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewContiguousBuffer is NewBuffer, backed by a flat, growable byte slice
// instead of fixed pages.
func NewContiguousBuffer[Ref any, ConstRef any](
	stride int,
	fingerprint uint64,
	newRef func([]byte) Ref,
	newConstRef func([]byte) ConstRef,
	opts ...BufferOption[Ref, ConstRef],
) *Buffer[Ref, ConstRef] {
	b := &Buffer[Ref, ConstRef]{
		container:   NewContiguousContainer(stride),
		fingerprint: fingerprint,
		newRef:      newRef,
		newConstRef: newConstRef,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Buffer[Ref, ConstRef]) Stride() int         { return b.container.Stride() }
func (b *Buffer[Ref, ConstRef]) Fingerprint() uint64 { return b.fingerprint }
func (b *Buffer[Ref, ConstRef]) Size() int           { return b.container.Size() }
func (b *Buffer[Ref, ConstRef]) ByteSize() int       { return b.container.ByteSize() }
func (b *Buffer[Ref, ConstRef]) Empty() bool         { return b.container.Empty() }
func (b *Buffer[Ref, ConstRef]) Clear()              { b.container.Clear() }

// EmplaceBack appends one zeroed record, applies the schema's default
// field values if any were registered with WithDefaults, and returns a
// mutable view over it.
func (b *Buffer[Ref, ConstRef]) EmplaceBack() Ref {
	raw := b.container.EmplaceBack()
	ref := b.newRef(raw)
	if b.defaults != nil {
		b.defaults(ref)
	}
	return ref
}

// At returns a mutable view over record i.
func (b *Buffer[Ref, ConstRef]) At(i int) Ref { return b.newRef(b.container.Record(i)) }

// ConstAt returns a read-only view over record i.
func (b *Buffer[Ref, ConstRef]) ConstAt(i int) ConstRef {
	return b.newConstRef(b.container.Record(i))
}

// Bytes returns a copy of the buffer's raw payload, record by record in
// index order.
func (b *Buffer[Ref, ConstRef]) Bytes() []byte { return b.container.Bytes() }

// AssignBytes replaces the buffer's contents with payload, which must be a
// multiple of the schema's stride. It invalidates every view taken before
// the call.
func (b *Buffer[Ref, ConstRef]) AssignBytes(payload []byte) error {
	return b.container.AssignBytes(payload)
}

// Emplace appends a new record and assigns data to it through assign,
// typically a generated schema's Assign method. It is a free function,
// rather than a method, because Go methods cannot introduce their own type
// parameter beyond the receiver's.
func Emplace[Ref any, ConstRef any, Data any](b *Buffer[Ref, ConstRef], assign func(Ref, Data), data Data) Ref {
	ref := b.EmplaceBack()
	assign(ref, data)
	return ref
}
