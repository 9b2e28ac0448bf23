package vpack

import "github.com/nsrdbin/vpack/errs"

// DefaultRecordsPerPage is the page size a Buffer uses when it isn't asked
// to do otherwise: 256 records per heap-allocated page, the same default
// the original C++ template parameter used.
const DefaultRecordsPerPage = 256

// pagePolicy is the storage strategy behind a Container: where record
// bytes live, and what happens to previously returned record slices when
// the container grows.
type pagePolicy interface {
	byteLen() int
	clear()
	emplaceBack(stride int) []byte
	record(index, stride int) []byte
	bytes(stride int) []byte
	assignBytes(payload []byte, stride int) error
}

// segmentedPolicy groups records into fixed-capacity pages. A page's
// backing array is allocated once, at its declared capacity, and never
// reallocated, so a record slice returned from an earlier page stays valid
// across EmplaceBack calls, including ones that allocate a brand new page.
// Clear and AssignBytes drop the pages; slices taken before either call no
// longer alias the container's bytes.
type segmentedPolicy struct {
	recordsPerPage int
	pageBytes      int
	pages          [][]byte
}

func newSegmentedPolicy(stride, recordsPerPage int) *segmentedPolicy {
	return &segmentedPolicy{recordsPerPage: recordsPerPage, pageBytes: stride * recordsPerPage}
}

func (p *segmentedPolicy) byteLen() int {
	n := 0
	for _, pg := range p.pages {
		n += len(pg)
	}
	return n
}

func (p *segmentedPolicy) clear() { p.pages = nil }

func (p *segmentedPolicy) emplaceBack(stride int) []byte {
	if len(p.pages) == 0 || len(p.pages[len(p.pages)-1]) == p.pageBytes {
		p.pages = append(p.pages, make([]byte, 0, p.pageBytes))
	}
	last := len(p.pages) - 1
	start := len(p.pages[last])
	p.pages[last] = append(p.pages[last], make([]byte, stride)...)
	return p.pages[last][start : start+stride]
}

func (p *segmentedPolicy) record(index, stride int) []byte {
	pageIdx := index / p.recordsPerPage
	slot := index % p.recordsPerPage
	off := slot * stride
	return p.pages[pageIdx][off : off+stride]
}

func (p *segmentedPolicy) bytes(stride int) []byte {
	out := make([]byte, p.byteLen())
	offset := 0
	for _, pg := range p.pages {
		copy(out[offset:], pg)
		offset += len(pg)
	}
	return out
}

func (p *segmentedPolicy) assignBytes(payload []byte, stride int) error {
	if stride != 0 && len(payload)%stride != 0 {
		return errs.Wrapf(errs.ErrPayloadSizeMismatch, "payload size %d is not a multiple of stride %d", len(payload), stride)
	}
	p.pages = nil
	remaining := payload
	for len(remaining) > 0 {
		n := p.pageBytes
		if n > len(remaining) {
			n = len(remaining)
		}
		page := make([]byte, n, p.pageBytes)
		copy(page, remaining[:n])
		p.pages = append(p.pages, page)
		remaining = remaining[n:]
	}
	return nil
}

// contiguousPolicy stores every record in one flat, growable slice. Unlike
// segmentedPolicy, growing past the slice's capacity reallocates and
// copies, which silently invalidates any record slice taken before the
// reallocation - this is the Go-native equivalent of the "contiguous
// storage policy" invalidation rule: it falls directly out of how append
// behaves, rather than needing to be enforced by hand.
type contiguousPolicy struct {
	data []byte
}

func newContiguousPolicy() *contiguousPolicy { return &contiguousPolicy{} }

func (p *contiguousPolicy) byteLen() int { return len(p.data) }
func (p *contiguousPolicy) clear()       { p.data = nil }

func (p *contiguousPolicy) emplaceBack(stride int) []byte {
	start := len(p.data)
	p.data = append(p.data, make([]byte, stride)...)
	return p.data[start : start+stride]
}

func (p *contiguousPolicy) record(index, stride int) []byte {
	off := index * stride
	return p.data[off : off+stride]
}

func (p *contiguousPolicy) bytes(stride int) []byte {
	out := make([]byte, len(p.data))
	copy(out, p.data)
	return out
}

func (p *contiguousPolicy) assignBytes(payload []byte, stride int) error {
	if stride != 0 && len(payload)%stride != 0 {
		return errs.Wrapf(errs.ErrPayloadSizeMismatch, "payload size %d is not a multiple of stride %d", len(payload), stride)
	}
	p.data = append(p.data[:0], payload...)
	return nil
}

// Container is the page-organized byte store backing a Buffer. It knows
// nothing about schemas, fingerprints, or views - only bytes, a stride,
// and which pagePolicy to delegate to.
type Container struct {
	stride         int
	recordsPerPage int
	policy         pagePolicy
}

// NewContainer builds a segmented Container: the default policy, pages of
// recordsPerPage records each.
func NewContainer(stride, recordsPerPage int) *Container {
	if stride <= 0 {
		panic("vpack: stride must be positive")
	}
	if recordsPerPage <= 0 {
		panic("vpack: records per page must be positive")
	}
	return &Container{
		stride:         stride,
		recordsPerPage: recordsPerPage,
		policy:         newSegmentedPolicy(stride, recordsPerPage),
	}
}

// NewContiguousContainer builds a Container backed by one flat, growable
// byte slice instead of fixed-capacity pages.
func NewContiguousContainer(stride int) *Container {
	if stride <= 0 {
		panic("vpack: stride must be positive")
	}
	return &Container{stride: stride, policy: newContiguousPolicy()}
}

func (c *Container) Stride() int         { return c.stride }
func (c *Container) RecordsPerPage() int { return c.recordsPerPage }
func (c *Container) ByteSize() int       { return c.policy.byteLen() }
func (c *Container) Size() int           { return c.policy.byteLen() / c.stride }
func (c *Container) Empty() bool         { return c.Size() == 0 }
func (c *Container) Clear()              { c.policy.clear() }

// EmplaceBack appends one zeroed record and returns a mutable slice over
// its bytes.
func (c *Container) EmplaceBack() []byte { return c.policy.emplaceBack(c.stride) }

// Record returns a slice over record i's bytes. The caller chooses whether
// to treat it as mutable or read-only; Container makes no distinction,
// since Go has no way to express a read-only slice.
func (c *Container) Record(i int) []byte { return c.policy.record(i, c.stride) }

// Bytes returns a copy of every record's bytes, concatenated in order.
func (c *Container) Bytes() []byte { return c.policy.bytes(c.stride) }

// AssignBytes replaces the container's contents with payload, which must
// be a multiple of the stride. It invalidates every previously returned
// record slice, on both storage policies.
func (c *Container) AssignBytes(payload []byte) error {
	return c.policy.assignBytes(payload, c.stride)
}
