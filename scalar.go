package vpack

import "time"

// ScalarRef is a mutable view onto an integer (or integer-underlying enum)
// field at a fixed byte offset inside a record's backing bytes.
type ScalarRef[T IntBased] struct {
	base []byte
	off  int
}

// NewScalarRef builds a ScalarRef at off within base. Generated code calls
// this once per scalar field, from the field's accessor method.
func NewScalarRef[T IntBased](base []byte, off int) ScalarRef[T] {
	return ScalarRef[T]{base: base, off: off}
}

func (r ScalarRef[T]) Get() T     { return LoadInt[T](r.base[r.off:]) }
func (r ScalarRef[T]) Set(v T)    { StoreInt(r.base[r.off:], v) }
func (r ScalarRef[T]) Value() T   { return r.Get() }

// ScalarConstRef is the read-only counterpart of ScalarRef.
type ScalarConstRef[T IntBased] struct {
	base []byte
	off  int
}

func NewScalarConstRef[T IntBased](base []byte, off int) ScalarConstRef[T] {
	return ScalarConstRef[T]{base: base, off: off}
}

func (r ScalarConstRef[T]) Get() T   { return LoadInt[T](r.base[r.off:]) }
func (r ScalarConstRef[T]) Value() T { return r.Get() }

// BoolRef is a mutable view onto a one-byte bool field.
type BoolRef struct {
	base []byte
	off  int
}

func NewBoolRef(base []byte, off int) BoolRef { return BoolRef{base: base, off: off} }

func (r BoolRef) Get() bool  { return LoadBool(r.base[r.off:]) }
func (r BoolRef) Set(v bool) { StoreBool(r.base[r.off:], v) }
func (r BoolRef) Value() bool { return r.Get() }

// BoolConstRef is the read-only counterpart of BoolRef.
type BoolConstRef struct {
	base []byte
	off  int
}

func NewBoolConstRef(base []byte, off int) BoolConstRef { return BoolConstRef{base: base, off: off} }

func (r BoolConstRef) Get() bool   { return LoadBool(r.base[r.off:]) }
func (r BoolConstRef) Value() bool { return r.Get() }

// Float32Ref is a mutable view onto a 4-byte IEEE-754 field.
type Float32Ref struct {
	base []byte
	off  int
}

func NewFloat32Ref(base []byte, off int) Float32Ref { return Float32Ref{base: base, off: off} }

func (r Float32Ref) Get() float32  { return LoadFloat32(r.base[r.off:]) }
func (r Float32Ref) Set(v float32) { StoreFloat32(r.base[r.off:], v) }
func (r Float32Ref) Value() float32 { return r.Get() }

// Float32ConstRef is the read-only counterpart of Float32Ref.
type Float32ConstRef struct {
	base []byte
	off  int
}

func NewFloat32ConstRef(base []byte, off int) Float32ConstRef {
	return Float32ConstRef{base: base, off: off}
}

func (r Float32ConstRef) Get() float32   { return LoadFloat32(r.base[r.off:]) }
func (r Float32ConstRef) Value() float32 { return r.Get() }

// Float64Ref is a mutable view onto an 8-byte IEEE-754 field.
type Float64Ref struct {
	base []byte
	off  int
}

func NewFloat64Ref(base []byte, off int) Float64Ref { return Float64Ref{base: base, off: off} }

func (r Float64Ref) Get() float64  { return LoadFloat64(r.base[r.off:]) }
func (r Float64Ref) Set(v float64) { StoreFloat64(r.base[r.off:], v) }
func (r Float64Ref) Value() float64 { return r.Get() }

// Float64ConstRef is the read-only counterpart of Float64Ref.
type Float64ConstRef struct {
	base []byte
	off  int
}

func NewFloat64ConstRef(base []byte, off int) Float64ConstRef {
	return Float64ConstRef{base: base, off: off}
}

func (r Float64ConstRef) Get() float64   { return LoadFloat64(r.base[r.off:]) }
func (r Float64ConstRef) Value() float64 { return r.Get() }

// NativeRef is a mutable view onto a native pass-through field: a trivially
// copyable, non-scalar type (a small struct of plain numeric fields, for
// instance) whose bytes are reinterpreted directly rather than walked
// field by field. Only valid on a little-endian host.
type NativeRef[T any] struct {
	base []byte
	off  int
}

func NewNativeRef[T any](base []byte, off int) NativeRef[T] {
	return NativeRef[T]{base: base, off: off}
}

func (r NativeRef[T]) Get() T   { return LoadNativePOD[T](r.base[r.off:]) }
func (r NativeRef[T]) Set(v T)  { StoreNativePOD(r.base[r.off:], v) }
func (r NativeRef[T]) Value() T { return r.Get() }

// NativeConstRef is the read-only counterpart of NativeRef.
type NativeConstRef[T any] struct {
	base []byte
	off  int
}

func NewNativeConstRef[T any](base []byte, off int) NativeConstRef[T] {
	return NativeConstRef[T]{base: base, off: off}
}

func (r NativeConstRef[T]) Get() T   { return LoadNativePOD[T](r.base[r.off:]) }
func (r NativeConstRef[T]) Value() T { return r.Get() }

// unixSecondsWidth is the wire width, in bytes, of TimeRef/TimeConstRef.
const unixSecondsWidth = 8

// TimeRef is a mutable view onto a fixed 8-byte little-endian unix-seconds
// timestamp field. It truncates to one-second resolution on Set, the same
// tradeoff the teacher's cursor-based UnixTimeKey field made for a fixed,
// sortable key width.
type TimeRef struct {
	base []byte
	off  int
}

func NewTimeRef(base []byte, off int) TimeRef { return TimeRef{base: base, off: off} }

func (r TimeRef) Get() time.Time { return time.Unix(LoadInt[int64](r.base[r.off:]), 0) }
func (r TimeRef) Set(v time.Time) { StoreInt(r.base[r.off:], v.Unix()) }
func (r TimeRef) Value() time.Time { return r.Get() }

// TimeConstRef is the read-only counterpart of TimeRef.
type TimeConstRef struct {
	base []byte
	off  int
}

func NewTimeConstRef(base []byte, off int) TimeConstRef { return TimeConstRef{base: base, off: off} }

func (r TimeConstRef) Get() time.Time   { return time.Unix(LoadInt[int64](r.base[r.off:]), 0) }
func (r TimeConstRef) Value() time.Time { return r.Get() }
