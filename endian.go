package vpack

import (
	"encoding/binary"
	"math"
	"unsafe"
)

var LittleEndian = binary.LittleEndian

// IntBased is the set of integer kinds a scalar wire field, or an enum's
// underlying type, can take. Widths of 1, 2, 4 and 8 bytes are supported;
// the wire size is unsafe.Sizeof the zero value, so an enum declared as
// `type Kind uint8` gets a 1-byte field for free.
type IntBased interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// hostLittleEndian is computed once, the same trick encoding/binary itself
// uses internally to special-case native byte order.
var hostLittleEndian = func() bool {
	var x uint16 = 1
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

// RequireLittleEndianHost panics if the running host is not little-endian.
// Native pass-through wire types reinterpret bytes directly and have no
// portable byteswap path; generated code calls this once, from an init
// function, for every schema that uses a native-pod field - the same spot a
// static_assert would sit in a language that has one.
func RequireLittleEndianHost() {
	if !hostLittleEndian {
		panic("vpack: native pass-through fields require a little-endian host")
	}
}

// LoadInt reads a little-endian integer of T's width from the front of b.
func LoadInt[T IntBased](b []byte) T {
	switch unsafe.Sizeof(T(0)) {
	case 1:
		return T(b[0])
	case 2:
		return T(LittleEndian.Uint16(b))
	case 4:
		return T(LittleEndian.Uint32(b))
	case 8:
		return T(LittleEndian.Uint64(b))
	default:
		panic("vpack: unsupported integer width")
	}
}

// StoreInt writes v to the front of b as a little-endian integer of T's width.
func StoreInt[T IntBased](b []byte, v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		b[0] = byte(v)
	case 2:
		LittleEndian.PutUint16(b, uint16(v))
	case 4:
		LittleEndian.PutUint32(b, uint32(v))
	case 8:
		LittleEndian.PutUint64(b, uint64(v))
	default:
		panic("vpack: unsupported integer width")
	}
}

// SizeOfInt returns the wire width, in bytes, of an IntBased type.
func SizeOfInt[T IntBased]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// LoadBool reads a one-byte bool: zero is false, anything else is true.
func LoadBool(b []byte) bool { return b[0] != 0 }

// StoreBool writes a one-byte bool as exactly 0 or 1.
func StoreBool(b []byte, v bool) {
	if v {
		b[0] = 1
	} else {
		b[0] = 0
	}
}

// LoadFloat32 reads a little-endian IEEE-754 single precision float.
func LoadFloat32(b []byte) float32 {
	return math.Float32frombits(LoadInt[uint32](b))
}

// StoreFloat32 writes v as a little-endian IEEE-754 single precision float.
func StoreFloat32(b []byte, v float32) {
	StoreInt(b, math.Float32bits(v))
}

// LoadFloat64 reads a little-endian IEEE-754 double precision float.
func LoadFloat64(b []byte) float64 {
	return math.Float64frombits(LoadInt[uint64](b))
}

// StoreFloat64 writes v as a little-endian IEEE-754 double precision float.
func StoreFloat64(b []byte, v float64) {
	StoreInt(b, math.Float64bits(v))
}

// LoadNativePOD reinterprets the first unsafe.Sizeof(T) bytes of b as T,
// byte for byte. It is only valid on a little-endian host; call
// RequireLittleEndianHost before relying on it. T must be trivially
// copyable: no pointers, no strings, no slices.
func LoadNativePOD[T any](b []byte) T {
	var out T
	sz := int(unsafe.Sizeof(out))
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&out)), sz), b[:sz])
	return out
}

// StoreNativePOD writes v's raw bytes into b. See LoadNativePOD.
func StoreNativePOD[T any](b []byte, v T) {
	sz := int(unsafe.Sizeof(v))
	copy(b[:sz], unsafe.Slice((*byte)(unsafe.Pointer(&v)), sz))
}
