// Package streamcodec concretizes the hook contract a vpack buffer uses to
// embed itself inside someone else's size-prefixed wire format: fingerprint,
// stride, a variable-length payload size, then the raw payload. It provides
// a plain io.ReadWriter adapter (IOHook, what the core's own tests exercise)
// and a msgpack-backed one (MsgpackExtHook) for embedding a buffer as a
// self-contained msgpack value.
package streamcodec

import "io"

// Hook is what an external stream codec gives vpack to read and write its
// own framing through: ordinary byte and bulk I/O, plus a way to flag that
// the stream turned out to hold invalid data partway through a decode.
type Hook interface {
	io.Reader
	io.Writer
	io.ByteReader
	io.ByteWriter

	// SetError marks the stream invalid. Decode calls this as well as
	// returning the error, so a Hook backed by a stateful decoder can also
	// flag its own underlying reader. IOHook, and MsgpackExtHook through
	// it, only records the error for Err to return.
	SetError(err error)
}

// MaxPayloadBytes is the largest payload size the variable-length size
// prefix can represent. Encode refuses to write a larger payload.
const MaxPayloadBytes = 0x3FFFFFFF
