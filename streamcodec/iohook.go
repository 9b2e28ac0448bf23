package streamcodec

import "io"

// IOHook adapts any io.ReadWriter into a Hook. It's the adapter vpack's own
// tests exercise, and a reasonable default for embedding a buffer inside an
// ad-hoc framed protocol that isn't msgpack.
type IOHook struct {
	rw  io.ReadWriter
	err error
}

// NewIOHook wraps rw.
func NewIOHook(rw io.ReadWriter) *IOHook { return &IOHook{rw: rw} }

func (h *IOHook) Read(p []byte) (int, error)  { return h.rw.Read(p) }
func (h *IOHook) Write(p []byte) (int, error) { return h.rw.Write(p) }

func (h *IOHook) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(h.rw, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (h *IOHook) WriteByte(b byte) error {
	_, err := h.rw.Write([]byte{b})
	return err
}

// SetError records the most recent decode failure. Err returns it.
func (h *IOHook) SetError(err error) { h.err = err }

// Err returns the error set by the most recent failed Decode, if any.
func (h *IOHook) Err() error { return h.err }
