package streamcodec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// Frame wraps one Encode/Decode frame as a self-contained msgpack byte
// string, so a vpack buffer can ride along inside a larger msgpack
// document as an ordinary field instead of its own top-level value.
type Frame struct {
	bytes []byte
}

var _ msgpack.CustomEncoder = Frame{}
var _ msgpack.CustomDecoder = (*Frame)(nil)

// EncodeMsgpack implements msgpack.CustomEncoder.
func (f Frame) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(f.bytes)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (f *Frame) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	f.bytes = b
	return nil
}

// MsgpackExtHook is a Hook backed by an in-memory buffer, used to build or
// consume a Frame. Encode a buffer into one with NewMsgpackEncodeHook, then
// marshal the resulting Frame with msgpack.Marshal; go the other way with
// msgpack.Unmarshal into a Frame and NewMsgpackDecodeHook.
type MsgpackExtHook struct {
	*IOHook
	buf *bytes.Buffer
}

// NewMsgpackEncodeHook returns a hook ready to receive an Encode call.
func NewMsgpackEncodeHook() *MsgpackExtHook {
	buf := &bytes.Buffer{}
	return &MsgpackExtHook{IOHook: NewIOHook(buf), buf: buf}
}

// Frame returns the frame accumulated so far, for marshaling with msgpack.
func (h *MsgpackExtHook) Frame() Frame { return Frame{bytes: h.buf.Bytes()} }

// NewMsgpackDecodeHook returns a hook over frame's bytes, ready to receive
// a Decode call.
func NewMsgpackDecodeHook(frame Frame) *MsgpackExtHook {
	buf := bytes.NewBuffer(frame.bytes)
	return &MsgpackExtHook{IOHook: NewIOHook(buf), buf: buf}
}
