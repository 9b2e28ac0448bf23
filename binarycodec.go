package vpack

import (
	"context"
	"io"
	"os"

	"github.com/nsrdbin/vpack/errs"
	"github.com/nsrdbin/vpack/internal/vlog"
)

// binaryMagic identifies a vpack binary file. It is always the first 8
// bytes of a valid file.
const binaryMagic = "NSRDBIN1"

// binaryHeaderSize is the fixed size, in bytes, of the header preceding a
// binary file's payload: magic(8) + fingerprint(8) + stride(8) +
// record_count(8) + payload_size_bytes(8).
const binaryHeaderSize = 40

type binaryHeader struct {
	fingerprint uint64
	stride      uint64
	recordCount uint64
	payloadSize uint64
}

func encodeBinaryHeader(h binaryHeader) []byte {
	c := newWriteCursor()
	c.writeBytes([]byte(binaryMagic)...)
	var tmp [8]byte
	for _, v := range []uint64{h.fingerprint, h.stride, h.recordCount, h.payloadSize} {
		LittleEndian.PutUint64(tmp[:], v)
		c.writeBytes(tmp[:]...)
	}
	return c.data
}

// decodeBinaryHeader splits header validation into the two distinct steps
// the wire format's contract calls out separately: whether 40 bytes were
// even there to read (shortRead), and, only once that's satisfied, whether
// the magic matches (magicOK).
func decodeBinaryHeader(data []byte) (h binaryHeader, shortRead bool, magicOK bool) {
	c := newReadCursor(data)
	magic := c.readBytes(8)
	fingerprint := LoadInt[uint64](c.readBytes(8))
	stride := LoadInt[uint64](c.readBytes(8))
	recordCount := LoadInt[uint64](c.readBytes(8))
	payloadSize := LoadInt[uint64](c.readBytes(8))
	if c.short {
		return binaryHeader{}, true, false
	}
	return binaryHeader{
		fingerprint: fingerprint,
		stride:      stride,
		recordCount: recordCount,
		payloadSize: payloadSize,
	}, false, string(magic) == binaryMagic
}

// HeaderInfo is a binary file's 40-byte header, decoded without checking it
// against any particular schema. InspectHeader returns one; vpackctl's
// inspect and verify commands are its callers.
type HeaderInfo struct {
	Magic       string
	Fingerprint uint64
	Stride      uint64
	RecordCount uint64
	PayloadSize uint64
}

// InspectHeader reads path's 40-byte header and returns it verbatim,
// without validating the magic, schema or payload size - a debugging aid
// for tooling that has no compile-time schema to validate against. Use
// ReadBinary for anything that actually needs the validated contract.
func InspectHeader(path string) (HeaderInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return HeaderInfo{}, errs.Wrapf(errs.ErrOpenFailed, "open %s: %v", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return HeaderInfo{}, errs.Wrapf(errs.ErrReadFailed, "read %s: %v", path, err)
	}
	if len(data) < binaryHeaderSize {
		return HeaderInfo{}, errs.Wrapf(errs.ErrReadFailed, "%s is shorter than the %d byte header", path, binaryHeaderSize)
	}

	h, shortRead, _ := decodeBinaryHeader(data[:binaryHeaderSize])
	if shortRead {
		return HeaderInfo{}, errs.Wrapf(errs.ErrReadFailed, "%s's header did not fully read", path)
	}
	return HeaderInfo{
		Magic:       string(data[:8]),
		Fingerprint: h.fingerprint,
		Stride:      h.stride,
		RecordCount: h.recordCount,
		PayloadSize: h.payloadSize,
	}, nil
}

// WriteBinary writes buf to path as a 40-byte-headered binary file: magic,
// fingerprint, stride, record count, payload size, then the raw payload.
func WriteBinary[Ref any, ConstRef any](ctx context.Context, path string, buf *Buffer[Ref, ConstRef]) error {
	log := vlog.From(ctx)
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrapf(errs.ErrOpenFailed, "create %s: %v", path, err)
	}
	defer f.Close()

	payload := buf.Bytes()
	header := encodeBinaryHeader(binaryHeader{
		fingerprint: buf.Fingerprint(),
		stride:      uint64(buf.Stride()),
		recordCount: uint64(buf.Size()),
		payloadSize: uint64(len(payload)),
	})

	if _, err := f.Write(header); err != nil {
		return errs.Wrapf(errs.ErrWriteFailed, "write header to %s: %v", path, err)
	}
	if _, err := f.Write(payload); err != nil {
		return errs.Wrapf(errs.ErrWriteFailed, "write payload to %s: %v", path, err)
	}
	log.Debug().Str("event", vlog.EventBinaryWrite).Str("path", path).
		Int("records", buf.Size()).Msg("wrote binary file")
	return nil
}

// ReadBinary reads a 40-byte-headered binary file from path into buf,
// validating it in seven ordered steps: the file opens (else open_failed);
// the header fully reads (else read_failed); the magic matches (else
// invalid_header); the fingerprint and stride match buf's own schema (else
// schema_mismatch); payload_size_bytes equals stride*record_count (else
// invalid_header); the payload actually present matches payload_size_bytes
// (else truncated_payload); payload_size_bytes is a multiple of stride
// (else payload_size_mismatch). A rejection at any step leaves buf
// untouched.
func ReadBinary[Ref any, ConstRef any](ctx context.Context, path string, buf *Buffer[Ref, ConstRef]) error {
	log := vlog.From(ctx)
	reject := func(err error) error {
		log.Warn().Str("event", vlog.EventBinaryReadRejected).Str("path", path).
			Str("reason", errs.Message(err)).Msg("rejected binary file")
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return reject(errs.Wrapf(errs.ErrOpenFailed, "open %s: %v", path, err))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return reject(errs.Wrapf(errs.ErrReadFailed, "read %s: %v", path, err))
	}
	if len(data) < binaryHeaderSize {
		return reject(errs.Wrapf(errs.ErrReadFailed, "%s is shorter than the %d byte header", path, binaryHeaderSize))
	}

	header, shortRead, magicOK := decodeBinaryHeader(data[:binaryHeaderSize])
	if shortRead {
		return reject(errs.Wrapf(errs.ErrReadFailed, "%s's header did not fully read", path))
	}
	if !magicOK {
		return reject(errs.Wrapf(errs.ErrInvalidHeader, "%s has a bad magic", path))
	}
	if header.fingerprint != buf.Fingerprint() || header.stride != uint64(buf.Stride()) {
		return reject(errs.Wrapf(errs.ErrSchemaMismatch, "%s's schema does not match the target buffer", path))
	}
	if header.payloadSize != header.stride*header.recordCount {
		return reject(errs.Wrapf(errs.ErrInvalidHeader, "%s's payload size %d is inconsistent with stride %d and record count %d", path, header.payloadSize, header.stride, header.recordCount))
	}
	payload := data[binaryHeaderSize:]
	if uint64(len(payload)) != header.payloadSize {
		return reject(errs.Wrapf(errs.ErrTruncatedPayload, "%s declares %d payload bytes but has %d", path, header.payloadSize, len(payload)))
	}
	if header.stride == 0 || header.payloadSize%header.stride != 0 {
		return reject(errs.Wrapf(errs.ErrPayloadSizeMismatch, "%s's payload size %d is not a multiple of stride %d", path, header.payloadSize, header.stride))
	}

	if err := buf.AssignBytes(payload); err != nil {
		return reject(err)
	}
	log.Debug().Str("event", vlog.EventBinaryWrite).Str("path", path).
		Int("records", buf.Size()).Msg("read binary file")
	return nil
}
