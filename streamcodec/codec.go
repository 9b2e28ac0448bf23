package streamcodec

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/nsrdbin/vpack"
	"github.com/nsrdbin/vpack/errs"
	"github.com/nsrdbin/vpack/internal/vlog"
)

// Encode writes buf's fingerprint, stride, size-prefixed payload length and
// payload bytes to h, in that order.
func Encode[Ref any, ConstRef any](h Hook, buf *vpack.Buffer[Ref, ConstRef]) error {
	payload := buf.Bytes()
	if len(payload) > MaxPayloadBytes {
		return errors.Errorf("vpack/streamcodec: payload of %d bytes exceeds the %d byte limit", len(payload), MaxPayloadBytes)
	}

	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], buf.Fingerprint())
	if _, err := h.Write(word[:]); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(word[:], uint64(buf.Stride()))
	if _, err := h.Write(word[:]); err != nil {
		return err
	}
	if err := writeSizePrefix(h, uint32(len(payload))); err != nil {
		return err
	}
	_, err := h.Write(payload)
	return err
}

// Decode reads a frame written by Encode from h into buf. Any rejection -
// a fingerprint/stride mismatch, a malformed size, or a short read - calls
// h.SetError and leaves buf cleared, never partially populated.
func Decode[Ref any, ConstRef any](h Hook, buf *vpack.Buffer[Ref, ConstRef]) error {
	reject := func(err error) error {
		h.SetError(err)
		buf.Clear()
		logger := vlog.Default()
		logger.Warn().Str("event", vlog.EventStreamDecodeRejected).
			Str("reason", errs.Message(err)).Msg("rejected stream frame")
		return err
	}

	var word [8]byte
	if _, err := io.ReadFull(h, word[:]); err != nil {
		return reject(errs.Wrap(errs.ErrReadFailed, err.Error()))
	}
	fingerprint := binary.LittleEndian.Uint64(word[:])

	if _, err := io.ReadFull(h, word[:]); err != nil {
		return reject(errs.Wrap(errs.ErrReadFailed, err.Error()))
	}
	stride := binary.LittleEndian.Uint64(word[:])

	if fingerprint != buf.Fingerprint() || stride != uint64(buf.Stride()) {
		return reject(errs.Wrap(errs.ErrSchemaMismatch, "stream frame does not match the target buffer's schema"))
	}

	size, err := readSizePrefix(h)
	if err != nil {
		return reject(errs.Wrap(errs.ErrReadFailed, err.Error()))
	}
	if stride == 0 || uint64(size)%stride != 0 || size > MaxPayloadBytes {
		return reject(errs.Wrapf(errs.ErrPayloadSizeMismatch, "stream payload size %d is not a multiple of stride %d", size, stride))
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(h, payload); err != nil {
		return reject(errs.Wrap(errs.ErrTruncatedPayload, err.Error()))
	}
	if err := buf.AssignBytes(payload); err != nil {
		return reject(err)
	}
	return nil
}
