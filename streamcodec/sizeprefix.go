package streamcodec

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// writeSizePrefix encodes v using the contract's three-tier variable-length
// format: 1 byte for v < 0x80, 2 bytes (big-endian-ish, high bits 10) for
// v <= 0x3FFF, and 4 bytes (the first two the same shape with high bits 11,
// the last two a little-endian word) for v up to MaxPayloadBytes. The 2-byte
// case stops at 0x3FFF, not 0x7FFF, so its head byte's bit 6 is always
// clear - a head byte with bits 11 in the top two positions unambiguously
// means the 4-byte form.
func writeSizePrefix(h Hook, v uint32) error {
	switch {
	case v < 0x80:
		return h.WriteByte(byte(v))
	case v <= 0x3FFF:
		if err := h.WriteByte(0x80 | byte(v>>8)); err != nil {
			return err
		}
		return h.WriteByte(byte(v))
	case v <= MaxPayloadBytes:
		hi := v >> 16
		if err := h.WriteByte(0xC0 | byte(hi>>8)); err != nil {
			return err
		}
		if err := h.WriteByte(byte(hi)); err != nil {
			return err
		}
		var lw [2]byte
		binary.LittleEndian.PutUint16(lw[:], uint16(v))
		_, err := h.Write(lw[:])
		return err
	default:
		return errors.Errorf("vpack/streamcodec: payload of %d bytes exceeds the %d byte limit", v, MaxPayloadBytes)
	}
}

// readSizePrefix decodes a value written by writeSizePrefix.
func readSizePrefix(h Hook) (uint32, error) {
	hb, err := h.ReadByte()
	if err != nil {
		return 0, err
	}
	switch {
	case hb < 0x80:
		return uint32(hb), nil
	case hb&0xC0 == 0x80:
		lb, err := h.ReadByte()
		if err != nil {
			return 0, err
		}
		return uint32(hb&0x7F)<<8 | uint32(lb), nil
	default: // hb&0xC0 == 0xC0
		lb, err := h.ReadByte()
		if err != nil {
			return 0, err
		}
		var lw [2]byte
		if _, err := io.ReadFull(h, lw[:]); err != nil {
			return 0, err
		}
		hi := uint32(hb&0x3F)<<8 | uint32(lb)
		return hi<<16 | uint32(binary.LittleEndian.Uint16(lw[:])), nil
	}
}
