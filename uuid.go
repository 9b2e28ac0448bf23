package vpack

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
)

const UUIDSize = 16

// UUID is a 16-byte array, trivially copyable and therefore usable as a
// native pass-through field's Go type: a schema field declared
// native<UUID> reads and writes one through NativeRef[UUID]/
// NativeConstRef[UUID] with no per-byte walk.
type UUID [UUIDSize]byte

// GenerateUUID fills a UUID with bytes from the OS's cryptographically
// secure random source.
func GenerateUUID() UUID {
	var id UUID
	rand.Read(id[:])
	return id
}

var rawURLEnc = base64.RawURLEncoding

// String returns a url-safe base64 representation of the UUID bytes.
func (u UUID) String() string {
	return rawURLEnc.EncodeToString(u[:])
}

var ErrInvalidUUIDSize = errors.New("vpack: invalid UUID size")

// FromString parses s, written by String, back into u.
func (u *UUID) FromString(s string) error {
	buf, err := rawURLEnc.DecodeString(s)
	if err != nil {
		return err
	}
	if len(buf) != UUIDSize {
		return ErrInvalidUUIDSize
	}
	copy((*u)[:], buf)
	return nil
}

// MarshalJSON implements json.Marshaler. Deliberately value-receiver, not
// pointer: UnmarshalJSON must be pointer-based so it can mutate u in place,
// but marshaling a non-pointer UUID field must also work.
func (u UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(rawURLEnc.EncodeToString(u[:]))
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *UUID) UnmarshalJSON(raw []byte) error {
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	return u.FromString(s)
}
