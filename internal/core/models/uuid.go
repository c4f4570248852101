package models

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// UUID is the opaque 64-bit identity of an engine-side entity.
// The zero value means "no entity".
type UUID uint64

// InvalidUUID is the null identity.
const InvalidUUID UUID = 0

// NewUUID returns a fresh random identity. A random v4 UUID is folded to 64 bits
// with xxhash; the zero result is rejected so the identity is never null.
func NewUUID() UUID {
	for {
		raw := uuid.New()
		if id := UUID(xxhash.Sum64(raw[:])); id != InvalidUUID {
			return id
		}
	}
}

// IsValid reports whether id is non-null. It says nothing about liveness.
func (id UUID) IsValid() bool { return id != InvalidUUID }

func (id UUID) String() string { return strconv.FormatUint(uint64(id), 10) }

// ParseUUID parses the decimal form produced by String.
func ParseUUID(s string) (UUID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return InvalidUUID, err
	}
	return UUID(v), nil
}

// MarshalText encodes the identity as a decimal string so JSON consumers
// without 64-bit integers keep full precision.
func (id UUID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *UUID) UnmarshalText(text []byte) error {
	parsed, err := ParseUUID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
