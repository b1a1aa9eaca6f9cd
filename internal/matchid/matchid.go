// Package matchid generates short sortable identifiers for matches, used to
// correlate log lines from one game.
package matchid

import (
	"encoding/base32"
	"encoding/binary"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// RandSource interface for dependency injection of randomness.
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	Uint64() uint64
}

// Generator handles match ID generation with configurable randomness
type Generator struct {
	randSource RandSource
}

// NewGenerator creates a new generator with optional RandSource
func NewGenerator(randSource RandSource) *Generator {
	return &Generator{randSource: randSource}
}

// Generate creates a new match ID from a UUIDv7
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new match ID. Without a RandSource it uses a
// time-ordered UUIDv7; with one it derives a random UUID from the source
// so seeded runs get repeatable IDs.
func (g *Generator) Generate() string {
	var id uuid.UUID
	var err error
	if g.randSource != nil {
		id, err = uuid.NewRandomFromReader(sourceReader{g.randSource})
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		panic("failed to generate match ID: " + err.Error())
	}
	return encode(id)
}

// encode writes the 128 bit UUID as 26 base32 characters. The value is
// shifted right by two bits so the first character is always 0-7.
func encode(id uuid.UUID) string {
	var buf [17]byte
	for i := 0; i < len(id); i++ {
		buf[i] |= id[i] >> 2
		buf[i+1] = id[i] << 6
	}
	return encoding.EncodeToString(buf[:])[:26]
}

// sourceReader exposes a RandSource as an io.Reader for uuid
type sourceReader struct {
	src RandSource
}

func (r sourceReader) Read(p []byte) (int, error) {
	var word [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(word[:], r.src.Uint64())
		copy(p[i:], word[:])
	}
	return len(p), nil
}
