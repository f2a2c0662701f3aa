// Package gameid generates round identifiers: UUIDv7 values encoded as
// 26-character Crockford base32 strings, so IDs sort by creation time.
package gameid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded ID
const Length = 26

// RandSource supplies the random bits of an ID. *rand.Rand from math/rand/v2
// satisfies it.
type RandSource interface {
	Uint64() uint64
}

// Generator handles round ID generation with configurable randomness and time
type Generator struct {
	randSource RandSource
	clock      quartz.Clock
}

// NewGenerator creates a generator. A nil RandSource uses crypto/rand and a nil
// clock uses the real clock.
func NewGenerator(randSource RandSource, clock quartz.Clock) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{randSource: randSource, clock: clock}
}

// Generate creates a new ID from crypto randomness and the current time
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate creates a new ID using the generator's sources
func (g *Generator) Generate() string {
	return encodeBase32(g.generateUUIDv7())
}

// generateUUIDv7 lays out 48 bits of unix milliseconds, the version nibble,
// the variant bits and random data.
func (g *Generator) generateUUIDv7() [16]byte {
	var uuid [16]byte

	now := uint64(g.clock.Now().UnixMilli())
	for i := 0; i < 6; i++ {
		uuid[i] = byte(now >> (40 - 8*i))
	}

	if g.randSource != nil {
		var buf [16]byte
		binary.BigEndian.PutUint64(buf[:8], g.randSource.Uint64())
		binary.BigEndian.PutUint64(buf[8:], g.randSource.Uint64())
		copy(uuid[6:], buf[:10])
	} else if _, err := rand.Read(uuid[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return uuid
}

// encodeBase32 encodes 128 bits as 26 characters. The first character holds
// only the top 3 bits, the remaining 25 characters 5 bits each.
func encodeBase32(data [16]byte) string {
	hi := binary.BigEndian.Uint64(data[:8])
	lo := binary.BigEndian.Uint64(data[8:])

	result := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		result[i] = alphabet[lo&0x1f]
		lo = (lo >> 5) | (hi << 59)
		hi >>= 5
	}
	return string(result)
}

// Validate checks if an ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("round ID must be exactly %d characters, got %d", Length, len(id))
	}

	if id[0] > '7' {
		return fmt.Errorf("round ID first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}

	return nil
}
