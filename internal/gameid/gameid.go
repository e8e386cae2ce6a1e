// Package gameid generates identifiers for recorded games.
//
// An ID is a UUIDv7 encoded as 26 characters of lowercase Crockford base32,
// so IDs sort by creation time.
package gameid

import (
	"encoding/base32"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Crockford's base32 alphabet, lowercased
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded ID.
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator creates IDs from a configurable random source
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator reading randomness from r. A nil reader
// uses crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate creates a new game ID, panicking if randomness is unavailable
func Generate() string {
	id, err := NewGenerator(nil).New()
	if err != nil {
		panic("failed to generate game id: " + err.Error())
	}
	return id
}

// New creates a new game ID
func (g *Generator) New() (string, error) {
	var (
		u   uuid.UUID
		err error
	)
	if g.rand != nil {
		u, err = uuid.NewV7FromReader(g.rand)
	} else {
		u, err = uuid.NewV7()
	}
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return encoding.EncodeToString(u[:]), nil
}

// Parse decodes a game ID back into its UUID
func Parse(id string) (uuid.UUID, error) {
	if err := Validate(id); err != nil {
		return uuid.Nil, err
	}
	raw, err := encoding.DecodeString(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("decode game ID: %w", err)
	}
	return uuid.FromBytes(raw)
}

// Validate checks that id is 26 characters of the base32 alphabet
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	for i := 0; i < len(id); i++ {
		if indexOf(id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	// The final character carries 3 bits; the 2 padding bits must be zero.
	if indexOf(id[Length-1])&0x3 != 0 {
		return fmt.Errorf("invalid trailing character %c", id[Length-1])
	}
	return nil
}

func indexOf(c byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return i
		}
	}
	return -1
}
