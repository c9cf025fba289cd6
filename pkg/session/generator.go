package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// DefaultMaxGenerateAttempts bounds the retries of Generator.Generate.
const DefaultMaxGenerateAttempts = 64

// IDSource produces candidate session ids from a secure random source.
type IDSource func() (string, error)

// RandomSource returns an IDSource producing n random bytes, URL-safe base64 encoded.
func RandomSource(n int) IDSource {
	return func() (string, error) {
		b := make([]byte, n)
		if _, err := rand.Read(b); err != nil {
			return "", errors.Join(ErrIDGeneration, err)
		}
		return base64.RawURLEncoding.EncodeToString(b), nil
	}
}

// HexSource returns an IDSource producing n random bytes as lowercase hex.
func HexSource(n int) IDSource {
	return func() (string, error) {
		b := make([]byte, n)
		if _, err := rand.Read(b); err != nil {
			return "", errors.Join(ErrIDGeneration, err)
		}
		return hex.EncodeToString(b), nil
	}
}

// UUIDSource returns an IDSource producing random (version 4) UUIDs.
func UUIDSource() IDSource {
	return func() (string, error) {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", errors.Join(ErrIDGeneration, err)
		}
		return id.String(), nil
	}
}

// Generator produces ids that match no record of a collection, expired
// records included. The check is best effort: callers serialize it with the
// engine lock, the collection does not enforce it.
type Generator struct {
	coll        Collection
	source      IDSource
	maxAttempts int
}

// NewGenerator creates a Generator over coll. A nil source defaults to 32
// random bytes.
func NewGenerator(coll Collection, source IDSource) *Generator {
	if source == nil {
		source = RandomSource(32)
	}
	return &Generator{
		coll:        coll,
		source:      source,
		maxAttempts: DefaultMaxGenerateAttempts,
	}
}

// Generate returns an id no record currently uses. Store errors are returned
// unchanged; a failing source or an exhausted attempt budget yields
// ErrIDGeneration.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	for range g.maxAttempts {
		id, err := g.source()
		if err != nil {
			return "", err
		}
		if id == "" {
			continue
		}

		_, err = g.coll.FindOne(ctx, id)
		switch {
		case errors.Is(err, ErrRecordNotFound):
			return id, nil
		case err != nil:
			return "", err
		}
	}
	return "", fmt.Errorf("%w: no unused id after %d attempts", ErrIDGeneration, g.maxAttempts)
}
