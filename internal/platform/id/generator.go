package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator issues time-ordered UUIDv7 strings, so ids sort by creation.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	value, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return value.String(), nil
}

// PrefixedGenerator tags ids from next with a short resource prefix, e.g. "team_".
type PrefixedGenerator struct {
	prefix string
	next   Generator
}

func NewPrefixedGenerator(prefix string, next Generator) *PrefixedGenerator {
	if next == nil {
		next = NewRandomGenerator()
	}
	return &PrefixedGenerator{prefix: prefix, next: next}
}

func (g *PrefixedGenerator) NewID() (string, error) {
	value, err := g.next.NewID()
	if err != nil {
		return "", err
	}

	return g.prefix + value, nil
}
