package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator implements usecase.IDGenerator with lexicographically
// sortable ULIDs. Sorted IDs keep the transfer lock order stable.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate returns a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
