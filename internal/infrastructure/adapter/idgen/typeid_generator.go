// Package idgen issues K-sortable, prefix-qualified identifiers such as
// "acct_01h2xcejqtf2nbrexx3vqjhp41".
package idgen

import (
	"fmt"

	"go.jetify.com/typeid/v2"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
)

// TypeIDGenerator implements core.IDGenerator with UUIDv7-backed TypeIDs
type TypeIDGenerator struct{}

// NewTypeIDGenerator creates a new generator
func NewTypeIDGenerator() core.IDGenerator {
	return &TypeIDGenerator{}
}

// NewID generates an id with the given prefix.
// It panics on an invalid prefix, which is a programming error.
func (g *TypeIDGenerator) NewID(prefix string) string {
	tid, err := typeid.Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("idgen: invalid prefix %q: %v", prefix, err))
	}
	return tid.String()
}

// HasPrefix reports whether s is a well-formed id carrying the expected prefix
func HasPrefix(s, expected string) bool {
	tid, err := typeid.Parse(s)
	if err != nil {
		return false
	}
	return tid.Prefix() == expected
}
