package orderref

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Prefix marks customer-facing laundry order references.
const Prefix = "ML"

// Generator produces order references. References must be unique with
// overwhelming probability; the store still treats a duplicate insert as
// recoverable and asks for a fresh reference.
type Generator interface {
	NextReference() string
}

// UUIDGenerator derives references from random v4 UUIDs: the prefix plus
// 12 uppercase hex characters (48 random bits), short enough to read out
// over the phone and far too wide to leak order volume.
type UUIDGenerator struct{}

func NewGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NextReference() string {
	u := uuid.New()
	return Prefix + strings.ToUpper(hex.EncodeToString(u[:6]))
}
