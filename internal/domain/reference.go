package domain

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewOrderRef builds a customer-facing reference like CW-2026-7KQ2M9.
// References are display labels; collisions are tolerated and identity
// stays with the numeric id.
func NewOrderRef(now time.Time) string {
	return fmt.Sprintf("CW-%d-%s", now.Year(), gonanoid.MustGenerate(refAlphabet, 6))
}
