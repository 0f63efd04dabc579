package puzzle

import (
	"fmt"
	"strings"

	"github.com/mcoot/drophunt/internal/model"
)

// MatchMode selects how a guessed identifier is compared to the product
type MatchMode string

const (
	// MatchLoose also accepts any guess containing the last "/" segment of the
	// product ID, tolerating catalogs that format identifiers differently
	// (for example "gid://shop/Product/42" against "42"). Any guess containing
	// that substring is accepted.
	MatchLoose MatchMode = "loose"
	// MatchExact accepts only the product ID or its canonical ID
	MatchExact MatchMode = "exact"
)

// ParseMatchMode parses a configured match mode. Empty means loose.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchLoose:
		return MatchLoose, nil
	case MatchExact:
		return MatchExact, nil
	default:
		return "", fmt.Errorf("unknown match mode %q", s)
	}
}

// Matches reports whether guess identifies product under mode
func Matches(product *model.Product, guess model.ProductID, mode MatchMode) bool {
	if product == nil || guess == "" {
		return false
	}
	if guess == product.ID {
		return true
	}
	if product.CanonicalID != "" && guess == product.CanonicalID {
		return true
	}
	if mode == MatchExact {
		return false
	}

	id := string(product.ID)
	segment := id[strings.LastIndex(id, "/")+1:]
	return segment != "" && strings.Contains(string(guess), segment)
}
