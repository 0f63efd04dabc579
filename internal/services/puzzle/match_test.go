package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/drophunt/internal/model"
)

func TestMatches(t *testing.T) {
	product := &model.Product{ID: "gid://shop/Product/42", CanonicalID: "sku-42"}

	tests := []struct {
		name  string
		guess model.ProductID
		mode  MatchMode
		want  bool
	}{
		{"primary id", "gid://shop/Product/42", MatchExact, true},
		{"canonical id", "sku-42", MatchExact, true},
		{"trailing segment loose", "42", MatchLoose, true},
		{"containment loose", "other/420", MatchLoose, true},
		{"trailing segment exact", "42", MatchExact, false},
		{"unrelated", "prod_2", MatchLoose, false},
		{"empty guess", "", MatchLoose, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(product, tt.guess, tt.mode))
		})
	}
}

func TestMatchesEmptyTrailingSegmentNeverMatches(t *testing.T) {
	product := &model.Product{ID: "catalog/items/"}

	assert.False(t, Matches(product, "anything", MatchLoose))
	assert.True(t, Matches(product, "catalog/items/", MatchLoose))
}

func TestMatchesNilProduct(t *testing.T) {
	assert.False(t, Matches(nil, "prod_demo", MatchLoose))
}

func TestParseMatchMode(t *testing.T) {
	mode, err := ParseMatchMode("")
	assert.NoError(t, err)
	assert.Equal(t, MatchLoose, mode)

	mode, err = ParseMatchMode(" EXACT ")
	assert.NoError(t, err)
	assert.Equal(t, MatchExact, mode)

	_, err = ParseMatchMode("fuzzy")
	assert.Error(t, err)
}
