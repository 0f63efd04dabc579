package clues

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/mcoot/drophunt/internal/model"
)

// Candidate clue identifiers. They are stable per clue kind so a clue can be
// recognized across sessions; filler clues start after the last of them.
const (
	idCategory = iota + 1
	idBrand
	idPrice
	idLocation
	idRating
	idBlackOwned
	idEcoFriendly
	idStyle
	idFavoriteCategory

	firstFillerID
)

var (
	nonPriceChars = regexp.MustCompile(`[^0-9.]`)
	numericPrefix = regexp.MustCompile(`^[0-9]*(\.[0-9]*)?`)
)

// Candidates returns every clue that can be said about product, in a fixed
// order. profile may be nil.
func Candidates(product *model.Product, profile *model.UserProfile) []model.Clue {
	var clues []model.Clue

	if product.Category != "" {
		clues = append(clues, model.Clue{
			ID:         idCategory,
			Text:       fmt.Sprintf("This item belongs to the %s category", product.Category),
			Type:       model.ClueTypeCategory,
			Difficulty: model.DifficultyEasy,
		})
	}

	// An empty vendor has no first letter, so there is no brand clue to give.
	if product.Vendor != "" {
		first, _ := utf8.DecodeRuneInString(product.Vendor)
		clues = append(clues, model.Clue{
			ID:         idBrand,
			Text:       fmt.Sprintf("Made by a brand that starts with \"%s\" and has %d letters", string(first), utf8.RuneCountInString(product.Vendor)),
			Type:       model.ClueTypeBrand,
			Difficulty: model.DifficultyMedium,
		})
	}

	clues = append(clues, model.Clue{
		ID:         idPrice,
		Text:       fmt.Sprintf("Priced in the %s range", PriceRange(ParsePrice(product.Price))),
		Type:       model.ClueTypePrice,
		Difficulty: model.DifficultyEasy,
	})

	if product.Location != "" {
		clues = append(clues, model.Clue{
			ID:         idLocation,
			Text:       fmt.Sprintf("This brand hails from %s", product.Location),
			Type:       model.ClueTypeLocation,
			Difficulty: model.DifficultyMedium,
		})
	}

	// A zero rating means "unrated" in catalog data.
	if product.Rating != nil && *product.Rating != 0 {
		clues = append(clues, model.Clue{
			ID:         idRating,
			Text:       fmt.Sprintf("Customers rate this %s", RatingDescription(*product.Rating)),
			Type:       model.ClueTypeRating,
			Difficulty: model.DifficultyEasy,
		})
	}

	if product.IsBlackOwned {
		clues = append(clues, model.Clue{
			ID:         idBlackOwned,
			Text:       "Supporting a Black-owned business",
			Type:       model.ClueTypeFeature,
			Difficulty: model.DifficultyMedium,
		})
	}

	if product.IsEcoFriendly {
		clues = append(clues, model.Clue{
			ID:         idEcoFriendly,
			Text:       "An eco-conscious choice for sustainable shoppers",
			Type:       model.ClueTypeFeature,
			Difficulty: model.DifficultyMedium,
		})
	}

	if len(product.Tags) > 0 {
		clues = append(clues, model.Clue{
			ID:         idStyle,
			Text:       fmt.Sprintf("Perfect for %s enthusiasts", product.Tags[0]),
			Type:       model.ClueTypeStyle,
			Difficulty: model.DifficultyHard,
		})
	}

	if profile.HasFavoriteCategory(product.Category) {
		clues = append(clues, model.Clue{
			ID:         idFavoriteCategory,
			Text:       "Something from one of your favorite categories!",
			Type:       model.ClueTypeCategory,
			Difficulty: model.DifficultyEasy,
		})
	}

	return clues
}

// ParsePrice extracts the numeric value of a currency string such as
// "$1,299.00". Everything but digits and dots is dropped and the longest
// numeric prefix is parsed. It returns NaN when no number is present.
func ParsePrice(price string) float64 {
	digits := numericPrefix.FindString(nonPriceChars.ReplaceAllString(price, ""))
	if digits == "" || digits == "." {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// PriceRange returns the price band description for price.
// NaN falls through every band and reads as luxury.
func PriceRange(price float64) string {
	switch {
	case price < 25:
		return "budget-friendly ($0-$25)"
	case price < 50:
		return "affordable ($25-$50)"
	case price < 100:
		return "mid-range ($50-$100)"
	case price < 200:
		return "premium ($100-$200)"
	default:
		return "luxury ($200+)"
	}
}

// RatingDescription returns the qualitative band for a star rating
func RatingDescription(rating float64) string {
	switch {
	case rating >= 4.8:
		return "as exceptional (4.8+ stars)"
	case rating >= 4.5:
		return "highly (4.5+ stars)"
	case rating >= 4.0:
		return "well (4.0+ stars)"
	case rating >= 3.5:
		return "positively (3.5+ stars)"
	default:
		return "with mixed reviews"
	}
}
