package model

// StylePreference is a user's preferred shopping style
type StylePreference string

const (
	StyleCasual     StylePreference = "casual"
	StyleFormal     StylePreference = "formal"
	StyleStreetwear StylePreference = "streetwear"
	StyleAthletic   StylePreference = "athletic"
	StyleLuxury     StylePreference = "luxury"
)

// UserProfile is optional, externally supplied input used to personalize
// clues. It is never persisted by the puzzle engine.
type UserProfile struct {
	FavoriteCategories []string        `json:"favorite_categories,omitempty" validate:"omitempty,max=20,dive,max=100"`
	PurchaseHistory    []string        `json:"purchase_history,omitempty"`
	PreferredBrands    []string        `json:"preferred_brands,omitempty"`
	IsEcoConscious     bool            `json:"is_eco_conscious,omitempty"`
	StylePreference    StylePreference `json:"style_preference,omitempty" validate:"omitempty,oneof=casual formal streetwear athletic luxury"`
}

// HasFavoriteCategory reports whether category is one of the profile's favorites
func (p *UserProfile) HasFavoriteCategory(category string) bool {
	if p == nil || category == "" {
		return false
	}
	for _, c := range p.FavoriteCategories {
		if c == category {
			return true
		}
	}
	return false
}
