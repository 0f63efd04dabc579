package model

// ProductID identifies a product in the external catalog
type ProductID string

// Product is the record a daily puzzle is built around.
//
// A product is immutable once selected for the day, with the exception of
// Image and CanonicalID which may be amended after a correct guess to
// reconcile a placeholder with the resolved catalog entry.
type Product struct {
	ID          ProductID `json:"id"`
	CanonicalID ProductID `json:"canonicalId,omitempty"`
	Title       string    `json:"title"`
	Vendor      string    `json:"vendor"`
	Image       string    `json:"image"`
	Price       string    `json:"price"`

	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	IsBlackOwned  bool     `json:"isBlackOwned,omitempty"`
	IsEcoFriendly bool     `json:"isEcoFriendly,omitempty"`
	Location      string   `json:"location,omitempty"`
}

// Clone returns a deep copy of the product
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	if p.Tags != nil {
		c.Tags = append([]string(nil), p.Tags...)
	}
	if p.Rating != nil {
		r := *p.Rating
		c.Rating = &r
	}
	return &c
}

// ProductPatch holds the fields of a Product that may change after selection.
// Nil fields are left untouched.
type ProductPatch struct {
	Image       *string
	CanonicalID *ProductID
}

// CatalogRecord is a product-like record as supplied by a catalog provider.
// Every field is optional; defaults are applied when converting to a Product.
type CatalogRecord struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	CanonicalID string   `json:"canonicalId,omitempty" yaml:"canonical_id,omitempty"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Vendor      string   `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Price       string   `json:"price,omitempty" yaml:"price,omitempty"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty" validate:"omitempty,url"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	ProductType string   `json:"productType,omitempty" yaml:"product_type,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Rating      *float64 `json:"rating,omitempty" yaml:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	BlackOwned  *bool    `json:"blackOwned,omitempty" yaml:"black_owned,omitempty"`
	EcoFriendly *bool    `json:"ecoFriendly,omitempty" yaml:"eco_friendly,omitempty"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`

	// Variants carries per-variant prices; the first priced variant is used
	// when Price is empty.
	Variants []CatalogVariant `json:"variants,omitempty" yaml:"variants,omitempty"`
	// Images carries additional image URLs; the first is used when Image is empty.
	Images []string `json:"images,omitempty" yaml:"images,omitempty"`
}

// CatalogVariant is a purchasable variant of a catalog record
type CatalogVariant struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Price string `json:"price,omitempty" yaml:"price,omitempty"`
}
