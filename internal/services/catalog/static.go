package catalog

import (
	"context"

	"github.com/mcoot/drophunt/internal/model"
)

// Static is a fixed, in-memory Provider
type Static struct {
	records []model.CatalogRecord
}

var _ Provider = (*Static)(nil)

// NewStatic creates a Provider that always returns records
func NewStatic(records ...model.CatalogRecord) *Static {
	return &Static{records: records}
}

// Records returns a copy of the configured records
func (s *Static) Records(ctx context.Context) ([]model.CatalogRecord, error) {
	return append([]model.CatalogRecord(nil), s.records...), nil
}

func boolPtr(b bool) *bool {
	return &b
}

func floatPtr(f float64) *float64 {
	return &f
}

// Demo returns the built-in demo catalog
func Demo() *Static {
	return NewStatic(
		model.CatalogRecord{
			ID:          "prod_demo",
			Title:       "Organic Cotton Tote Bag",
			Vendor:      "EcoStyle Co",
			Price:       "$32.00",
			Image:       "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=400&h=400&fit=crop",
			Description: "A durable tote made from certified organic cotton.",
			ProductType: "Accessories",
			Tags:        []string{"sustainable", "everyday", "minimalist"},
			Rating:      floatPtr(4.8),
			BlackOwned:  boolPtr(false),
			EcoFriendly: boolPtr(true),
			Location:    "Los Angeles, CA",
		},
		model.CatalogRecord{
			ID:          "prod_2",
			Title:       "Wireless Earbuds Pro",
			Vendor:      "TechGear",
			Price:       "$129.00",
			Image:       "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=400&h=400&fit=crop",
			ProductType: "Electronics",
			Tags:        []string{"audio", "wireless"},
			Rating:      floatPtr(4.5),
			Location:    "Austin, TX",
		},
		model.CatalogRecord{
			ID:          "prod_3",
			Title:       "Bamboo Water Bottle",
			Vendor:      "GreenLife",
			Price:       "$24.00",
			Image:       "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=400&h=400&fit=crop",
			ProductType: "Kitchen",
			Tags:        []string{"outdoor", "sustainable"},
			Rating:      floatPtr(4.2),
			EcoFriendly: boolPtr(true),
			Location:    "Portland, OR",
		},
		model.CatalogRecord{
			ID:          "prod_4",
			Title:       "Leather Wallet",
			Vendor:      "Craftsman Co",
			Price:       "$65.00",
			Image:       "https://images.unsplash.com/photo-1627123424574-724758594e93?w=400&h=400&fit=crop",
			ProductType: "Accessories",
			Tags:        []string{"classic", "leather"},
			Rating:      floatPtr(4.7),
			BlackOwned:  boolPtr(true),
			Location:    "Atlanta, GA",
		},
		model.CatalogRecord{
			ID:          "prod_5",
			Title:       "Ceramic Coffee Mug",
			Vendor:      "HomeStyle",
			Price:       "$18.50",
			Image:       "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?w=400&h=400&fit=crop",
			ProductType: "Kitchen",
			Tags:        []string{"coffee", "handmade"},
			Rating:      floatPtr(3.9),
			Location:    "Asheville, NC",
		},
		model.CatalogRecord{
			ID:          "prod_6",
			Title:       "Yoga Mat Premium",
			Vendor:      "FitZone",
			Price:       "$79.99",
			Image:       "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=400&h=400&fit=crop",
			ProductType: "Fitness",
			Tags:        []string{"yoga", "athletic"},
			Rating:      floatPtr(4.6),
			Location:    "Boulder, CO",
		},
	)
}
