// Package catalog supplies the products a daily puzzle can be built around.
//
// Providers return loose CatalogRecords; ToProduct converts one record into a
// Product by applying defaults, and Select picks the day's product from the
// converted list using the day seed.
package catalog

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/blake2b"

	"github.com/mcoot/drophunt/internal/model"
)

// Defaults applied to records missing the corresponding field
const (
	DefaultPrice  = "$0.00"
	DefaultVendor = "Unknown Brand"
	DefaultTitle  = "Mystery Product"
	DefaultImage  = "https://via.placeholder.com/400x400/4F46E5/ffffff?text=Mystery+Product"
)

// Provider returns the current catalog contents
type Provider interface {
	Records(ctx context.Context) ([]model.CatalogRecord, error)
}

var validate = validator.New()

// Validate checks a record against its struct tags. Errors wrap
// model.ErrInvalidRecord.
func Validate(record model.CatalogRecord) error {
	if err := validate.Struct(record); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", model.ErrInvalidRecord, strings.Join(fields, "; "))
		}
		return fmt.Errorf("%w: %v", model.ErrInvalidRecord, err)
	}
	return nil
}

// ToProduct converts a catalog record into a Product, filling defaults for
// missing title, vendor, price and image. The first priced variant supplies the
// price and the first extra image supplies the image when the record has none.
func ToProduct(record model.CatalogRecord) *model.Product {
	p := &model.Product{
		ID:          model.ProductID(record.ID),
		CanonicalID: model.ProductID(record.CanonicalID),
		Title:       firstNonEmpty(record.Title, DefaultTitle),
		Vendor:      firstNonEmpty(record.Vendor, DefaultVendor),
		Description: record.Description,
		Category:    record.ProductType,
		Location:    record.Location,
	}

	price := record.Price
	for _, v := range record.Variants {
		if price != "" {
			break
		}
		price = v.Price
	}
	p.Price = firstNonEmpty(price, DefaultPrice)

	image := record.Image
	if image == "" && len(record.Images) > 0 {
		image = record.Images[0]
	}
	p.Image = firstNonEmpty(image, DefaultImage)

	if len(record.Tags) > 0 {
		p.Tags = append([]string(nil), record.Tags...)
	}
	if record.Rating != nil {
		r := *record.Rating
		p.Rating = &r
	}
	if record.BlackOwned != nil {
		p.IsBlackOwned = *record.BlackOwned
	}
	if record.EcoFriendly != nil {
		p.IsEcoFriendly = *record.EcoFriendly
	}

	return p
}

// Products validates and converts records, skipping invalid ones
func Products(records []model.CatalogRecord, logger *slog.Logger) []*model.Product {
	products := make([]*model.Product, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		if err := Validate(r); err != nil {
			logger.Warn("skipping catalog record",
				slog.Int("index", i),
				slog.String("id", r.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		if seen[r.ID] {
			logger.Warn("skipping duplicate catalog record", slog.String("id", r.ID))
			continue
		}
		seen[r.ID] = true
		products = append(products, ToProduct(r))
	}
	return products
}

// Select picks the product for seed. The same seed and product list always
// yield the same product.
func Select(seed string, products []*model.Product) (*model.Product, error) {
	if len(products) == 0 {
		return nil, model.ErrNoProductAvailable
	}
	return products[Index(seed, len(products))], nil
}

// Index maps seed onto [0, n)
func Index(seed string, n int) int {
	if n <= 0 {
		return 0
	}
	sum := blake2b.Sum256([]byte(seed))
	return int(binary.BigEndian.Uint64(sum[0:8]) % uint64(n))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
