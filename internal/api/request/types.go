package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name" validate:"max=50"`
}

// GuessRequest is the request body for guessing today's product
type GuessRequest struct {
	ProductID string `json:"product_id" validate:"required,max=512"`
}

// AmendProductRequest is the request body for patching today's product
type AmendProductRequest struct {
	Image       *string `json:"image,omitempty" validate:"omitempty,url"`
	CanonicalID *string `json:"canonical_id,omitempty" validate:"omitempty,max=512"`
}

// ProfileRequest is the request body for setting a personalization profile
type ProfileRequest struct {
	FavoriteCategories []string `json:"favorite_categories,omitempty"`
	PurchaseHistory    []string `json:"purchase_history,omitempty"`
	PreferredBrands    []string `json:"preferred_brands,omitempty"`
	IsEcoConscious     bool     `json:"is_eco_conscious,omitempty"`
	StylePreference    string   `json:"style_preference,omitempty"`
}

// Decode reads a JSON body into v and validates it. An empty body decodes as
// the zero value.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return errors.New("invalid request body")
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
