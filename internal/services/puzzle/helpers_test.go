package puzzle

import (
	"context"

	"github.com/mcoot/drophunt/internal/model"
	"github.com/mcoot/drophunt/internal/storage/memory"
)

// faultyKV wraps memory storage and fails selected operations
type faultyKV struct {
	*memory.Storage
	getErr    error
	setErr    error
	removeErr error
}

func newFaultyKV() *faultyKV {
	return &faultyKV{Storage: memory.New()}
}

func (f *faultyKV) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.Storage.Get(ctx, key)
}

func (f *faultyKV) Set(ctx context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Storage.Set(ctx, key, value)
}

func (f *faultyKV) Remove(ctx context.Context, key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	return f.Storage.Remove(ctx, key)
}

func ptr[T any](v T) *T {
	return &v
}

func toteBag() *model.Product {
	return &model.Product{
		ID:            "prod_demo",
		Title:         "Organic Cotton Tote Bag",
		Vendor:        "EcoStyle Co",
		Image:         "https://via.placeholder.com/400x400/4F46E5/ffffff?text=Mystery+Product",
		Price:         "$32.00",
		Category:      "Accessories",
		Tags:          []string{"sustainable", "everyday", "minimalist"},
		Rating:        ptr(4.8),
		IsEcoFriendly: true,
		Location:      "Los Angeles, CA",
	}
}
