package restaurants

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Repository is the catalogue store. Single-row lookups return ErrNotFound
// when nothing matches; listings return the page and the unpaged total.
type Repository interface {
	CreateRestaurant(ctx context.Context, r *Restaurant) error
	UpdateRestaurant(ctx context.Context, r *Restaurant) error
	DeleteRestaurant(ctx context.Context, id int64) error
	FindRestaurant(ctx context.Context, id int64, withMenu bool) (*Restaurant, error)
	ListRestaurants(ctx context.Context, page Page) ([]Restaurant, int64, error)
	SearchRestaurants(ctx context.Context, query string, page Page) ([]Restaurant, int64, error)
	ListRestaurantsByCategory(ctx context.Context, categoryID int64, page Page) ([]Restaurant, int64, error)
	CountRestaurantsByCategory(ctx context.Context, categoryID int64) (int64, error)

	FindCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	ListCategories(ctx context.Context) ([]Category, error)

	CreateDish(ctx context.Context, d *Dish) error
	UpdateDish(ctx context.Context, d *Dish) error
	DeleteDish(ctx context.Context, id int64) error
	FindDish(ctx context.Context, id int64) (*Dish, error)
}
