package graph

// This file will not be regenerated automatically.
//
// It serves as dependency injection for your app, add any dependencies you require here.

//go:generate go run github.com/99designs/gqlgen generate

import (
	"context"
	"errors"

	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
	"eats-backend/internal/guard"
)

// UserService is the account surface the resolvers need. *users.Service
// satisfies it; tests inject lightweight mocks.
type UserService interface {
	CreateAccount(ctx context.Context, in users.CreateAccountInput) users.Output
	Login(ctx context.Context, in users.LoginInput) users.LoginOutput
	UserProfile(ctx context.Context, id int64) users.UserProfileOutput
	EditProfile(ctx context.Context, userID int64, in users.EditProfileInput) users.Output
	VerifyEmail(ctx context.Context, code string) users.Output
}

// RestaurantService is the catalogue surface the resolvers need.
// *restaurants.Service satisfies it.
type RestaurantService interface {
	CreateRestaurant(ctx context.Context, ownerID int64, in restaurants.CreateRestaurantInput) restaurants.CreateRestaurantOutput
	EditRestaurant(ctx context.Context, ownerID int64, in restaurants.EditRestaurantInput) restaurants.Output
	DeleteRestaurant(ctx context.Context, ownerID, restaurantID int64) restaurants.Output
	AllCategories(ctx context.Context) restaurants.AllCategoriesOutput
	FindCategoryBySlug(ctx context.Context, slug string, page int) restaurants.CategoryOutput
	AllRestaurants(ctx context.Context, page int) restaurants.RestaurantsOutput
	FindRestaurantByID(ctx context.Context, id int64) restaurants.RestaurantOutput
	SearchRestaurantByName(ctx context.Context, query string, page int) restaurants.RestaurantsOutput
	CreateDish(ctx context.Context, ownerID int64, in restaurants.CreateDishInput) restaurants.CreateDishOutput
	EditDish(ctx context.Context, ownerID int64, in restaurants.EditDishInput) restaurants.Output
	DeleteDish(ctx context.Context, ownerID, dishID int64) restaurants.Output
}

// Resolver is the root dependency-injection struct wired in cmd/api/main.go.
type Resolver struct {
	Users   UserService
	Catalog RestaurantService
}

// ErrUnauthenticated is returned by resolvers of protected operations when
// the context carries no resolved user.
var ErrUnauthenticated = errors.New("unauthenticated")

// currentUser returns the user the guard resolved for this operation.
func currentUser(ctx context.Context) (*users.User, error) {
	u := guard.UserFromContext(ctx)
	if u == nil {
		return nil, ErrUnauthenticated
	}
	return u, nil
}

// stringPtrOrNil converts an empty string to nil and a non-empty string to a
// pointer. Used when mapping service layer strings to nullable GraphQL fields.
func stringPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func pageOrFirst(p *int32) int {
	if p == nil {
		return 1
	}
	return int(*p)
}
