package restaurants

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultPageSize = 25

const (
	msgInvalidInput       = "Invalid input"
	msgRestaurantNotFound = "Restaurant not found"
	msgNotOwner           = "You can't do that on a restaurant you don't own"
	msgCreateRestaurant   = "Could not create restaurant"
	msgEditRestaurant     = "Could not edit restaurant"
	msgDeleteRestaurant   = "Could not delete restaurant"
	msgLoadCategories     = "Could not load categories"
	msgCategoryNotFound   = "Category not found"
	msgLoadCategory       = "Could not load category"
	msgLoadRestaurants    = "Could not load restaurants"
	msgLoadRestaurant     = "Could not find restaurant"
	msgSearchRestaurants  = "Could not search for restaurants"
	msgDishNotFound       = "Dish not found"
	msgCreateDish         = "Could not create dish"
	msgEditDish           = "Could not edit dish"
	msgDeleteDish         = "Could not delete dish"
)

type Service struct {
	repo     Repository
	pageSize int
	validate *validator.Validate
	lower    cases.Caser
	log      zerolog.Logger
}

// NewService returns the catalogue service. pageSize <= 0 selects
// DefaultPageSize.
func NewService(repo Repository, pageSize int, log zerolog.Logger) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		repo:     repo,
		pageSize: pageSize,
		validate: validator.New(),
		lower:    cases.Lower(language.Und),
		log:      log.With().Str("component", "restaurant-service").Logger(),
	}
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// CategorySlug normalises a free-form category name into its name and slug.
func (s *Service) CategorySlug(name string) (normalized, slug string) {
	normalized = s.lower.String(strings.Join(strings.Fields(name), " "))
	return normalized, strings.ReplaceAll(normalized, " ", "-")
}

// GetOrCreateCategory returns the category for name, creating it on first use.
func (s *Service) GetOrCreateCategory(ctx context.Context, name string) (*Category, error) {
	normalized, slug := s.CategorySlug(name)
	if slug == "" {
		return nil, errors.New("empty category name")
	}
	c, err := s.repo.FindCategoryBySlug(ctx, slug)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	c = &Category{Name: normalized, Slug: slug}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) CountRestaurants(ctx context.Context, c Category) (int64, error) {
	return s.repo.CountRestaurantsByCategory(ctx, c.ID)
}

func (s *Service) AllCategories(ctx context.Context) AllCategoriesOutput {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list categories")
		return AllCategoriesOutput{Output: fail(msgLoadCategories)}
	}
	for i := range categories {
		n, err := s.CountRestaurants(ctx, categories[i])
		if err != nil {
			s.log.Error().Err(err).Int64("category_id", categories[i].ID).Msg("count restaurants")
			return AllCategoriesOutput{Output: fail(msgLoadCategories)}
		}
		categories[i].RestaurantCount = n
	}
	return AllCategoriesOutput{Output: ok(), Categories: categories}
}

func (s *Service) FindCategoryBySlug(ctx context.Context, slug string, page int) CategoryOutput {
	c, err := s.repo.FindCategoryBySlug(ctx, slug)
	if errors.Is(err, ErrNotFound) {
		return CategoryOutput{Output: fail(msgCategoryNotFound)}
	}
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("find category")
		return CategoryOutput{Output: fail(msgLoadCategory)}
	}

	list, total, err := s.repo.ListRestaurantsByCategory(ctx, c.ID, s.page(page))
	if err != nil {
		s.log.Error().Err(err).Int64("category_id", c.ID).Msg("list category restaurants")
		return CategoryOutput{Output: fail(msgLoadCategory)}
	}
	c.RestaurantCount = total
	return CategoryOutput{
		Output:       ok(),
		Category:     c,
		Restaurants:  list,
		TotalPages:   totalPages(total, s.pageSize),
		TotalResults: total,
	}
}

// ---------------------------------------------------------------------------
// Restaurants
// ---------------------------------------------------------------------------

func (s *Service) CreateRestaurant(ctx context.Context, ownerID int64, in CreateRestaurantInput) CreateRestaurantOutput {
	if err := s.validate.Struct(in); err != nil {
		return CreateRestaurantOutput{Output: fail(msgInvalidInput)}
	}
	category, err := s.GetOrCreateCategory(ctx, in.CategoryName)
	if err != nil {
		s.log.Error().Err(err).Msg("resolve category")
		return CreateRestaurantOutput{Output: fail(msgCreateRestaurant)}
	}

	r := &Restaurant{
		Name:       strings.TrimSpace(in.Name),
		CoverImg:   in.CoverImg,
		Address:    in.Address,
		CategoryID: &category.ID,
		OwnerID:    ownerID,
	}
	if err := s.repo.CreateRestaurant(ctx, r); err != nil {
		s.log.Error().Err(err).Int64("owner_id", ownerID).Msg("create restaurant")
		return CreateRestaurantOutput{Output: fail(msgCreateRestaurant)}
	}
	return CreateRestaurantOutput{Output: ok(), RestaurantID: r.ID}
}

func (s *Service) EditRestaurant(ctx context.Context, ownerID int64, in EditRestaurantInput) Output {
	if err := s.validate.Struct(in); err != nil {
		return fail(msgInvalidInput)
	}
	r, out := s.ownedRestaurant(ctx, ownerID, in.RestaurantID, msgEditRestaurant)
	if r == nil {
		return out
	}

	if in.Name != nil {
		r.Name = strings.TrimSpace(*in.Name)
	}
	if in.CoverImg != nil {
		r.CoverImg = *in.CoverImg
	}
	if in.Address != nil {
		r.Address = *in.Address
	}
	if in.CategoryName != nil {
		category, err := s.GetOrCreateCategory(ctx, *in.CategoryName)
		if err != nil {
			s.log.Error().Err(err).Msg("resolve category")
			return fail(msgEditRestaurant)
		}
		r.CategoryID = &category.ID
		r.Category = nil
	}

	if err := s.repo.UpdateRestaurant(ctx, r); err != nil {
		s.log.Error().Err(err).Int64("restaurant_id", r.ID).Msg("update restaurant")
		return fail(msgEditRestaurant)
	}
	return ok()
}

func (s *Service) DeleteRestaurant(ctx context.Context, ownerID, restaurantID int64) Output {
	r, out := s.ownedRestaurant(ctx, ownerID, restaurantID, msgDeleteRestaurant)
	if r == nil {
		return out
	}
	if err := s.repo.DeleteRestaurant(ctx, r.ID); err != nil {
		s.log.Error().Err(err).Int64("restaurant_id", r.ID).Msg("delete restaurant")
		return fail(msgDeleteRestaurant)
	}
	return ok()
}

func (s *Service) AllRestaurants(ctx context.Context, page int) RestaurantsOutput {
	list, total, err := s.repo.ListRestaurants(ctx, s.page(page))
	if err != nil {
		s.log.Error().Err(err).Msg("list restaurants")
		return RestaurantsOutput{Output: fail(msgLoadRestaurants)}
	}
	return RestaurantsOutput{
		Output:       ok(),
		Results:      list,
		TotalPages:   totalPages(total, s.pageSize),
		TotalResults: total,
	}
}

func (s *Service) FindRestaurantByID(ctx context.Context, id int64) RestaurantOutput {
	r, err := s.repo.FindRestaurant(ctx, id, true)
	if errors.Is(err, ErrNotFound) {
		return RestaurantOutput{Output: fail(msgRestaurantNotFound)}
	}
	if err != nil {
		s.log.Error().Err(err).Int64("restaurant_id", id).Msg("find restaurant")
		return RestaurantOutput{Output: fail(msgLoadRestaurant)}
	}
	return RestaurantOutput{Output: ok(), Restaurant: r}
}

// SearchRestaurantByName matches query as a case-insensitive substring.
func (s *Service) SearchRestaurantByName(ctx context.Context, query string, page int) RestaurantsOutput {
	query = strings.TrimSpace(query)
	if query == "" {
		return RestaurantsOutput{Output: fail(msgInvalidInput)}
	}
	list, total, err := s.repo.SearchRestaurants(ctx, query, s.page(page))
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("search restaurants")
		return RestaurantsOutput{Output: fail(msgSearchRestaurants)}
	}
	return RestaurantsOutput{
		Output:       ok(),
		Results:      list,
		TotalPages:   totalPages(total, s.pageSize),
		TotalResults: total,
	}
}

// ---------------------------------------------------------------------------
// Dishes
// ---------------------------------------------------------------------------

func (s *Service) CreateDish(ctx context.Context, ownerID int64, in CreateDishInput) CreateDishOutput {
	if err := s.validate.Struct(in); err != nil {
		return CreateDishOutput{Output: fail(msgInvalidInput)}
	}
	r, out := s.ownedRestaurant(ctx, ownerID, in.RestaurantID, msgCreateDish)
	if r == nil {
		return CreateDishOutput{Output: out}
	}

	d := &Dish{
		Name:         strings.TrimSpace(in.Name),
		Price:        in.Price,
		Photo:        in.Photo,
		Description:  in.Description,
		RestaurantID: r.ID,
		Options:      in.Options,
	}
	if err := s.repo.CreateDish(ctx, d); err != nil {
		s.log.Error().Err(err).Int64("restaurant_id", r.ID).Msg("create dish")
		return CreateDishOutput{Output: fail(msgCreateDish)}
	}
	return CreateDishOutput{Output: ok(), DishID: d.ID}
}

func (s *Service) EditDish(ctx context.Context, ownerID int64, in EditDishInput) Output {
	if err := s.validate.Struct(in); err != nil {
		return fail(msgInvalidInput)
	}
	d, out := s.ownedDish(ctx, ownerID, in.DishID, msgEditDish)
	if d == nil {
		return out
	}

	if in.Name != nil {
		d.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		d.Price = *in.Price
	}
	if in.Photo != nil {
		d.Photo = *in.Photo
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.Options != nil {
		d.Options = *in.Options
	}

	if err := s.repo.UpdateDish(ctx, d); err != nil {
		s.log.Error().Err(err).Int64("dish_id", d.ID).Msg("update dish")
		return fail(msgEditDish)
	}
	return ok()
}

func (s *Service) DeleteDish(ctx context.Context, ownerID, dishID int64) Output {
	d, out := s.ownedDish(ctx, ownerID, dishID, msgDeleteDish)
	if d == nil {
		return out
	}
	if err := s.repo.DeleteDish(ctx, d.ID); err != nil {
		s.log.Error().Err(err).Int64("dish_id", d.ID).Msg("delete dish")
		return fail(msgDeleteDish)
	}
	return ok()
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *Service) page(n int) Page {
	if n < 1 {
		n = 1
	}
	return Page{Number: n, Size: s.pageSize}
}

// ownedRestaurant loads the restaurant and checks ownerID owns it. On failure
// it returns nil and the output to hand back; failMsg covers storage errors.
func (s *Service) ownedRestaurant(ctx context.Context, ownerID, id int64, failMsg string) (*Restaurant, Output) {
	r, err := s.repo.FindRestaurant(ctx, id, false)
	if errors.Is(err, ErrNotFound) {
		return nil, fail(msgRestaurantNotFound)
	}
	if err != nil {
		s.log.Error().Err(err).Int64("restaurant_id", id).Msg("load restaurant")
		return nil, fail(failMsg)
	}
	if r.OwnerID != ownerID {
		return nil, fail(msgNotOwner)
	}
	return r, Output{}
}

func (s *Service) ownedDish(ctx context.Context, ownerID, id int64, failMsg string) (*Dish, Output) {
	d, err := s.repo.FindDish(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, fail(msgDishNotFound)
	}
	if err != nil {
		s.log.Error().Err(err).Int64("dish_id", id).Msg("load dish")
		return nil, fail(failMsg)
	}
	if r, out := s.ownedRestaurant(ctx, ownerID, d.RestaurantID, failMsg); r == nil {
		return nil, out
	}
	return d, Output{}
}
