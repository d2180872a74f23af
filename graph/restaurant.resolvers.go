package graph

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.87

import (
	"context"

	"eats-backend/graph/model"
	"eats-backend/internal/app/restaurants"
)

// CreateRestaurant is the resolver for the createRestaurant field.
func (r *mutationResolver) CreateRestaurant(ctx context.Context, input model.CreateRestaurantInput) (*model.CreateRestaurantOutput, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Catalog.CreateRestaurant(ctx, user.ID, restaurants.CreateRestaurantInput{
		Name:         input.Name,
		CoverImg:     valueOrEmpty(input.CoverImg),
		Address:      input.Address,
		CategoryName: input.CategoryName,
	})
	return &model.CreateRestaurantOutput{
		Ok:           out.OK,
		Error:        stringPtrOrNil(out.Error),
		RestaurantID: idIfOK(out.OK, out.RestaurantID),
	}, nil
}

// EditRestaurant is the resolver for the editRestaurant field.
func (r *mutationResolver) EditRestaurant(ctx context.Context, input model.EditRestaurantInput) (*model.CoreOutput, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Catalog.EditRestaurant(ctx, user.ID, restaurants.EditRestaurantInput{
		RestaurantID: int64(input.RestaurantID),
		Name:         input.Name,
		CoverImg:     input.CoverImg,
		Address:      input.Address,
		CategoryName: input.CategoryName,
	})
	return coreOutput(out.OK, out.Error), nil
}

// DeleteRestaurant is the resolver for the deleteRestaurant field.
func (r *mutationResolver) DeleteRestaurant(ctx context.Context, input model.DeleteRestaurantInput) (*model.CoreOutput, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Catalog.DeleteRestaurant(ctx, user.ID, int64(input.RestaurantID))
	return coreOutput(out.OK, out.Error), nil
}

// CreateDish is the resolver for the createDish field.
func (r *mutationResolver) CreateDish(ctx context.Context, input model.CreateDishInput) (*model.CreateDishOutput, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Catalog.CreateDish(ctx, user.ID, restaurants.CreateDishInput{
		RestaurantID: int64(input.RestaurantID),
		Name:         input.Name,
		Price:        int(input.Price),
		Photo:        valueOrEmpty(input.Photo),
		Description:  input.Description,
		Options:      fromDishOptions(input.Options),
	})
	return &model.CreateDishOutput{
		Ok:     out.OK,
		Error:  stringPtrOrNil(out.Error),
		DishID: idIfOK(out.OK, out.DishID),
	}, nil
}

// EditDish is the resolver for the editDish field.
func (r *mutationResolver) EditDish(ctx context.Context, input model.EditDishInput) (*model.CoreOutput, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	in := restaurants.EditDishInput{
		DishID:      int64(input.DishID),
		Name:        input.Name,
		Price:       toIntPtr(input.Price),
		Photo:       input.Photo,
		Description: input.Description,
	}
	if input.Options != nil {
		opts := fromDishOptions(input.Options)
		in.Options = &opts
	}
	out := r.Catalog.EditDish(ctx, user.ID, in)
	return coreOutput(out.OK, out.Error), nil
}

// DeleteDish is the resolver for the deleteDish field.
func (r *mutationResolver) DeleteDish(ctx context.Context, input model.DeleteDishInput) (*model.CoreOutput, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Catalog.DeleteDish(ctx, user.ID, int64(input.DishID))
	return coreOutput(out.OK, out.Error), nil
}

// AllCategories is the resolver for the allCategories field.
func (r *queryResolver) AllCategories(ctx context.Context) (*model.AllCategoriesOutput, error) {
	out := r.Catalog.AllCategories(ctx)
	res := &model.AllCategoriesOutput{Ok: out.OK, Error: stringPtrOrNil(out.Error)}
	if out.OK {
		res.Categories = toCategories(out.Categories)
	}
	return res, nil
}

// Category is the resolver for the category field.
func (r *queryResolver) Category(ctx context.Context, input model.CategoryInput) (*model.CategoryOutput, error) {
	out := r.Catalog.FindCategoryBySlug(ctx, input.Slug, pageOrFirst(input.Page))
	res := &model.CategoryOutput{Ok: out.OK, Error: stringPtrOrNil(out.Error)}
	res.TotalPages, res.TotalResults = pagingIfOK(out.OK, out.TotalPages, out.TotalResults)
	if out.OK {
		res.Category = toCategory(out.Category)
		res.Restaurants = toRestaurants(out.Restaurants)
	}
	return res, nil
}

// Restaurants is the resolver for the restaurants field.
func (r *queryResolver) Restaurants(ctx context.Context, input model.RestaurantsInput) (*model.RestaurantsOutput, error) {
	out := r.Catalog.AllRestaurants(ctx, pageOrFirst(input.Page))
	res := &model.RestaurantsOutput{Ok: out.OK, Error: stringPtrOrNil(out.Error)}
	res.TotalPages, res.TotalResults = pagingIfOK(out.OK, out.TotalPages, out.TotalResults)
	if out.OK {
		res.Results = toRestaurants(out.Results)
	}
	return res, nil
}

// Restaurant is the resolver for the restaurant field.
func (r *queryResolver) Restaurant(ctx context.Context, input model.RestaurantInput) (*model.RestaurantOutput, error) {
	out := r.Catalog.FindRestaurantByID(ctx, int64(input.RestaurantID))
	return &model.RestaurantOutput{
		Ok:         out.OK,
		Error:      stringPtrOrNil(out.Error),
		Restaurant: toRestaurant(out.Restaurant),
	}, nil
}

// SearchRestaurant is the resolver for the searchRestaurant field.
func (r *queryResolver) SearchRestaurant(ctx context.Context, input model.SearchRestaurantInput) (*model.SearchRestaurantOutput, error) {
	out := r.Catalog.SearchRestaurantByName(ctx, input.Query, pageOrFirst(input.Page))
	res := &model.SearchRestaurantOutput{Ok: out.OK, Error: stringPtrOrNil(out.Error)}
	res.TotalPages, res.TotalResults = pagingIfOK(out.OK, out.TotalPages, out.TotalResults)
	if out.OK {
		res.Restaurants = toRestaurants(out.Results)
	}
	return res, nil
}
