package graph_test

import (
	"context"
	"testing"
	"time"

	"eats-backend/graph"
	"eats-backend/graph/model"
	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
	"eats-backend/internal/guard"
)

// ---------------------------------------------------------------------------
// Mock services
// ---------------------------------------------------------------------------

// mockUserService implements graph.UserService for tests.
// Each method field can be overridden per test; the zero value returns a
// successful empty result.
type mockUserService struct {
	createAccountFn func(ctx context.Context, in users.CreateAccountInput) users.Output
	loginFn         func(ctx context.Context, in users.LoginInput) users.LoginOutput
	userProfileFn   func(ctx context.Context, id int64) users.UserProfileOutput
	editProfileFn   func(ctx context.Context, userID int64, in users.EditProfileInput) users.Output
	verifyEmailFn   func(ctx context.Context, code string) users.Output
}

func (m *mockUserService) CreateAccount(ctx context.Context, in users.CreateAccountInput) users.Output {
	if m.createAccountFn != nil {
		return m.createAccountFn(ctx, in)
	}
	return users.Output{OK: true}
}

func (m *mockUserService) Login(ctx context.Context, in users.LoginInput) users.LoginOutput {
	if m.loginFn != nil {
		return m.loginFn(ctx, in)
	}
	return users.LoginOutput{Output: users.Output{OK: true}}
}

func (m *mockUserService) UserProfile(ctx context.Context, id int64) users.UserProfileOutput {
	if m.userProfileFn != nil {
		return m.userProfileFn(ctx, id)
	}
	return users.UserProfileOutput{Output: users.Output{OK: true}}
}

func (m *mockUserService) EditProfile(ctx context.Context, userID int64, in users.EditProfileInput) users.Output {
	if m.editProfileFn != nil {
		return m.editProfileFn(ctx, userID, in)
	}
	return users.Output{OK: true}
}

func (m *mockUserService) VerifyEmail(ctx context.Context, code string) users.Output {
	if m.verifyEmailFn != nil {
		return m.verifyEmailFn(ctx, code)
	}
	return users.Output{OK: true}
}

// mockCatalog implements graph.RestaurantService for tests.
type mockCatalog struct {
	createRestaurantFn func(ctx context.Context, ownerID int64, in restaurants.CreateRestaurantInput) restaurants.CreateRestaurantOutput
	editRestaurantFn   func(ctx context.Context, ownerID int64, in restaurants.EditRestaurantInput) restaurants.Output
	deleteRestaurantFn func(ctx context.Context, ownerID, restaurantID int64) restaurants.Output
	allCategoriesFn    func(ctx context.Context) restaurants.AllCategoriesOutput
	categoryFn         func(ctx context.Context, slug string, page int) restaurants.CategoryOutput
	allRestaurantsFn   func(ctx context.Context, page int) restaurants.RestaurantsOutput
	restaurantFn       func(ctx context.Context, id int64) restaurants.RestaurantOutput
	searchFn           func(ctx context.Context, query string, page int) restaurants.RestaurantsOutput
	createDishFn       func(ctx context.Context, ownerID int64, in restaurants.CreateDishInput) restaurants.CreateDishOutput
	editDishFn         func(ctx context.Context, ownerID int64, in restaurants.EditDishInput) restaurants.Output
	deleteDishFn       func(ctx context.Context, ownerID, dishID int64) restaurants.Output
}

var okOutput = restaurants.Output{OK: true}

func (m *mockCatalog) CreateRestaurant(ctx context.Context, ownerID int64, in restaurants.CreateRestaurantInput) restaurants.CreateRestaurantOutput {
	if m.createRestaurantFn != nil {
		return m.createRestaurantFn(ctx, ownerID, in)
	}
	return restaurants.CreateRestaurantOutput{Output: okOutput}
}

func (m *mockCatalog) EditRestaurant(ctx context.Context, ownerID int64, in restaurants.EditRestaurantInput) restaurants.Output {
	if m.editRestaurantFn != nil {
		return m.editRestaurantFn(ctx, ownerID, in)
	}
	return okOutput
}

func (m *mockCatalog) DeleteRestaurant(ctx context.Context, ownerID, restaurantID int64) restaurants.Output {
	if m.deleteRestaurantFn != nil {
		return m.deleteRestaurantFn(ctx, ownerID, restaurantID)
	}
	return okOutput
}

func (m *mockCatalog) AllCategories(ctx context.Context) restaurants.AllCategoriesOutput {
	if m.allCategoriesFn != nil {
		return m.allCategoriesFn(ctx)
	}
	return restaurants.AllCategoriesOutput{Output: okOutput}
}

func (m *mockCatalog) FindCategoryBySlug(ctx context.Context, slug string, page int) restaurants.CategoryOutput {
	if m.categoryFn != nil {
		return m.categoryFn(ctx, slug, page)
	}
	return restaurants.CategoryOutput{Output: okOutput}
}

func (m *mockCatalog) AllRestaurants(ctx context.Context, page int) restaurants.RestaurantsOutput {
	if m.allRestaurantsFn != nil {
		return m.allRestaurantsFn(ctx, page)
	}
	return restaurants.RestaurantsOutput{Output: okOutput}
}

func (m *mockCatalog) FindRestaurantByID(ctx context.Context, id int64) restaurants.RestaurantOutput {
	if m.restaurantFn != nil {
		return m.restaurantFn(ctx, id)
	}
	return restaurants.RestaurantOutput{Output: okOutput}
}

func (m *mockCatalog) SearchRestaurantByName(ctx context.Context, query string, page int) restaurants.RestaurantsOutput {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, page)
	}
	return restaurants.RestaurantsOutput{Output: okOutput}
}

func (m *mockCatalog) CreateDish(ctx context.Context, ownerID int64, in restaurants.CreateDishInput) restaurants.CreateDishOutput {
	if m.createDishFn != nil {
		return m.createDishFn(ctx, ownerID, in)
	}
	return restaurants.CreateDishOutput{Output: okOutput}
}

func (m *mockCatalog) EditDish(ctx context.Context, ownerID int64, in restaurants.EditDishInput) restaurants.Output {
	if m.editDishFn != nil {
		return m.editDishFn(ctx, ownerID, in)
	}
	return okOutput
}

func (m *mockCatalog) DeleteDish(ctx context.Context, ownerID, dishID int64) restaurants.Output {
	if m.deleteDishFn != nil {
		return m.deleteDishFn(ctx, ownerID, dishID)
	}
	return okOutput
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func owner() *users.User {
	return &users.User{
		ID:        42,
		Email:     "owner@example.com",
		Role:      auth.RoleOwner,
		Verified:  true,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// ownerCtx carries the user the guard would hand to an owner's resolvers.
func ownerCtx() context.Context {
	return guard.WithUser(context.Background(), owner())
}

func newResolver(u graph.UserService, c graph.RestaurantService) *graph.Resolver {
	return &graph.Resolver{Users: u, Catalog: c}
}

func strPtr(s string) *string { return &s }
func int32Ptr(i int32) *int32 { return &i }

// ---------------------------------------------------------------------------
// Protected resolvers reject a missing user
// ---------------------------------------------------------------------------

func TestProtectedResolvers_NoUser(t *testing.T) {
	r := newResolver(&mockUserService{}, &mockCatalog{})
	ctx := context.Background()

	checks := map[string]func() error{
		"me": func() error { _, err := r.Query().Me(ctx); return err },
		"userProfile": func() error {
			_, err := r.Query().UserProfile(ctx, model.UserProfileInput{UserID: 1})
			return err
		},
		"editProfile": func() error {
			_, err := r.Mutation().EditProfile(ctx, model.EditProfileInput{})
			return err
		},
		"createRestaurant": func() error {
			_, err := r.Mutation().CreateRestaurant(ctx, model.CreateRestaurantInput{})
			return err
		},
		"editRestaurant": func() error {
			_, err := r.Mutation().EditRestaurant(ctx, model.EditRestaurantInput{})
			return err
		},
		"deleteRestaurant": func() error {
			_, err := r.Mutation().DeleteRestaurant(ctx, model.DeleteRestaurantInput{})
			return err
		},
		"createDish": func() error {
			_, err := r.Mutation().CreateDish(ctx, model.CreateDishInput{})
			return err
		},
		"editDish": func() error {
			_, err := r.Mutation().EditDish(ctx, model.EditDishInput{})
			return err
		},
		"deleteDish": func() error {
			_, err := r.Mutation().DeleteDish(ctx, model.DeleteDishInput{})
			return err
		},
	}
	for name, check := range checks {
		if err := check(); err != graph.ErrUnauthenticated {
			t.Errorf("%s: want ErrUnauthenticated, got %v", name, err)
		}
	}
}

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

func TestMeResolver_TypeMapping(t *testing.T) {
	r := newResolver(&mockUserService{}, &mockCatalog{})

	got, err := r.Query().Me(ownerCtx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 42 || got.Email != "owner@example.com" {
		t.Errorf("identity: got %d %q", got.ID, got.Email)
	}
	if got.Role != model.UserRoleOwner {
		t.Errorf("Role: want Owner, got %q", got.Role)
	}
	if got.CreatedAt != "2026-01-02T03:04:05Z" {
		t.Errorf("CreatedAt: got %q", got.CreatedAt)
	}
}

func TestCreateAccountResolver_ForwardsInput(t *testing.T) {
	var got users.CreateAccountInput
	r := newResolver(&mockUserService{
		createAccountFn: func(_ context.Context, in users.CreateAccountInput) users.Output {
			got = in
			return users.Output{Error: "There is a user with that email already"}
		},
	}, &mockCatalog{})

	out, err := r.Mutation().CreateAccount(context.Background(), model.CreateAccountInput{
		Email: "a@b.c", Password: "pw", Role: model.UserRoleDelivery,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "a@b.c" || got.Password != "pw" || got.Role != auth.RoleDelivery {
		t.Errorf("forwarded input: got %+v", got)
	}
	if out.Ok {
		t.Error("Ok: want false")
	}
	if out.Error == nil || *out.Error != "There is a user with that email already" {
		t.Errorf("Error: got %v", out.Error)
	}
}

func TestLoginResolver_TokenOnlyOnSuccess(t *testing.T) {
	r := newResolver(&mockUserService{
		loginFn: func(_ context.Context, in users.LoginInput) users.LoginOutput {
			if in.Password != "right" {
				return users.LoginOutput{Output: users.Output{Error: "Wrong password"}}
			}
			return users.LoginOutput{Output: users.Output{OK: true}, Token: "tok"}
		},
	}, &mockCatalog{})

	out, err := r.Mutation().Login(context.Background(), model.LoginInput{Email: "a@b.c", Password: "right"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Ok || out.Token == nil || *out.Token != "tok" || out.Error != nil {
		t.Errorf("success: got %+v", out)
	}

	out, _ = r.Mutation().Login(context.Background(), model.LoginInput{Email: "a@b.c", Password: "wrong"})
	if out.Ok || out.Token != nil {
		t.Errorf("failure: want no token, got %+v", out)
	}
}

func TestEditProfileResolver_UsesResolvedUser(t *testing.T) {
	var gotID int64
	var gotIn users.EditProfileInput
	r := newResolver(&mockUserService{
		editProfileFn: func(_ context.Context, userID int64, in users.EditProfileInput) users.Output {
			gotID, gotIn = userID, in
			return users.Output{OK: true}
		},
	}, &mockCatalog{})

	out, err := r.Mutation().EditProfile(ownerCtx(), model.EditProfileInput{Email: strPtr("new@example.com")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Ok {
		t.Error("Ok: want true")
	}
	if gotID != 42 {
		t.Errorf("userID: want 42, got %d", gotID)
	}
	if gotIn.Email == nil || *gotIn.Email != "new@example.com" || gotIn.Password != nil {
		t.Errorf("input: got %+v", gotIn)
	}
}

func TestUserProfileResolver_NotFound(t *testing.T) {
	r := newResolver(&mockUserService{
		userProfileFn: func(_ context.Context, id int64) users.UserProfileOutput {
			return users.UserProfileOutput{Output: users.Output{Error: "User not found"}}
		},
	}, &mockCatalog{})

	out, err := r.Query().UserProfile(ownerCtx(), model.UserProfileInput{UserID: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Ok || out.User != nil {
		t.Errorf("want failed output without user, got %+v", out)
	}
}

// ---------------------------------------------------------------------------
// Catalogue
// ---------------------------------------------------------------------------

func TestRestaurantsResolver_TypeMapping(t *testing.T) {
	catID := int64(3)
	r := newResolver(&mockUserService{}, &mockCatalog{
		allRestaurantsFn: func(_ context.Context, page int) restaurants.RestaurantsOutput {
			if page != 1 {
				t.Errorf("page: want default 1, got %d", page)
			}
			return restaurants.RestaurantsOutput{
				Output: okOutput,
				Results: []restaurants.Restaurant{{
					ID: 1, Name: "Napoli", Address: "1 Main St", CategoryID: &catID, OwnerID: 42,
					Category: &restaurants.Category{ID: 3, Name: "pizza", Slug: "pizza"},
				}},
				TotalPages:   1,
				TotalResults: 1,
			}
		},
	})

	out, err := r.Query().Restaurants(context.Background(), model.RestaurantsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalPages == nil || *out.TotalPages != 1 || out.TotalResults == nil || *out.TotalResults != 1 {
		t.Errorf("paging: got %v %v", out.TotalPages, out.TotalResults)
	}
	if len(out.Results) != 1 {
		t.Fatalf("want 1 result, got %d", len(out.Results))
	}
	got := out.Results[0]
	if got.CoverImg != nil {
		t.Errorf("empty CoverImg should map to nil, got %v", *got.CoverImg)
	}
	if got.Category == nil || got.Category.Slug != "pizza" {
		t.Errorf("Category: got %+v", got.Category)
	}
	if got.Menu == nil || len(got.Menu) != 0 {
		t.Errorf("Menu: want empty non-nil slice, got %v", got.Menu)
	}
}

func TestCategoryResolver_FailureHasNoPaging(t *testing.T) {
	r := newResolver(&mockUserService{}, &mockCatalog{
		categoryFn: func(_ context.Context, slug string, page int) restaurants.CategoryOutput {
			if slug != "sushi" || page != 2 {
				t.Errorf("forwarded: got %q %d", slug, page)
			}
			return restaurants.CategoryOutput{Output: restaurants.Output{Error: "Category not found"}}
		},
	})

	out, err := r.Query().Category(context.Background(), model.CategoryInput{Slug: "sushi", Page: int32Ptr(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Ok || out.TotalPages != nil || out.TotalResults != nil || out.Category != nil {
		t.Errorf("want bare failure, got %+v", out)
	}
}

func TestSearchRestaurantResolver_ForwardsQuery(t *testing.T) {
	var gotQuery string
	r := newResolver(&mockUserService{}, &mockCatalog{
		searchFn: func(_ context.Context, query string, page int) restaurants.RestaurantsOutput {
			gotQuery = query
			return restaurants.RestaurantsOutput{Output: okOutput, Results: []restaurants.Restaurant{{ID: 9, Name: "Grill"}}}
		},
	})

	out, err := r.Query().SearchRestaurant(context.Background(), model.SearchRestaurantInput{Query: "gri"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "gri" {
		t.Errorf("query: want gri, got %q", gotQuery)
	}
	if len(out.Restaurants) != 1 || out.Restaurants[0].ID != 9 {
		t.Errorf("Restaurants: got %+v", out.Restaurants)
	}
}

func TestRestaurantResolver_MenuMapping(t *testing.T) {
	extra := 2
	r := newResolver(&mockUserService{}, &mockCatalog{
		restaurantFn: func(_ context.Context, id int64) restaurants.RestaurantOutput {
			return restaurants.RestaurantOutput{Output: okOutput, Restaurant: &restaurants.Restaurant{
				ID: id, Name: "Napoli",
				Menu: []restaurants.Dish{{
					ID: 5, Name: "Margherita", Price: 12, RestaurantID: id,
					Options: []restaurants.DishOption{{Name: "Size", Choices: []restaurants.DishChoice{{Name: "L", Extra: &extra}}}},
				}},
			}}
		},
	})

	out, err := r.Query().Restaurant(context.Background(), model.RestaurantInput{RestaurantID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Restaurant == nil || len(out.Restaurant.Menu) != 1 {
		t.Fatalf("want one dish, got %+v", out.Restaurant)
	}
	dish := out.Restaurant.Menu[0]
	if dish.Photo != nil {
		t.Errorf("empty Photo should map to nil")
	}
	if len(dish.Options) != 1 || dish.Options[0].Choices[0].Extra == nil || *dish.Options[0].Choices[0].Extra != 2 {
		t.Errorf("Options: got %+v", dish.Options)
	}
}

func TestCreateRestaurantResolver_OwnerAndID(t *testing.T) {
	var gotOwner int64
	r := newResolver(&mockUserService{}, &mockCatalog{
		createRestaurantFn: func(_ context.Context, ownerID int64, in restaurants.CreateRestaurantInput) restaurants.CreateRestaurantOutput {
			gotOwner = ownerID
			if in.CoverImg != "" {
				t.Errorf("nil CoverImg should forward as empty, got %q", in.CoverImg)
			}
			return restaurants.CreateRestaurantOutput{Output: okOutput, RestaurantID: 77}
		},
	})

	out, err := r.Mutation().CreateRestaurant(ownerCtx(), model.CreateRestaurantInput{
		Name: "Napoli", Address: "1 Main St", CategoryName: "Pizza",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOwner != 42 {
		t.Errorf("owner: want 42, got %d", gotOwner)
	}
	if out.RestaurantID == nil || *out.RestaurantID != 77 {
		t.Errorf("RestaurantID: got %v", out.RestaurantID)
	}
}

func TestEditDishResolver_OptionsNilVsEmpty(t *testing.T) {
	var got restaurants.EditDishInput
	r := newResolver(&mockUserService{}, &mockCatalog{
		editDishFn: func(_ context.Context, _ int64, in restaurants.EditDishInput) restaurants.Output {
			got = in
			return okOutput
		},
	})
	ctx := ownerCtx()

	if _, err := r.Mutation().EditDish(ctx, model.EditDishInput{DishID: 1, Price: int32Ptr(9)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Options != nil {
		t.Errorf("absent options must stay nil, got %+v", *got.Options)
	}
	if got.Price == nil || *got.Price != 9 {
		t.Errorf("Price: got %v", got.Price)
	}

	_, _ = r.Mutation().EditDish(ctx, model.EditDishInput{DishID: 1, Options: []*model.DishOptionInput{}})
	if got.Options == nil || len(*got.Options) != 0 {
		t.Errorf("empty options must replace the set, got %v", got.Options)
	}
}

func TestDeleteDishResolver_Failure(t *testing.T) {
	r := newResolver(&mockUserService{}, &mockCatalog{
		deleteDishFn: func(_ context.Context, ownerID, dishID int64) restaurants.Output {
			return restaurants.Output{Error: "Dish not found"}
		},
	})

	out, err := r.Mutation().DeleteDish(ownerCtx(), model.DeleteDishInput{DishID: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Ok || out.Error == nil || *out.Error != "Dish not found" {
		t.Errorf("got %+v", out)
	}
}
