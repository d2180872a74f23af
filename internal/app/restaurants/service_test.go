package restaurants

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory Repository. Setting failWith makes every call fail.
type memRepo struct {
	restaurants map[int64]*Restaurant
	categories  map[int64]*Category
	dishes      map[int64]*Dish
	nextID      int64
	failWith    error
}

func newMemRepo() *memRepo {
	return &memRepo{
		restaurants: map[int64]*Restaurant{},
		categories:  map[int64]*Category{},
		dishes:      map[int64]*Dish{},
	}
}

func (m *memRepo) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memRepo) CreateRestaurant(_ context.Context, r *Restaurant) error {
	if m.failWith != nil {
		return m.failWith
	}
	r.ID = m.id()
	clone := *r
	m.restaurants[r.ID] = &clone
	return nil
}

func (m *memRepo) UpdateRestaurant(_ context.Context, r *Restaurant) error {
	if m.failWith != nil {
		return m.failWith
	}
	clone := *r
	m.restaurants[r.ID] = &clone
	return nil
}

func (m *memRepo) DeleteRestaurant(_ context.Context, id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.restaurants, id)
	for dishID, d := range m.dishes {
		if d.RestaurantID == id {
			delete(m.dishes, dishID)
		}
	}
	return nil
}

func (m *memRepo) FindRestaurant(_ context.Context, id int64, withMenu bool) (*Restaurant, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	r, ok := m.restaurants[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *r
	if withMenu {
		for _, d := range m.sortedDishes() {
			if d.RestaurantID == id {
				clone.Menu = append(clone.Menu, d)
			}
		}
	}
	return &clone, nil
}

func (m *memRepo) sortedRestaurants(keep func(Restaurant) bool) []Restaurant {
	var out []Restaurant
	for _, r := range m.restaurants {
		if keep(*r) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memRepo) sortedDishes() []Dish {
	var out []Dish
	for _, d := range m.dishes {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func paginate(all []Restaurant, page Page) ([]Restaurant, int64) {
	total := int64(len(all))
	start := page.Offset()
	if start >= len(all) {
		return nil, total
	}
	end := start + page.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total
}

func (m *memRepo) ListRestaurants(_ context.Context, page Page) ([]Restaurant, int64, error) {
	if m.failWith != nil {
		return nil, 0, m.failWith
	}
	list, total := paginate(m.sortedRestaurants(func(Restaurant) bool { return true }), page)
	return list, total, nil
}

func (m *memRepo) SearchRestaurants(_ context.Context, query string, page Page) ([]Restaurant, int64, error) {
	if m.failWith != nil {
		return nil, 0, m.failWith
	}
	q := strings.ToLower(query)
	list, total := paginate(m.sortedRestaurants(func(r Restaurant) bool {
		return strings.Contains(strings.ToLower(r.Name), q)
	}), page)
	return list, total, nil
}

func (m *memRepo) ListRestaurantsByCategory(_ context.Context, categoryID int64, page Page) ([]Restaurant, int64, error) {
	if m.failWith != nil {
		return nil, 0, m.failWith
	}
	list, total := paginate(m.sortedRestaurants(func(r Restaurant) bool {
		return r.CategoryID != nil && *r.CategoryID == categoryID
	}), page)
	return list, total, nil
}

func (m *memRepo) CountRestaurantsByCategory(_ context.Context, categoryID int64) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var n int64
	for _, r := range m.restaurants {
		if r.CategoryID != nil && *r.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (m *memRepo) FindCategoryBySlug(_ context.Context, slug string) (*Category, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, c := range m.categories {
		if c.Slug == slug {
			clone := *c
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) CreateCategory(_ context.Context, c *Category) error {
	if m.failWith != nil {
		return m.failWith
	}
	c.ID = m.id()
	clone := *c
	m.categories[c.ID] = &clone
	return nil
}

func (m *memRepo) ListCategories(_ context.Context) ([]Category, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []Category
	for _, c := range m.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRepo) CreateDish(_ context.Context, d *Dish) error {
	if m.failWith != nil {
		return m.failWith
	}
	d.ID = m.id()
	clone := *d
	m.dishes[d.ID] = &clone
	return nil
}

func (m *memRepo) UpdateDish(_ context.Context, d *Dish) error {
	if m.failWith != nil {
		return m.failWith
	}
	clone := *d
	m.dishes[d.ID] = &clone
	return nil
}

func (m *memRepo) DeleteDish(_ context.Context, id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.dishes, id)
	return nil
}

func (m *memRepo) FindDish(_ context.Context, id int64) (*Dish, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	d, ok := m.dishes[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *d
	return &clone, nil
}

const (
	owner    int64 = 10
	stranger int64 = 20
)

func newTestService(t *testing.T, pageSize int) (*Service, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	return NewService(repo, pageSize, zerolog.Nop()), repo
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func createRestaurant(t *testing.T, svc *Service, name, category string) int64 {
	t.Helper()
	out := svc.CreateRestaurant(context.Background(), owner, CreateRestaurantInput{
		Name:         name,
		Address:      "1 Main St",
		CategoryName: category,
	})
	require.True(t, out.OK, out.Error)
	return out.RestaurantID
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

func TestCategorySlug(t *testing.T) {
	svc, _ := newTestService(t, 0)

	tests := []struct {
		in, name, slug string
	}{
		{"Korean BBQ", "korean bbq", "korean-bbq"},
		{"  Fast   Food ", "fast food", "fast-food"},
		{"ÉPICERIE Fine", "épicerie fine", "épicerie-fine"},
		{"pizza", "pizza", "pizza"},
	}
	for _, tt := range tests {
		name, slug := svc.CategorySlug(tt.in)
		assert.Equal(t, tt.name, name, tt.in)
		assert.Equal(t, tt.slug, slug, tt.in)
	}
}

func TestGetOrCreateCategory_ReusesExisting(t *testing.T) {
	svc, repo := newTestService(t, 0)
	ctx := context.Background()

	first, err := svc.GetOrCreateCategory(ctx, "Korean BBQ")
	require.NoError(t, err)
	second, err := svc.GetOrCreateCategory(ctx, "korean   bbq")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.categories, 1)
}

func TestGetOrCreateCategory_Empty(t *testing.T) {
	svc, _ := newTestService(t, 0)
	_, err := svc.GetOrCreateCategory(context.Background(), "   ")
	require.Error(t, err)
}

func TestAllCategories_Counts(t *testing.T) {
	svc, _ := newTestService(t, 0)
	createRestaurant(t, svc, "Seoul Grill", "Korean BBQ")
	createRestaurant(t, svc, "Busan House", "Korean BBQ")
	createRestaurant(t, svc, "Napoli", "Pizza")

	out := svc.AllCategories(context.Background())
	require.True(t, out.OK)
	require.Len(t, out.Categories, 2)
	assert.Equal(t, "korean-bbq", out.Categories[0].Slug)
	assert.Equal(t, int64(2), out.Categories[0].RestaurantCount)
	assert.Equal(t, int64(1), out.Categories[1].RestaurantCount)
}

func TestFindCategoryBySlug(t *testing.T) {
	svc, _ := newTestService(t, 2)
	for _, n := range []string{"A1", "A2", "A3"} {
		createRestaurant(t, svc, n, "Pizza")
	}

	out := svc.FindCategoryBySlug(context.Background(), "pizza", 2)
	require.True(t, out.OK, out.Error)
	assert.Equal(t, "pizza", out.Category.Name)
	assert.Equal(t, 2, out.TotalPages)
	assert.Equal(t, int64(3), out.TotalResults)
	require.Len(t, out.Restaurants, 1)
	assert.Equal(t, "A3", out.Restaurants[0].Name)

	missing := svc.FindCategoryBySlug(context.Background(), "sushi", 1)
	assert.False(t, missing.OK)
	assert.Equal(t, msgCategoryNotFound, missing.Error)
}

// ---------------------------------------------------------------------------
// Restaurants
// ---------------------------------------------------------------------------

func TestCreateRestaurant_Validation(t *testing.T) {
	svc, repo := newTestService(t, 0)
	out := svc.CreateRestaurant(context.Background(), owner, CreateRestaurantInput{Name: "X", Address: "a", CategoryName: "c"})
	assert.False(t, out.OK)
	assert.Equal(t, msgInvalidInput, out.Error)
	assert.Empty(t, repo.restaurants)
}

func TestCreateRestaurant_StoreFailure(t *testing.T) {
	svc, repo := newTestService(t, 0)
	repo.failWith = errors.New("db down")
	out := svc.CreateRestaurant(context.Background(), owner, CreateRestaurantInput{Name: "Napoli", Address: "a", CategoryName: "pizza"})
	assert.False(t, out.OK)
	assert.Equal(t, msgCreateRestaurant, out.Error)
}

func TestEditRestaurant(t *testing.T) {
	svc, repo := newTestService(t, 0)
	ctx := context.Background()
	id := createRestaurant(t, svc, "Napoli", "Pizza")

	denied := svc.EditRestaurant(ctx, stranger, EditRestaurantInput{RestaurantID: id, Name: strPtr("Stolen")})
	assert.False(t, denied.OK)
	assert.Equal(t, msgNotOwner, denied.Error)

	missing := svc.EditRestaurant(ctx, owner, EditRestaurantInput{RestaurantID: 999, Name: strPtr("Nope")})
	assert.Equal(t, msgRestaurantNotFound, missing.Error)

	out := svc.EditRestaurant(ctx, owner, EditRestaurantInput{
		RestaurantID: id,
		Name:         strPtr("Napoli Express"),
		CategoryName: strPtr("Fast Food"),
	})
	require.True(t, out.OK, out.Error)

	r := repo.restaurants[id]
	assert.Equal(t, "Napoli Express", r.Name)
	assert.Equal(t, "1 Main St", r.Address)
	fast, err := repo.FindCategoryBySlug(ctx, "fast-food")
	require.NoError(t, err)
	assert.Equal(t, fast.ID, *r.CategoryID)
}

func TestDeleteRestaurant(t *testing.T) {
	svc, repo := newTestService(t, 0)
	ctx := context.Background()
	id := createRestaurant(t, svc, "Napoli", "Pizza")

	assert.Equal(t, msgNotOwner, svc.DeleteRestaurant(ctx, stranger, id).Error)
	require.Contains(t, repo.restaurants, id)

	assert.True(t, svc.DeleteRestaurant(ctx, owner, id).OK)
	assert.NotContains(t, repo.restaurants, id)
}

func TestAllRestaurants_Paging(t *testing.T) {
	svc, _ := newTestService(t, 2)
	for _, n := range []string{"R1", "R2", "R3", "R4", "R5"} {
		createRestaurant(t, svc, n, "Pizza")
	}

	out := svc.AllRestaurants(context.Background(), 3)
	require.True(t, out.OK)
	assert.Equal(t, 3, out.TotalPages)
	assert.Equal(t, int64(5), out.TotalResults)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "R5", out.Results[0].Name)

	// Page numbers below one clamp to the first page.
	first := svc.AllRestaurants(context.Background(), 0)
	require.Len(t, first.Results, 2)
	assert.Equal(t, "R1", first.Results[0].Name)
}

func TestFindRestaurantByID_IncludesMenu(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()
	id := createRestaurant(t, svc, "Napoli", "Pizza")
	dish := svc.CreateDish(ctx, owner, CreateDishInput{RestaurantID: id, Name: "Margherita", Price: 12})
	require.True(t, dish.OK, dish.Error)

	out := svc.FindRestaurantByID(ctx, id)
	require.True(t, out.OK)
	require.Len(t, out.Restaurant.Menu, 1)
	assert.Equal(t, "Margherita", out.Restaurant.Menu[0].Name)

	assert.Equal(t, msgRestaurantNotFound, svc.FindRestaurantByID(ctx, 404).Error)
}

func TestSearchRestaurantByName(t *testing.T) {
	svc, _ := newTestService(t, 0)
	createRestaurant(t, svc, "Seoul Grill", "Korean")
	createRestaurant(t, svc, "Grill House", "Burgers")
	createRestaurant(t, svc, "Napoli", "Pizza")

	out := svc.SearchRestaurantByName(context.Background(), "grill", 1)
	require.True(t, out.OK)
	assert.Equal(t, int64(2), out.TotalResults)
	assert.Equal(t, 1, out.TotalPages)

	blank := svc.SearchRestaurantByName(context.Background(), "  ", 1)
	assert.False(t, blank.OK)
}

// ---------------------------------------------------------------------------
// Dishes
// ---------------------------------------------------------------------------

func TestCreateDish(t *testing.T) {
	svc, repo := newTestService(t, 0)
	ctx := context.Background()
	id := createRestaurant(t, svc, "Napoli", "Pizza")

	in := CreateDishInput{
		RestaurantID: id,
		Name:         "Quattro Formaggi",
		Price:        14,
		Options: []DishOption{
			{Name: "Size", Choices: []DishChoice{{Name: "L", Extra: intPtr(3)}, {Name: "M"}}},
			{Name: "Extra cheese", Extra: intPtr(2)},
		},
	}

	assert.Equal(t, msgNotOwner, svc.CreateDish(ctx, stranger, in).Error)

	out := svc.CreateDish(ctx, owner, in)
	require.True(t, out.OK, out.Error)
	d := repo.dishes[out.DishID]
	require.NotNil(t, d)
	assert.Equal(t, id, d.RestaurantID)
	assert.Len(t, d.Options, 2)

	short := in
	short.Name = "Pie"
	assert.Equal(t, msgInvalidInput, svc.CreateDish(ctx, owner, short).Error)

	unnamed := in
	unnamed.Options = []DishOption{{Name: ""}}
	assert.Equal(t, msgInvalidInput, svc.CreateDish(ctx, owner, unnamed).Error)
}

func TestEditAndDeleteDish(t *testing.T) {
	svc, repo := newTestService(t, 0)
	ctx := context.Background()
	id := createRestaurant(t, svc, "Napoli", "Pizza")
	created := svc.CreateDish(ctx, owner, CreateDishInput{RestaurantID: id, Name: "Margherita", Price: 12})
	require.True(t, created.OK)

	denied := svc.EditDish(ctx, stranger, EditDishInput{DishID: created.DishID, Price: intPtr(1)})
	assert.Equal(t, msgNotOwner, denied.Error)

	options := []DishOption{{Name: "Spicy"}}
	out := svc.EditDish(ctx, owner, EditDishInput{DishID: created.DishID, Price: intPtr(15), Options: &options})
	require.True(t, out.OK, out.Error)
	assert.Equal(t, 15, repo.dishes[created.DishID].Price)
	assert.Equal(t, "Margherita", repo.dishes[created.DishID].Name)
	assert.Equal(t, options, repo.dishes[created.DishID].Options)

	assert.Equal(t, msgDishNotFound, svc.DeleteDish(ctx, owner, 999).Error)
	assert.Equal(t, msgNotOwner, svc.DeleteDish(ctx, stranger, created.DishID).Error)
	assert.True(t, svc.DeleteDish(ctx, owner, created.DishID).OK)
	assert.Empty(t, repo.dishes)
}
