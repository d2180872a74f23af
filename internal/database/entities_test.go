package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
)

func TestUserMapping(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := &users.User{ID: 7, Email: "a@b.c", Password: "hash", Role: auth.RoleOwner, Verified: true, CreatedAt: now, UpdatedAt: now}

	e := userToEntity(u)
	assert.Equal(t, "Owner", e.Role)
	assert.Equal(t, u, userFromEntity(e))
}

func TestDishOptionsRoundTrip(t *testing.T) {
	extra := 2
	d := &restaurants.Dish{
		ID:           3,
		Name:         "Margherita",
		Price:        12,
		RestaurantID: 9,
		Options: []restaurants.DishOption{
			{Name: "Size", Choices: []restaurants.DishChoice{{Name: "L", Extra: &extra}}},
		},
	}

	e, err := dishToEntity(d)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Size","choices":[{"name":"L","extra":2}]}]`, string(e.Options))

	back, err := dishFromEntity(e)
	require.NoError(t, err)
	assert.Equal(t, *d, back)
}

func TestDishWithoutOptions(t *testing.T) {
	e, err := dishToEntity(&restaurants.Dish{Name: "Plain"})
	require.NoError(t, err)
	assert.Nil(t, e.Options)

	d, err := dishFromEntity(e)
	require.NoError(t, err)
	assert.Nil(t, d.Options)
}

func TestDishFromEntity_CorruptOptions(t *testing.T) {
	_, err := dishFromEntity(DishEntity{ID: 4, Options: []byte(`{not json`)})
	assert.ErrorContains(t, err, "dish 4")
}

func TestRestaurantFromEntity(t *testing.T) {
	catID := int64(2)
	e := RestaurantEntity{
		ID:         1,
		Name:       "Napoli",
		Address:    "1 Main St",
		CategoryID: &catID,
		Category:   &CategoryEntity{ID: 2, Name: "pizza", Slug: "pizza"},
		OwnerID:    5,
		Menu:       []DishEntity{{ID: 10, Name: "Margherita", RestaurantID: 1}},
	}

	r, err := restaurantFromEntity(e)
	require.NoError(t, err)
	require.NotNil(t, r.Category)
	assert.Equal(t, "pizza", r.Category.Slug)
	require.Len(t, r.Menu, 1)
	assert.Equal(t, int64(10), r.Menu[0].ID)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% \_real\_ c:\\`, escapeLike(`100% _real_ c:\`))
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, LogLevel("silent"))
	assert.Equal(t, gormlogger.Info, LogLevel("info"))
	assert.Equal(t, gormlogger.Warn, LogLevel("nonsense"))
}

func TestConnect_EmptyDSN(t *testing.T) {
	_, err := Connect(Config{})
	assert.EqualError(t, err, "database DSN is empty")
}
