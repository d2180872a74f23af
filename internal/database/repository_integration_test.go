//go:build integration
// +build integration

package database

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN_TEST"))
	if dsn == "" {
		t.Skip("POSTGRES_DSN_TEST not set")
	}
	db, err := Connect(Config{DSN: dsn, LogLevel: LogLevel("silent")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, AutoMigrate(context.Background(), db, zerolog.Nop()))
	require.NoError(t, db.Exec(`TRUNCATE dishes, restaurants, categories, verifications, users RESTART IDENTITY CASCADE`).Error)
	return db
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &users.User{Email: "owner@example.com", Password: "hash", Role: auth.RoleOwner}
	v := &users.Verification{Code: "code-1"}
	require.NoError(t, repo.CreateWithVerification(ctx, u, v))
	require.NotZero(t, u.ID)
	assert.Equal(t, u.ID, v.UserID)

	got, err := repo.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, auth.RoleOwner, got.Role)

	_, err = repo.FindByID(ctx, u.ID+100)
	assert.ErrorIs(t, err, users.ErrNotFound)

	found, err := repo.FindVerificationByCode(ctx, "code-1")
	require.NoError(t, err)
	assert.Equal(t, v.ID, found.ID)

	got.Email = "new@example.com"
	require.NoError(t, repo.UpdateWithVerification(ctx, got, &users.Verification{Code: "code-2"}))
	_, err = repo.FindVerificationByCode(ctx, "code-1")
	assert.ErrorIs(t, err, users.ErrNotFound)

	again, err := repo.FindVerificationByCode(ctx, "code-2")
	require.NoError(t, err)
	require.NoError(t, repo.ConfirmVerification(ctx, again))
	got, err = repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.Verified)
	_, err = repo.FindVerificationByCode(ctx, "code-2")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestUserRepository_CreateWithVerificationRollsBack(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &users.User{Email: "a@example.com", Password: "hash", Role: auth.RoleClient}
	require.NoError(t, repo.CreateWithVerification(ctx, first, &users.Verification{Code: "dup"}))

	second := &users.User{Email: "b@example.com", Password: "hash", Role: auth.RoleClient}
	require.Error(t, repo.CreateWithVerification(ctx, second, &users.Verification{Code: "dup"}))
	assert.Zero(t, second.ID)

	_, err := repo.FindByEmail(ctx, "b@example.com")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestRestaurantRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := &users.User{Email: "owner@example.com", Password: "hash", Role: auth.RoleOwner}
	require.NoError(t, NewUserRepository(db).CreateWithVerification(ctx, owner, &users.Verification{Code: "owner-code"}))

	repo := NewRestaurantRepository(db)
	cat := &restaurants.Category{Name: "pizza", Slug: "pizza"}
	require.NoError(t, repo.CreateCategory(ctx, cat))

	for _, name := range []string{"Napoli", "Pizza 100%", "Roma"} {
		require.NoError(t, repo.CreateRestaurant(ctx, &restaurants.Restaurant{
			Name: name, Address: "a", CategoryID: &cat.ID, OwnerID: owner.ID,
		}))
	}

	list, total, err := repo.ListRestaurants(ctx, restaurants.Page{Number: 2, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 1)
	assert.Equal(t, "Roma", list[0].Name)
	require.NotNil(t, list[0].Category)

	found, total, err := repo.SearchRestaurants(ctx, "100%", restaurants.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Pizza 100%", found[0].Name)

	n, err := repo.CountRestaurantsByCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	dish := &restaurants.Dish{Name: "Margherita", Price: 12, RestaurantID: list[0].ID,
		Options: []restaurants.DishOption{{Name: "Size"}}}
	require.NoError(t, repo.CreateDish(ctx, dish))

	withMenu, err := repo.FindRestaurant(ctx, list[0].ID, true)
	require.NoError(t, err)
	require.Len(t, withMenu.Menu, 1)
	assert.Equal(t, "Size", withMenu.Menu[0].Options[0].Name)

	listed, _, err := repo.ListRestaurants(ctx, restaurants.Page{Number: 2, Size: 2})
	require.NoError(t, err)
	require.Len(t, listed[0].Menu, 1)
	assert.Equal(t, "Margherita", listed[0].Menu[0].Name)

	require.NoError(t, repo.DeleteRestaurant(ctx, list[0].ID))
	_, err = repo.FindDish(ctx, dish.ID)
	assert.ErrorIs(t, err, restaurants.ErrNotFound)
}
