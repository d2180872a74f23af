package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eats-backend/internal/app/restaurants"
)

// RestaurantRepository implements restaurants.Repository on PostgreSQL.
type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) CreateRestaurant(ctx context.Context, rest *restaurants.Restaurant) error {
	e := RestaurantEntity{
		Name:       rest.Name,
		CoverImg:   rest.CoverImg,
		Address:    rest.Address,
		CategoryID: rest.CategoryID,
		OwnerID:    rest.OwnerID,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&e).Error; err != nil {
		return fmt.Errorf("create restaurant: %w", err)
	}
	rest.ID = e.ID
	return nil
}

func (r *RestaurantRepository) UpdateRestaurant(ctx context.Context, rest *restaurants.Restaurant) error {
	res := r.db.WithContext(ctx).Model(&RestaurantEntity{ID: rest.ID}).Updates(map[string]any{
		"name":        rest.Name,
		"cover_img":   rest.CoverImg,
		"address":     rest.Address,
		"category_id": rest.CategoryID,
	})
	if res.Error != nil {
		return fmt.Errorf("update restaurant %d: %w", rest.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return restaurants.ErrNotFound
	}
	return nil
}

func (r *RestaurantRepository) DeleteRestaurant(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", id).Delete(&DishEntity{}).Error; err != nil {
			return err
		}
		return tx.Delete(&RestaurantEntity{}, id).Error
	})
}

func (r *RestaurantRepository) FindRestaurant(ctx context.Context, id int64, withMenu bool) (*restaurants.Restaurant, error) {
	q := r.db.WithContext(ctx).Preload("Category")
	if withMenu {
		q = q.Preload("Menu", orderByID)
	}
	var e RestaurantEntity
	if err := q.First(&e, id).Error; err != nil {
		return nil, notFound(err, restaurants.ErrNotFound)
	}
	out, err := restaurantFromEntity(e)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RestaurantRepository) ListRestaurants(ctx context.Context, page restaurants.Page) ([]restaurants.Restaurant, int64, error) {
	return r.list(r.db.WithContext(ctx).Model(&RestaurantEntity{}), page)
}

// SearchRestaurants matches names case-insensitively. LIKE wildcards in query
// are matched literally.
func (r *RestaurantRepository) SearchRestaurants(ctx context.Context, query string, page restaurants.Page) ([]restaurants.Restaurant, int64, error) {
	pattern := "%" + escapeLike(query) + "%"
	return r.list(r.db.WithContext(ctx).Model(&RestaurantEntity{}).Where("name ILIKE ?", pattern), page)
}

func (r *RestaurantRepository) ListRestaurantsByCategory(ctx context.Context, categoryID int64, page restaurants.Page) ([]restaurants.Restaurant, int64, error) {
	return r.list(r.db.WithContext(ctx).Model(&RestaurantEntity{}).Where("category_id = ?", categoryID), page)
}

func (r *RestaurantRepository) CountRestaurantsByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&RestaurantEntity{}).Where("category_id = ?", categoryID).Count(&n).Error
	return n, err
}

func (r *RestaurantRepository) list(q *gorm.DB, page restaurants.Page) ([]restaurants.Restaurant, int64, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count restaurants: %w", err)
	}
	var rows []RestaurantEntity
	if err := q.Session(&gorm.Session{}).
		Preload("Category").
		Preload("Menu", orderByID).
		Order("id").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list restaurants: %w", err)
	}
	out, err := restaurantsFromEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func (r *RestaurantRepository) FindCategoryBySlug(ctx context.Context, slug string) (*restaurants.Category, error) {
	var e CategoryEntity
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&e).Error; err != nil {
		return nil, notFound(err, restaurants.ErrNotFound)
	}
	c := categoryFromEntity(e)
	return &c, nil
}

func (r *RestaurantRepository) CreateCategory(ctx context.Context, c *restaurants.Category) error {
	e := CategoryEntity{Name: c.Name, CoverImg: c.CoverImg, Slug: c.Slug}
	if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	c.ID = e.ID
	return nil
}

func (r *RestaurantRepository) ListCategories(ctx context.Context) ([]restaurants.Category, error) {
	var rows []CategoryEntity
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]restaurants.Category, 0, len(rows))
	for _, e := range rows {
		out = append(out, categoryFromEntity(e))
	}
	return out, nil
}

func (r *RestaurantRepository) CreateDish(ctx context.Context, d *restaurants.Dish) error {
	e, err := dishToEntity(d)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&e).Error; err != nil {
		return fmt.Errorf("create dish: %w", err)
	}
	d.ID = e.ID
	return nil
}

func (r *RestaurantRepository) UpdateDish(ctx context.Context, d *restaurants.Dish) error {
	e, err := dishToEntity(d)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&DishEntity{ID: d.ID}).Updates(map[string]any{
		"name":        e.Name,
		"price":       e.Price,
		"photo":       e.Photo,
		"description": e.Description,
		"options":     e.Options,
	})
	if res.Error != nil {
		return fmt.Errorf("update dish %d: %w", d.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return restaurants.ErrNotFound
	}
	return nil
}

func (r *RestaurantRepository) DeleteDish(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&DishEntity{}, id).Error
}

func (r *RestaurantRepository) FindDish(ctx context.Context, id int64) (*restaurants.Dish, error) {
	var e DishEntity
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, notFound(err, restaurants.ErrNotFound)
	}
	d, err := dishFromEntity(e)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
