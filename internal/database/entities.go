package database

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
)

type UserEntity struct {
	ID        int64  `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"type:text;not null"`
	Role      string `gorm:"size:16;not null"`
	Verified  bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserEntity) TableName() string { return "users" }

type VerificationEntity struct {
	ID        int64      `gorm:"primaryKey"`
	Code      string     `gorm:"uniqueIndex;size:64;not null"`
	UserID    int64      `gorm:"index;not null"`
	User      UserEntity `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

func (VerificationEntity) TableName() string { return "verifications" }

type CategoryEntity struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:128;not null"`
	CoverImg  string `gorm:"type:text"`
	Slug      string `gorm:"uniqueIndex;size:128;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoryEntity) TableName() string { return "categories" }

type RestaurantEntity struct {
	ID         int64  `gorm:"primaryKey"`
	Name       string `gorm:"size:60;not null;index"`
	CoverImg   string `gorm:"type:text"`
	Address    string `gorm:"type:text;not null"`
	CategoryID *int64
	Category   *CategoryEntity `gorm:"constraint:OnDelete:SET NULL"`
	OwnerID    int64           `gorm:"index;not null"`
	Owner      UserEntity      `gorm:"constraint:OnDelete:CASCADE"`
	Menu       []DishEntity    `gorm:"foreignKey:RestaurantID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (RestaurantEntity) TableName() string { return "restaurants" }

type DishEntity struct {
	ID           int64            `gorm:"primaryKey"`
	Name         string           `gorm:"size:128;not null"`
	Price        int              `gorm:"not null"`
	Photo        string           `gorm:"type:text"`
	Description  string           `gorm:"size:140"`
	RestaurantID int64            `gorm:"index;not null"`
	Restaurant   RestaurantEntity `gorm:"constraint:OnDelete:CASCADE"`
	Options      datatypes.JSON   `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (DishEntity) TableName() string { return "dishes" }

// ---------------------------------------------------------------------------
// mapping
// ---------------------------------------------------------------------------

func userFromEntity(e UserEntity) *users.User {
	return &users.User{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Email:     e.Email,
		Password:  e.Password,
		Role:      auth.Role(e.Role),
		Verified:  e.Verified,
	}
}

func userToEntity(u *users.User) UserEntity {
	return UserEntity{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		Role:      string(u.Role),
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func categoryFromEntity(e CategoryEntity) restaurants.Category {
	return restaurants.Category{ID: e.ID, Name: e.Name, CoverImg: e.CoverImg, Slug: e.Slug}
}

func restaurantFromEntity(e RestaurantEntity) (restaurants.Restaurant, error) {
	r := restaurants.Restaurant{
		ID:         e.ID,
		Name:       e.Name,
		CoverImg:   e.CoverImg,
		Address:    e.Address,
		CategoryID: e.CategoryID,
		OwnerID:    e.OwnerID,
	}
	if e.Category != nil {
		c := categoryFromEntity(*e.Category)
		r.Category = &c
	}
	for _, d := range e.Menu {
		dish, err := dishFromEntity(d)
		if err != nil {
			return restaurants.Restaurant{}, err
		}
		r.Menu = append(r.Menu, dish)
	}
	return r, nil
}

func restaurantsFromEntities(es []RestaurantEntity) ([]restaurants.Restaurant, error) {
	out := make([]restaurants.Restaurant, 0, len(es))
	for _, e := range es {
		r, err := restaurantFromEntity(e)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func dishFromEntity(e DishEntity) (restaurants.Dish, error) {
	d := restaurants.Dish{
		ID:           e.ID,
		Name:         e.Name,
		Price:        e.Price,
		Photo:        e.Photo,
		Description:  e.Description,
		RestaurantID: e.RestaurantID,
	}
	if len(e.Options) > 0 {
		if err := json.Unmarshal(e.Options, &d.Options); err != nil {
			return restaurants.Dish{}, fmt.Errorf("decode options of dish %d: %w", e.ID, err)
		}
	}
	return d, nil
}

func dishToEntity(d *restaurants.Dish) (DishEntity, error) {
	e := DishEntity{
		ID:           d.ID,
		Name:         d.Name,
		Price:        d.Price,
		Photo:        d.Photo,
		Description:  d.Description,
		RestaurantID: d.RestaurantID,
	}
	if d.Options != nil {
		raw, err := json.Marshal(d.Options)
		if err != nil {
			return DishEntity{}, fmt.Errorf("encode dish options: %w", err)
		}
		e.Options = datatypes.JSON(raw)
	}
	return e, nil
}
