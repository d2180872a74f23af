package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the account and catalogue tables.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&UserEntity{},
		&VerificationEntity{},
		&CategoryEntity{},
		&RestaurantEntity{},
		&DishEntity{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}
