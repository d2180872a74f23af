package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eats-backend/internal/app/users"
)

// UserRepository implements users.Repository on PostgreSQL.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*users.User, error) {
	var e UserEntity
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, notFound(err, users.ErrNotFound)
	}
	return userFromEntity(e), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	var e UserEntity
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&e).Error; err != nil {
		return nil, notFound(err, users.ErrNotFound)
	}
	return userFromEntity(e), nil
}

// CreateWithVerification stores a new account together with its first
// verification code.
func (r *UserRepository) CreateWithVerification(ctx context.Context, u *users.User, v *users.Verification) error {
	e := userToEntity(u)
	ve := VerificationEntity{Code: v.Code}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&e).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		ve.UserID = e.ID
		if err := tx.Omit(clause.Associations).Create(&ve).Error; err != nil {
			return fmt.Errorf("create verification: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	u.ID, u.CreatedAt, u.UpdatedAt = e.ID, e.CreatedAt, e.UpdatedAt
	v.ID, v.UserID = ve.ID, e.ID
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *users.User) error {
	return updateUser(r.db.WithContext(ctx), u)
}

// UpdateWithVerification saves u, drops its outstanding codes and stores v.
func (r *UserRepository) UpdateWithVerification(ctx context.Context, u *users.User, v *users.Verification) error {
	ve := VerificationEntity{Code: v.Code, UserID: u.ID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateUser(tx, u); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", u.ID).Delete(&VerificationEntity{}).Error; err != nil {
			return fmt.Errorf("drop verifications of user %d: %w", u.ID, err)
		}
		if err := tx.Omit(clause.Associations).Create(&ve).Error; err != nil {
			return fmt.Errorf("create verification: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	v.ID, v.UserID = ve.ID, u.ID
	return nil
}

func (r *UserRepository) FindVerificationByCode(ctx context.Context, code string) (*users.Verification, error) {
	var e VerificationEntity
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&e).Error; err != nil {
		return nil, notFound(err, users.ErrNotFound)
	}
	return &users.Verification{ID: e.ID, Code: e.Code, UserID: e.UserID}, nil
}

func (r *UserRepository) ConfirmVerification(ctx context.Context, v *users.Verification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&UserEntity{ID: v.UserID}).Update("verified", true)
		if res.Error != nil {
			return fmt.Errorf("verify user %d: %w", v.UserID, res.Error)
		}
		if res.RowsAffected == 0 {
			return users.ErrNotFound
		}
		if err := tx.Delete(&VerificationEntity{}, v.ID).Error; err != nil {
			return fmt.Errorf("delete verification %d: %w", v.ID, err)
		}
		return nil
	})
}

func updateUser(db *gorm.DB, u *users.User) error {
	res := db.Model(&UserEntity{ID: u.ID}).Updates(map[string]any{
		"email":    u.Email,
		"password": u.Password,
		"role":     string(u.Role),
		"verified": u.Verified,
	})
	if res.Error != nil {
		return fmt.Errorf("update user %d: %w", u.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return users.ErrNotFound
	}
	return nil
}

// notFound maps gorm.ErrRecordNotFound onto the domain sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
