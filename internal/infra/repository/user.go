package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yamori/recipebook/internal/domain"
	"github.com/yamori/recipebook/internal/infra/database/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	row := models.User{
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.User{}, domain.NewFieldError("email", "already in use")
		}
		return domain.User{}, err
	}
	return userToDomain(row), nil
}

func (r *UserRepository) Get(ctx context.Context, id int64) (domain.User, error) {
	var row models.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return domain.User{}, translateNotFound(err, "user")
	}
	return userToDomain(row), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var row models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&row).Error
	if err != nil {
		return domain.User{}, translateNotFound(err, "user")
	}
	return userToDomain(row), nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":          user.Name,
			"password_hash": user.PasswordHash,
		}).Error
	if err != nil {
		return domain.User{}, err
	}
	return r.Get(ctx, user.ID)
}

func userToDomain(row models.User) domain.User {
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
	}
}
