package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yamori/recipebook/internal/domain"
	"github.com/yamori/recipebook/internal/infra/database/models"
)

// TagRepository implements usecase.AttributeRepository[domain.Tag].
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Tag, error) {
	var rows []models.Tag
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	tags := make([]domain.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, tagToDomain(row))
	}
	return tags, nil
}

func (r *TagRepository) Create(ctx context.Context, ownerID int64, name string) (domain.Tag, error) {
	row := models.Tag{
		UserID: ownerID,
		Name:   name,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Tag{}, err
	}
	return tagToDomain(row), nil
}

// IngredientRepository implements usecase.AttributeRepository[domain.Ingredient].
type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Ingredient, error) {
	var rows []models.Ingredient
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	ingredients := make([]domain.Ingredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, ingredientToDomain(row))
	}
	return ingredients, nil
}

func (r *IngredientRepository) Create(ctx context.Context, ownerID int64, name string) (domain.Ingredient, error) {
	row := models.Ingredient{
		UserID: ownerID,
		Name:   name,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Ingredient{}, err
	}
	return ingredientToDomain(row), nil
}

func tagToDomain(row models.Tag) domain.Tag {
	return domain.Tag{ID: row.ID, UserID: row.UserID, Name: row.Name}
}

func ingredientToDomain(row models.Ingredient) domain.Ingredient {
	return domain.Ingredient{ID: row.ID, UserID: row.UserID, Name: row.Name}
}

func translateNotFound(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFoundError{Resource: resource}
	}
	return err
}
