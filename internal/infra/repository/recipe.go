package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yamori/recipebook/internal/domain"
	"github.com/yamori/recipebook/internal/infra/database/models"
	"github.com/yamori/recipebook/internal/usecase"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func (r *RecipeRepository) ListByOwner(ctx context.Context, ownerID int64, filter usecase.RecipeFilter) ([]domain.Recipe, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Distinct("recipes.*").
		Where("recipes.user_id = ?", ownerID).
		Preload("Tags").
		Preload("Ingredients").
		Order("recipes.id DESC")

	if len(filter.TagIDs) > 0 {
		q = q.Joins("JOIN recipe_tags rt ON rt.recipe_id = recipes.id").
			Where("rt.tag_id IN ?", filter.TagIDs)
	}
	if len(filter.IngredientIDs) > 0 {
		q = q.Joins("JOIN recipe_ingredients ri ON ri.recipe_id = recipes.id").
			Where("ri.ingredient_id IN ?", filter.IngredientIDs)
	}

	var rows []models.Recipe
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, recipeToDomain(row))
	}
	return recipes, nil
}

func (r *RecipeRepository) GetOwned(ctx context.Context, ownerID, id int64) (domain.Recipe, error) {
	row, err := r.getOwned(ctx, r.db, ownerID, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	return recipeToDomain(row), nil
}

func (r *RecipeRepository) Create(ctx context.Context, ownerID int64, input usecase.RecipeInput) (domain.Recipe, error) {
	row := models.Recipe{
		UserID:      ownerID,
		Title:       input.Title,
		TimeMinutes: input.TimeMinutes,
		Price:       input.Price,
		Link:        input.Link,
		Tags:        tagRefs(input.TagIDs),
		Ingredients: ingredientRefs(input.IngredientIDs),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureRefsExist(tx, &models.Tag{}, "tags", input.TagIDs); err != nil {
			return err
		}
		if err := ensureRefsExist(tx, &models.Ingredient{}, "ingredients", input.IngredientIDs); err != nil {
			return err
		}

		// Omit("Tags.*") writes the join rows without touching the
		// referenced tag/ingredient records themselves.
		return tx.Omit("Tags.*", "Ingredients.*").Create(&row).Error
	})
	if err != nil {
		return domain.Recipe{}, err
	}

	return r.GetOwned(ctx, ownerID, row.ID)
}

func (r *RecipeRepository) Update(ctx context.Context, ownerID, id int64, patch usecase.RecipePatch) (domain.Recipe, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := r.getOwned(ctx, tx, ownerID, id)
		if err != nil {
			return err
		}

		updates := map[string]any{}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.TimeMinutes != nil {
			updates["time_minutes"] = *patch.TimeMinutes
		}
		if patch.Price != nil {
			updates["price"] = *patch.Price
		}
		if patch.Link != nil {
			updates["link"] = *patch.Link
		}
		if len(updates) > 0 {
			if err := tx.Model(&row).Updates(updates).Error; err != nil {
				return err
			}
		}

		if patch.TagIDs != nil {
			if err := ensureRefsExist(tx, &models.Tag{}, "tags", *patch.TagIDs); err != nil {
				return err
			}
			refs := tagRefs(*patch.TagIDs)
			if err := tx.Model(&row).Association("Tags").Replace(refs); err != nil {
				return err
			}
		}
		if patch.IngredientIDs != nil {
			if err := ensureRefsExist(tx, &models.Ingredient{}, "ingredients", *patch.IngredientIDs); err != nil {
				return err
			}
			refs := ingredientRefs(*patch.IngredientIDs)
			if err := tx.Model(&row).Association("Ingredients").Replace(refs); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return domain.Recipe{}, err
	}

	return r.GetOwned(ctx, ownerID, id)
}

func (r *RecipeRepository) Delete(ctx context.Context, ownerID, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := r.getOwned(ctx, tx, ownerID, id)
		if err != nil {
			return err
		}
		return tx.Select(clause.Associations).Delete(&row).Error
	})
}

func (r *RecipeRepository) SetImage(ctx context.Context, ownerID, id int64, ref string) (domain.Recipe, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("user_id = ? AND id = ?", ownerID, id).
		Update("image", ref)
	if result.Error != nil {
		return domain.Recipe{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Recipe{}, domain.NotFoundError{Resource: "recipe"}
	}

	return r.GetOwned(ctx, ownerID, id)
}

func (r *RecipeRepository) getOwned(ctx context.Context, tx *gorm.DB, ownerID, id int64) (models.Recipe, error) {
	var row models.Recipe
	err := tx.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		Preload("Tags").
		Preload("Ingredients").
		Take(&row).Error
	if err != nil {
		return models.Recipe{}, translateNotFound(err, "recipe")
	}
	return row, nil
}

// ensureRefsExist verifies every referenced ID has a matching row, so a
// payload naming an unknown tag/ingredient fails as a field-level
// validation error instead of a foreign-key violation at insert time.
// Existence only; ownership of the referenced rows is not checked.
func ensureRefsExist(tx *gorm.DB, model any, field string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	unique := map[int64]struct{}{}
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	var count int64
	if err := tx.Model(model).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(unique)) {
		return domain.NewFieldError(field, "unknown id")
	}
	return nil
}

func tagRefs(ids []int64) []models.Tag {
	refs := make([]models.Tag, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, models.Tag{ID: id})
	}
	return refs
}

func ingredientRefs(ids []int64) []models.Ingredient {
	refs := make([]models.Ingredient, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, models.Ingredient{ID: id})
	}
	return refs
}

func recipeToDomain(row models.Recipe) domain.Recipe {
	tags := make([]domain.Tag, 0, len(row.Tags))
	for _, t := range row.Tags {
		tags = append(tags, tagToDomain(t))
	}
	ingredients := make([]domain.Ingredient, 0, len(row.Ingredients))
	for _, i := range row.Ingredients {
		ingredients = append(ingredients, ingredientToDomain(i))
	}

	return domain.Recipe{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		TimeMinutes: row.TimeMinutes,
		Price:       row.Price,
		Link:        row.Link,
		Tags:        tags,
		Ingredients: ingredients,
		Image:       row.Image,
	}
}
