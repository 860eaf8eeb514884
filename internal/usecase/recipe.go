package usecase

import (
	"bytes"
	"context"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/yamori/recipebook/internal/domain"
)

type RecipeUsecase struct {
	repo   RecipeRepository
	images ImageStore
}

func NewRecipeUsecase(repo RecipeRepository, images ImageStore) *RecipeUsecase {
	return &RecipeUsecase{repo: repo, images: images}
}

func (u *RecipeUsecase) List(ctx context.Context, ownerID int64, filter RecipeFilter) ([]domain.Recipe, error) {
	recipes, err := u.repo.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return recipes, nil
}

func (u *RecipeUsecase) Get(ctx context.Context, ownerID, id int64) (domain.Recipe, error) {
	return u.repo.GetOwned(ctx, ownerID, id)
}

// Create persists a recipe owned by the requester. Ownership of the
// referenced tags/ingredients is not checked.
func (u *RecipeUsecase) Create(ctx context.Context, ownerID int64, input RecipeInput) (domain.Recipe, error) {
	return u.repo.Create(ctx, ownerID, input)
}

func (u *RecipeUsecase) Update(ctx context.Context, ownerID, id int64, patch RecipePatch) (domain.Recipe, error) {
	return u.repo.Update(ctx, ownerID, id, patch)
}

func (u *RecipeUsecase) Delete(ctx context.Context, ownerID, id int64) error {
	return u.repo.Delete(ctx, ownerID, id)
}

// AttachImage replaces the image of an owned recipe. The recipe is resolved
// before the payload is validated, so a foreign or absent ID answers
// not-found regardless of the blob. An undecodable blob is a field-level
// validation error and leaves the stored reference unchanged.
func (u *RecipeUsecase) AttachImage(ctx context.Context, ownerID, id int64, data []byte) (domain.Recipe, error) {
	if _, err := u.repo.GetOwned(ctx, ownerID, id); err != nil {
		return domain.Recipe{}, err
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return domain.Recipe{}, domain.NewFieldError("image", "upload a valid image")
	}

	ref, err := u.images.Save(ctx, format, data)
	if err != nil {
		return domain.Recipe{}, err
	}

	return u.repo.SetImage(ctx, ownerID, id, ref)
}
