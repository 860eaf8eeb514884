package presenter

import (
	"github.com/yamori/recipebook/internal/domain"
)

// RecipeSummary is the lightweight representation used for list, create and
// update responses. Tags and ingredients are plain ID references.
type RecipeSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	TimeMinutes int     `json:"time_minutes"`
	Price       float64 `json:"price"`
	Link        string  `json:"link"`
	Tags        []int64 `json:"tags"`
	Ingredients []int64 `json:"ingredients"`
	Image       *string `json:"image"`
}

// RecipeDetail is the retrieve representation with nested tag/ingredient
// objects.
type RecipeDetail struct {
	ID          int64               `json:"id"`
	Title       string              `json:"title"`
	TimeMinutes int                 `json:"time_minutes"`
	Price       float64             `json:"price"`
	Link        string              `json:"link"`
	Tags        []domain.Tag        `json:"tags"`
	Ingredients []domain.Ingredient `json:"ingredients"`
	Image       *string             `json:"image"`
}

// RecipeImage is the image-only representation returned by upload_image.
type RecipeImage struct {
	ID    int64   `json:"id"`
	Image *string `json:"image"`
}

// Recipe selects the representation for a single recipe as a pure function
// of the action.
func Recipe(action domain.Action, rec domain.Recipe) any {
	switch action {
	case domain.ActionRetrieve:
		return recipeDetail(rec)
	case domain.ActionUploadImage:
		return RecipeImage{ID: rec.ID, Image: rec.Image}
	default:
		return recipeSummary(rec)
	}
}

// Recipes renders a listing in the summary representation.
func Recipes(recs []domain.Recipe) []RecipeSummary {
	out := make([]RecipeSummary, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recipeSummary(rec))
	}
	return out
}

func recipeSummary(rec domain.Recipe) RecipeSummary {
	tagIDs := make([]int64, 0, len(rec.Tags))
	for _, t := range rec.Tags {
		tagIDs = append(tagIDs, t.ID)
	}
	ingredientIDs := make([]int64, 0, len(rec.Ingredients))
	for _, i := range rec.Ingredients {
		ingredientIDs = append(ingredientIDs, i.ID)
	}

	return RecipeSummary{
		ID:          rec.ID,
		Title:       rec.Title,
		TimeMinutes: rec.TimeMinutes,
		Price:       rec.Price,
		Link:        rec.Link,
		Tags:        tagIDs,
		Ingredients: ingredientIDs,
		Image:       rec.Image,
	}
}

func recipeDetail(rec domain.Recipe) RecipeDetail {
	tags := rec.Tags
	if tags == nil {
		tags = []domain.Tag{}
	}
	ingredients := rec.Ingredients
	if ingredients == nil {
		ingredients = []domain.Ingredient{}
	}

	return RecipeDetail{
		ID:          rec.ID,
		Title:       rec.Title,
		TimeMinutes: rec.TimeMinutes,
		Price:       rec.Price,
		Link:        rec.Link,
		Tags:        tags,
		Ingredients: ingredients,
		Image:       rec.Image,
	}
}
