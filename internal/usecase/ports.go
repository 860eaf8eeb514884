package usecase

import (
	"context"

	"github.com/yamori/recipebook/internal/domain"
)

// AttributeRepository defines storage for user-owned recipe attributes
// (tags, ingredients), parameterized by the entity type. ListByOwner returns
// records ordered by name descending.
type AttributeRepository[T any] interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]T, error)
	Create(ctx context.Context, ownerID int64, name string) (T, error)
}

// RecipeFilter narrows a recipe listing to recipes referencing any of the
// given tag/ingredient IDs. Empty slices mean no filtering.
type RecipeFilter struct {
	TagIDs        []int64
	IngredientIDs []int64
}

// RecipeInput is the validated, owner-free payload for creating a recipe.
// The owner is injected separately and never comes from client input.
type RecipeInput struct {
	Title         string
	TimeMinutes   int
	Price         float64
	Link          string
	TagIDs        []int64
	IngredientIDs []int64
}

// RecipePatch is a partial update. Nil fields are left untouched.
type RecipePatch struct {
	Title         *string
	TimeMinutes   *int
	Price         *float64
	Link          *string
	TagIDs        *[]int64
	IngredientIDs *[]int64
}

// RecipeRepository defines storage for recipes. Every lookup is scoped to
// the owner so foreign records behave exactly like absent ones.
type RecipeRepository interface {
	ListByOwner(ctx context.Context, ownerID int64, filter RecipeFilter) ([]domain.Recipe, error)
	GetOwned(ctx context.Context, ownerID, id int64) (domain.Recipe, error)
	Create(ctx context.Context, ownerID int64, input RecipeInput) (domain.Recipe, error)
	Update(ctx context.Context, ownerID, id int64, patch RecipePatch) (domain.Recipe, error)
	Delete(ctx context.Context, ownerID, id int64) error
	SetImage(ctx context.Context, ownerID, id int64, ref string) (domain.Recipe, error)
}

// UserRepository defines persistence/lookup for users.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Get(ctx context.Context, id int64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
}

// TokenRepository stores issued bearer tokens.
type TokenRepository interface {
	Store(ctx context.Context, token string, userID int64) error
	Resolve(ctx context.Context, token string) (int64, error)
}

// ImageStore persists an image blob and returns a stable reference.
type ImageStore interface {
	Save(ctx context.Context, format string, data []byte) (string, error)
}
