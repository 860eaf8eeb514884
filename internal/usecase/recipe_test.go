package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/yamori/recipebook/internal/domain"
)

type mockRecipeRepo struct {
	recipes      map[int64]domain.Recipe
	createdOwner int64
	createdInput RecipeInput
	imageOwner   int64
	imageRef     string
}

func newMockRecipeRepo(recipes ...domain.Recipe) *mockRecipeRepo {
	m := &mockRecipeRepo{recipes: map[int64]domain.Recipe{}}
	for _, rec := range recipes {
		m.recipes[rec.ID] = rec
	}
	return m
}

func (m *mockRecipeRepo) ListByOwner(ctx context.Context, ownerID int64, filter RecipeFilter) ([]domain.Recipe, error) {
	var out []domain.Recipe
	for _, rec := range m.recipes {
		if rec.UserID == ownerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockRecipeRepo) GetOwned(ctx context.Context, ownerID, id int64) (domain.Recipe, error) {
	rec, ok := m.recipes[id]
	if !ok || rec.UserID != ownerID {
		return domain.Recipe{}, domain.NotFoundError{Resource: "recipe"}
	}
	return rec, nil
}

func (m *mockRecipeRepo) Create(ctx context.Context, ownerID int64, input RecipeInput) (domain.Recipe, error) {
	m.createdOwner = ownerID
	m.createdInput = input
	return domain.Recipe{ID: 1, UserID: ownerID, Title: input.Title}, nil
}

func (m *mockRecipeRepo) Update(ctx context.Context, ownerID, id int64, patch RecipePatch) (domain.Recipe, error) {
	return m.GetOwned(ctx, ownerID, id)
}

func (m *mockRecipeRepo) Delete(ctx context.Context, ownerID, id int64) error {
	_, err := m.GetOwned(ctx, ownerID, id)
	return err
}

func (m *mockRecipeRepo) SetImage(ctx context.Context, ownerID, id int64, ref string) (domain.Recipe, error) {
	rec, err := m.GetOwned(ctx, ownerID, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	m.imageOwner = ownerID
	m.imageRef = ref
	rec.Image = &ref
	m.recipes[id] = rec
	return rec, nil
}

type mockImageStore struct {
	saved  []byte
	format string
	ref    string
}

func (m *mockImageStore) Save(ctx context.Context, format string, data []byte) (string, error) {
	m.saved = data
	m.format = format
	if m.ref == "" {
		m.ref = "recipes/test.png"
	}
	return m.ref, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestRecipeCreateInjectsOwner(t *testing.T) {
	repo := newMockRecipeRepo()
	uc := NewRecipeUsecase(repo, &mockImageStore{})

	rec, err := uc.Create(context.Background(), 9, RecipeInput{Title: "Dal", TagIDs: []int64{1, 2}})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if repo.createdOwner != 9 || rec.UserID != 9 {
		t.Fatalf("expected owner 9, got repo=%d rec=%d", repo.createdOwner, rec.UserID)
	}
	if len(repo.createdInput.TagIDs) != 2 {
		t.Fatalf("expected tag ids to pass through, got %+v", repo.createdInput)
	}
}

func TestRecipeAttachImage(t *testing.T) {
	repo := newMockRecipeRepo(domain.Recipe{ID: 5, UserID: 9, Title: "Dal"})
	store := &mockImageStore{}
	uc := NewRecipeUsecase(repo, store)

	rec, err := uc.AttachImage(context.Background(), 9, 5, pngBytes(t))
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	if store.format != "png" {
		t.Fatalf("expected detected format png, got %q", store.format)
	}
	if rec.Image == nil || *rec.Image != store.ref {
		t.Fatalf("expected image ref %q, got %+v", store.ref, rec.Image)
	}
}

func TestRecipeAttachImageInvalidPayload(t *testing.T) {
	repo := newMockRecipeRepo(domain.Recipe{ID: 5, UserID: 9})
	store := &mockImageStore{}
	uc := NewRecipeUsecase(repo, store)

	_, err := uc.AttachImage(context.Background(), 9, 5, []byte("definitely not an image"))

	var ve domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := ve.Fields["image"]; !ok {
		t.Fatalf("expected image field error, got %+v", ve.Fields)
	}
	if store.saved != nil {
		t.Fatalf("store must not be touched on invalid payload")
	}
	if repo.imageRef != "" {
		t.Fatalf("image reference must be unchanged")
	}
}

func TestRecipeAttachImageForeignRecipeIsNotFound(t *testing.T) {
	repo := newMockRecipeRepo(domain.Recipe{ID: 5, UserID: 9})
	store := &mockImageStore{}
	uc := NewRecipeUsecase(repo, store)

	// Owned by user 9, requested by user 10. Must fail before validation
	// even with a valid payload.
	_, err := uc.AttachImage(context.Background(), 10, 5, pngBytes(t))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if store.saved != nil {
		t.Fatalf("store must not be touched for foreign recipes")
	}
}

func TestRecipeGetForeignIsNotFound(t *testing.T) {
	repo := newMockRecipeRepo(domain.Recipe{ID: 5, UserID: 9})
	uc := NewRecipeUsecase(repo, &mockImageStore{})

	_, err := uc.Get(context.Background(), 10, 5)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRecipeListEmptyIsNotAnError(t *testing.T) {
	uc := NewRecipeUsecase(newMockRecipeRepo(), &mockImageStore{})

	recipes, err := uc.List(context.Background(), 1, RecipeFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if recipes == nil || len(recipes) != 0 {
		t.Fatalf("expected empty slice, got %+v", recipes)
	}
}
