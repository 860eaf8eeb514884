package usecase

import (
	"context"
	"testing"

	"github.com/yamori/recipebook/internal/domain"
)

type mockTagRepo struct {
	tags         []domain.Tag
	listedOwner  int64
	createdOwner int64
	createdName  string
}

func (m *mockTagRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Tag, error) {
	m.listedOwner = ownerID
	return m.tags, nil
}

func (m *mockTagRepo) Create(ctx context.Context, ownerID int64, name string) (domain.Tag, error) {
	m.createdOwner = ownerID
	m.createdName = name
	return domain.Tag{ID: 1, UserID: ownerID, Name: name}, nil
}

func TestOwnedAttributesListScopesToOwner(t *testing.T) {
	repo := &mockTagRepo{tags: []domain.Tag{
		{ID: 3, UserID: 7, Name: "Zesty"},
		{ID: 1, UserID: 7, Name: "Mild"},
		{ID: 2, UserID: 7, Name: "Acidic"},
	}}
	uc := NewOwnedAttributes[domain.Tag](repo)

	tags, err := uc.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if repo.listedOwner != 7 {
		t.Fatalf("expected owner 7, got %d", repo.listedOwner)
	}
	if len(tags) != 3 || tags[0].Name != "Zesty" || tags[2].Name != "Acidic" {
		t.Fatalf("unexpected ordering: %+v", tags)
	}
}

func TestOwnedAttributesListEmptyIsNotAnError(t *testing.T) {
	uc := NewOwnedAttributes[domain.Tag](&mockTagRepo{})

	tags, err := uc.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if tags == nil || len(tags) != 0 {
		t.Fatalf("expected empty slice, got %+v", tags)
	}
}

func TestOwnedAttributesCreateInjectsOwner(t *testing.T) {
	repo := &mockTagRepo{}
	uc := NewOwnedAttributes[domain.Tag](repo)

	tag, err := uc.Create(context.Background(), 42, "Vegan")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if repo.createdOwner != 42 {
		t.Fatalf("expected owner 42, got %d", repo.createdOwner)
	}
	if tag.UserID != 42 || tag.Name != "Vegan" {
		t.Fatalf("unexpected tag: %+v", tag)
	}
}
