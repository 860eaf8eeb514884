package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalImageStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalImageStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ref, err := store.Save(context.Background(), "png", []byte("blob"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if !strings.HasPrefix(ref, "recipes"+string(os.PathSeparator)) {
		t.Fatalf("expected ref under recipes/, got %q", ref)
	}
	if !strings.HasSuffix(ref, ".png") {
		t.Fatalf("expected .png extension, got %q", ref)
	}

	data, err := os.ReadFile(filepath.Join(dir, ref))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "blob" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestLocalImageStoreUniqueNames(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	a, err := store.Save(context.Background(), "jpeg", []byte("a"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := store.Save(context.Background(), "jpeg", []byte("b"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if a == b {
		t.Fatalf("expected distinct references, got %q twice", a)
	}
}
