package cas_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"go.trai.ch/jsxload/internal/adapters/cas"
	"go.trai.ch/jsxload/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "cache.json")

	store, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	entry := domain.CachedTransform{
		Key:       "a1b2",
		Code:      "var w = React.createElement(Widget, null);",
		SourceMap: []byte(`{"version":3}`),
		Timestamp: time.Now(),
	}
	if err := store.Put(entry); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get("a1b2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.Code != entry.Code {
		t.Errorf("expected Code %q, got %q", entry.Code, got.Code)
	}
}

func TestStore_GetMissing(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "cache.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	got, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "nested", "cache.json")

	store1, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 1 failed: %v", err)
	}
	if err := store1.Put(domain.CachedTransform{Key: "k", Code: "xyz", SourceMap: []byte("{}")}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	store2, err := cas.Open(storePath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	got, err := store2.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.Code != "xyz" {
		t.Errorf("expected Code %q, got %q", "xyz", got.Code)
	}
	if string(got.SourceMap) != "{}" {
		t.Errorf("expected SourceMap %q, got %q", "{}", got.SourceMap)
	}
}

func TestStore_OmitZero(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "cache.json")

	store, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := store.Put(domain.CachedTransform{Key: "empty"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	jsonStr := string(content)
	for _, field := range []string{"code", "source_map", "timestamp"} {
		if strings.Contains(jsonStr, `"`+field+`"`) {
			t.Errorf("JSON should not contain %q for zero value: %s", field, jsonStr)
		}
	}
	if !strings.Contains(jsonStr, `"key"`) {
		t.Error("JSON should contain 'key'")
	}
}

func TestStore_RejectsEmptyKey(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "cache.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := store.Put(domain.CachedTransform{Code: "x"}); err == nil {
		t.Error("expected an error for an entry without key")
	}
}

func TestStore_CorruptFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "cache.json")
	if err := os.WriteFile(storePath, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := cas.NewStore(storePath); err == nil {
		t.Error("expected an error for a corrupt cache file")
	}
}

func TestStore_ConcurrentPut(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "cache.json")
	store, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	var wg sync.WaitGroup
	for _, key := range []string{"a", "b", "c", "d"} {
		wg.Go(func() {
			if err := store.Put(domain.CachedTransform{Key: key, Code: key}); err != nil {
				t.Errorf("Put %s failed: %v", key, err)
			}
		})
	}
	wg.Wait()

	reopened, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	for _, key := range []string{"a", "b", "c", "d"} {
		if got, _ := reopened.Get(key); got == nil {
			t.Errorf("expected %s to be persisted", key)
		}
	}
}
