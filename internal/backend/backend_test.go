package backend

import (
	"path/filepath"
	"testing"

	"tally/internal/config"
	"tally/internal/storage/flatfile"
	"tally/internal/storage/memory"
)

func TestTypeIsValid(t *testing.T) {
	cases := []struct {
		t  Type
		ok bool
	}{
		{FileBackend, true},
		{MemoryBackend, true},
		{Type("sqlite"), false},
		{Type(""), false},
	}
	for _, tc := range cases {
		if got := tc.t.IsValid(); got != tc.ok {
			t.Fatalf("%q: expected %v, got %v", tc.t, tc.ok, got)
		}
	}
}

func TestFromAppConfig(t *testing.T) {
	cfg, err := FromAppConfig(&config.Config{DataBackend: "file", LedgerFile: "x.csv"})
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if cfg.Type != FileBackend || cfg.LedgerFile != "x.csv" {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	if _, err := FromAppConfig(&config.Config{DataBackend: "postgres"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
	if _, err := FromAppConfig(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestCreateStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")

	store, err := CreateStore(Config{Type: FileBackend, LedgerFile: path}, nil)
	if err != nil {
		t.Fatalf("create file store: %v", err)
	}
	if fs, ok := store.(*flatfile.Store); !ok || fs.Path() != path {
		t.Fatalf("expected flatfile store at %q, got %T", path, store)
	}

	store, err = CreateStore(Config{Type: MemoryBackend}, nil)
	if err != nil {
		t.Fatalf("create memory store: %v", err)
	}
	if _, ok := store.(*memory.Store); !ok {
		t.Fatalf("expected memory store, got %T", store)
	}

	if _, err := CreateStore(Config{Type: Type("bogus")}, nil); err == nil {
		t.Fatalf("expected error for bogus backend")
	}
}
