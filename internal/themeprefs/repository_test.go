package themeprefs

import (
	"path/filepath"
	"testing"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	r, err := OpenAt(filepath.Join(t.TempDir(), "hirectl.db"))
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestGet_NotFound(t *testing.T) {
	r := tempRepo(t)

	got, err := r.Get("nobody")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestSave_Upserts(t *testing.T) {
	r := tempRepo(t)

	first := &ThemePrefs{UserID: "u1", Variant: "talent", Mode: "dark", ColorScheme: "default"}
	if err := r.Save(first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected ID to be assigned")
	}

	second := &ThemePrefs{UserID: "u1", Variant: "talent", Mode: "light", ColorScheme: "high-contrast"}
	if err := r.Save(second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert changed ID from %d to %d", first.ID, second.ID)
	}

	got, err := r.Get("u1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Mode != "light" || got.ColorScheme != "high-contrast" {
		t.Errorf("got %+v, want updated values", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestDelete(t *testing.T) {
	r := tempRepo(t)

	if err := r.Save(&ThemePrefs{UserID: "u1", Variant: "teams"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := r.Delete("u1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, err := r.Get("u1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}
}
