package themeprefs

import (
	"errors"
	"path/filepath"
	"testing"

	"nathanbeddoewebdev/hirectl/internal/theme"
	"nathanbeddoewebdev/hirectl/internal/themeprefs"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newService(t *testing.T) *Service {
	t.Helper()
	repo, err := themeprefs.OpenAt(filepath.Join(t.TempDir(), "hirectl.db"))
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	s := NewService(repo, nil)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRememberAndLoad(t *testing.T) {
	s := newService(t)
	want := Selection{Variant: theme.VariantTalent, Mode: theme.ModeAuto, Scheme: theme.SchemeColorblind}

	s.Remember("u1", want)

	got, ok := s.Load("u1")
	if !ok {
		t.Fatal("expected stored selection")
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoad_AnonymousUser(t *testing.T) {
	s := newService(t)
	s.Remember("", Selection{Variant: theme.VariantTeams, Mode: theme.ModeDark, Scheme: theme.SchemeDefault})

	if _, ok := s.Load(""); !ok {
		t.Error("anonymous selection not found")
	}
	if _, ok := s.Load("u1"); ok {
		t.Error("anonymous selection leaked to a signed-in user")
	}
}

func TestLoad_InvalidStoredValues(t *testing.T) {
	repo, err := themeprefs.OpenAt(filepath.Join(t.TempDir(), "hirectl.db"))
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	if err := repo.Save(&themeprefs.ThemePrefs{UserID: "u1", Variant: "purple", Mode: "dark"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	s := NewService(repo, nil)
	defer s.Close()

	if _, ok := s.Load("u1"); ok {
		t.Error("expected invalid stored values to be ignored")
	}
}

func TestNilRepository(t *testing.T) {
	s := NewService(nil, nil)
	s.Remember("u1", Selection{})
	if _, ok := s.Load("u1"); ok {
		t.Error("nil repository returned a selection")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

// failingRepo rejects every write.
type failingRepo struct {
	themeprefs.Repository
}

func (failingRepo) Save(*themeprefs.ThemePrefs) error { return errors.New("disk full") }

func TestRemember_LogsSaveFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewService(failingRepo{}, zap.New(core))

	s.Remember("u1", Selection{Variant: theme.VariantTalent, Mode: theme.ModeDark, Scheme: theme.SchemeDefault})

	entries := logs.FilterMessage("failed to save theme preferences").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["user_id"] != "u1" || fields["error"] != "disk full" {
		t.Errorf("unexpected fields: %v", fields)
	}
}
