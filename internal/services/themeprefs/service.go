// Package themeprefs provides a best-effort service over the theme
// preference repository.
package themeprefs

import (
	"nathanbeddoewebdev/hirectl/internal/theme"
	"nathanbeddoewebdev/hirectl/internal/themeprefs"

	"go.uber.org/zap"
)

// Selection is a parsed theme triple.
type Selection struct {
	Variant theme.Variant
	Mode    theme.Mode
	Scheme  theme.ColorScheme
}

// Service wraps the themeprefs repository with higher-level operations.
// A nil repository turns every call into a no-op. Storage failures are
// logged at debug level and never surface to the caller.
type Service struct {
	repo themeprefs.Repository
	log  *zap.Logger
}

// NewService creates a new preferences service. A nil logger discards.
func NewService(repo themeprefs.Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log.Named("themeprefs")}
}

// Close releases repository resources.
func (s *Service) Close() error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Close()
}

// Load returns the stored selection for a user. ok is false when nothing
// is stored or the stored row no longer parses.
func (s *Service) Load(userID string) (sel Selection, ok bool) {
	if s.repo == nil {
		return Selection{}, false
	}
	p, err := s.repo.Get(key(userID))
	if err != nil {
		s.log.Debug("failed to load theme preferences", zap.String("user_id", userID), zap.Error(err))
		return Selection{}, false
	}
	if p == nil {
		return Selection{}, false
	}
	v, okV := theme.ParseVariant(p.Variant)
	m, okM := theme.ParseMode(p.Mode)
	c, okC := theme.ParseColorScheme(p.ColorScheme)
	if !okV || !okM || !okC {
		s.log.Debug("ignoring stored theme preferences",
			zap.String("user_id", userID),
			zap.String("variant", p.Variant),
			zap.String("mode", p.Mode),
			zap.String("scheme", p.ColorScheme),
		)
		return Selection{}, false
	}
	return Selection{Variant: v, Mode: m, Scheme: c}, true
}

// Remember persists the selection for a user (best-effort).
func (s *Service) Remember(userID string, sel Selection) {
	if s.repo == nil {
		return
	}
	err := s.repo.Save(&themeprefs.ThemePrefs{
		UserID:      key(userID),
		Variant:     string(sel.Variant),
		Mode:        string(sel.Mode),
		ColorScheme: string(sel.Scheme),
	})
	if err != nil {
		s.log.Debug("failed to save theme preferences", zap.String("user_id", userID), zap.Error(err))
	}
}

func key(userID string) string {
	if userID == "" {
		return themeprefs.AnonymousUser
	}
	return userID
}
