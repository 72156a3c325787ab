package themeprefs

import "time"

// AnonymousUser keys the preferences stored before anyone signs in.
const AnonymousUser = "-"

// ThemePrefs is the last theme selection a user made.
type ThemePrefs struct {
	ID          int64
	UserID      string
	Variant     string
	Mode        string
	ColorScheme string
	UpdatedAt   time.Time
}
