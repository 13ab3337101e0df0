package prefs

import "context"

// Store persists the binary display-mode flag across sessions. Read once at
// startup by the presentation layer, written on every toggle.
type Store interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, dark bool) error
	Close() error
}
