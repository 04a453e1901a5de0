package tui

import "context"

// Database defines the persistence methods the TUI requires beyond the
// state store.
type Database interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}
