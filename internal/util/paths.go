package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir picks where the database, config.yaml and log live. An explicit
// dir wins, then <APP>_DATA_DIR, then $XDG_DATA_HOME/<app>, then
// ~/.local/share/<app>. The env var is read here rather than through viper
// because config.yaml itself lives in this directory.
func DataDir(app, dir string) string {
	if dir = strings.TrimSpace(dir); dir != "" {
		return expandHome(dir)
	}
	if env := strings.TrimSpace(os.Getenv(strings.ToUpper(app) + "_DATA_DIR")); env != "" {
		return expandHome(env)
	}
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is the default home for PDF day reports: <Documents>/<APP>/reports.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), strings.ToUpper(app), "reports")
}

// DocumentsDir honours XDG_DOCUMENTS_DIR from the environment or
// ~/.config/user-dirs.dirs before falling back to ~/Documents.
func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		if dir := userDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

func userDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		k, v, ok := strings.Cut(strings.TrimSpace(line), "=")
		if ok && k == key {
			return strings.Trim(v, `"`)
		}
	}
	return ""
}

// expandHome resolves a leading ~ and any $HOME in path.
func expandHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
