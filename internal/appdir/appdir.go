// Package appdir resolves per-user application directories following each
// platform's convention.
package appdir

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the per-user data directory for app. Nothing is created.
//
//   - darwin: ~/Library/Application Support/<app>
//   - windows: %AppData%\<app>
//   - everything else: $XDG_DATA_HOME/<app> or ~/.local/share/<app>
func DataDir(app string) (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve application data directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", app), nil

	case "windows":
		if appData := os.Getenv("AppData"); appData != "" {
			return filepath.Join(appData, app), nil
		}
		return "", fmt.Errorf("failed to resolve application data directory: AppData is not set")

	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, app), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve application data directory: %w", err)
		}
		return filepath.Join(home, ".local", "share", app), nil
	}
}

// NotesDir returns the notes directory under the app's data directory.
func NotesDir(app string) (string, error) {
	dir, err := DataDir(app)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "notes"), nil
}
