package save

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

const appDirName = "octoplat"

// DataDir returns the platform data directory for the game:
// %APPDATA%/octoplat on Windows, ~/Library/Application Support/octoplat
// on macOS, $XDG_DATA_HOME/octoplat or ~/.local/share/octoplat
// elsewhere.
func DataDir() string {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			if profile := os.Getenv("USERPROFILE"); profile != "" {
				base = filepath.Join(profile, "AppData", "Roaming")
			}
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			base = filepath.Join(home, "Library", "Application Support")
		}
	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			if home, err := os.UserHomeDir(); err == nil {
				base = filepath.Join(home, ".local", "share")
			}
		}
	}
	if base == "" {
		base = "."
	}
	return filepath.Join(base, appDirName)
}

// UserLevelsDir returns the directory for user-created levels.
func UserLevelsDir() string {
	return filepath.Join(DataDir(), "levels")
}

// UserLevelPath returns the file path for a user level by name.
func UserLevelPath(name string) string {
	return filepath.Join(UserLevelsDir(), SanitizeFilename(name)+".txt")
}

// SanitizeFilename turns a level name into a safe file stem: lowercase,
// spaces and hyphens to underscores, anything else non-alphanumeric to
// underscores, consecutive underscores collapsed. Idempotent.
func SanitizeFilename(name string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '_'
	}, name)

	parts := strings.FieldsFunc(mapped, func(r rune) bool { return r == '_' })
	return strings.Join(parts, "_")
}

// WriteUserLevel stores a level body under the user levels directory,
// using a temp file and rename so an interrupted write cannot corrupt an
// existing level.
func WriteUserLevel(name, body string) (string, error) {
	dir := UserLevelsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create levels dir: %w", err)
	}

	path := UserLevelPath(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("write level %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("finalize level %s: %w", name, err)
	}
	return path, nil
}
