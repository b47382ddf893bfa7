package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (with parents) if it does not exist and returns it.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// AppDataDir returns the per-user data directory for the named application,
// creating it if needed. When the user config dir cannot be determined it
// falls back to a subdirectory of the current working directory.
func AppDataDir(app string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		base = cwd
	}

	return EnsureDir(filepath.Join(base, app))
}

// ResolveInDir returns path unchanged when absolute, otherwise joined
// under dir.
func ResolveInDir(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
