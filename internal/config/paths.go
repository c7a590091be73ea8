package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// projectMarkers are directories that indicate project root.
var projectMarkers = []string{ProjectConfigDir, ".git"}

// FindProjectRoot walks up from startDir looking for a .showcase or .git
// directory. It returns the directory holding the marker, or startDir when
// none is found.
func FindProjectRoot(startDir string) string {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "."
		}
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return startDir
	}

	dir := absDir
	for {
		for _, marker := range projectMarkers {
			if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return absDir
		}
		dir = parent
	}
}

// ResolvePaths makes every relative file path in cfg absolute against
// basePath. An empty basePath means the working directory.
func (c *Config) ResolvePaths(basePath string) error {
	if basePath == "" {
		var err error
		basePath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
	}

	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(basePath, p)
	}

	c.Content.Path = resolve(c.Content.Path)
	c.Paths.Log = resolve(c.Paths.Log)
	c.Paths.TUILog = resolve(c.Paths.TUILog)
	return nil
}
