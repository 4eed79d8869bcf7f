// Package storage provides persistent storage for viewer preferences and the
// render manifest.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessalgebra"

// GetDataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/chessalgebra/
// - Linux: ~/.local/share/chessalgebra/
// - Windows: %APPDATA%/chessalgebra/
func GetDataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// Linux and other Unix-like: honor XDG_DATA_HOME before falling
		// back to ~/.local/share/.
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// GetOutputDir returns the default directory for rendered PNGs and GIFs.
func GetOutputDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	outDir := filepath.Join(dataDir, "renders")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}

	return outDir, nil
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	return dbDir, nil
}
