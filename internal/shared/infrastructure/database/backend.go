// Package database provides storage backend selection and connection helpers.
package database

import (
	"os"
	"path/filepath"
	"strings"
)

// Backend identifies a storage backend for the completion and activity logs.
type Backend string

const (
	// BackendSQLite is the zero-config local default.
	BackendSQLite Backend = "sqlite"
	// BackendPostgres serves shared-host deployments.
	BackendPostgres Backend = "postgres"
	// BackendFile stores logs as JSON files with atomic writes.
	BackendFile Backend = "file"
)

// IsValid reports whether the backend is a known type.
func (b Backend) IsValid() bool {
	switch b {
	case BackendSQLite, BackendPostgres, BackendFile:
		return true
	default:
		return false
	}
}

// DetectBackend resolves the backend from an explicit setting and a connection
// URL. Empty settings fall back to local SQLite so the CLI works with no
// configuration at all.
func DetectBackend(explicit string, url string) Backend {
	if b := Backend(strings.ToLower(strings.TrimSpace(explicit))); b.IsValid() {
		return b
	}
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return BackendPostgres
	}
	return BackendSQLite
}

// DefaultDataDir returns the directory holding local daybrief data.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".daybrief"
	}
	return filepath.Join(home, ".daybrief")
}

// EnsureDirectory creates the parent directory for a file path if needed.
func EnsureDirectory(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
