// Package storage implements the document store against the local
// filesystem.
package storage

import (
	"fmt"
	"os"

	"github.com/mdtidy/mdtidy/pkg/lint"
)

// FS reads and writes documents on the local filesystem. It implements
// lint.DocumentStore.
type FS struct{}

// NewFS returns a filesystem-backed store.
func NewFS() *FS {
	return &FS{}
}

// Read returns the document's text.
func (*FS) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Write replaces the document's text wholesale.
func (*FS) Write(path string, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Stat returns the document's timestamps. Creation time is not portable
// across filesystems, so the modification time stands in for both; the
// timestamp rule only reads the creation time when the front-matter key is
// missing.
func (*FS) Stat(path string) (lint.FileTimes, error) {
	info, err := os.Stat(path)
	if err != nil {
		return lint.FileTimes{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return lint.FileTimes{
		CreatedAt:  info.ModTime(),
		ModifiedAt: info.ModTime(),
	}, nil
}

var _ lint.DocumentStore = (*FS)(nil)
