// Package storage handles uploaded image files on local disk.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store writes uploaded images under a fixed root directory.
type Store struct {
	root string
}

// New creates a store rooted at dir. The directory is created lazily on
// first write.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the upload root directory.
func (s *Store) Root() string {
	return s.root
}

// SaveImage writes the stream verbatim to a new file named
// {prefix}_{16 hex chars}.jpg under the upload root and returns the
// relative path for persistence. Randomized suffixes keep concurrent
// uploads from colliding.
func (s *Store) SaveImage(prefix string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	suffix := make([]byte, 8)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate filename: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.jpg", sanitizePrefix(prefix), hex.EncodeToString(suffix))
	path := filepath.Join(s.root, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

// sanitizePrefix strips path separators and other filesystem-hostile
// characters so a submitted restaurant name cannot escape the upload root.
func sanitizePrefix(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
