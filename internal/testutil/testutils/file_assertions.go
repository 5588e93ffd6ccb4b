package helpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteTree creates files below root from a map of slash separated
// relative paths to contents. Parent directories are created as needed.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
			t.Fatalf("create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

// FileAssertions provides utilities for asserting file system state in tests.
type FileAssertions struct {
	t       *testing.T
	baseDir string
}

// NewFileAssertions creates a new file assertions helper.
func NewFileAssertions(t *testing.T, baseDir string) *FileAssertions {
	return &FileAssertions{
		t:       t,
		baseDir: baseDir,
	}
}

// Read returns the content of a file, failing the test when it is missing.
func (fa *FileAssertions) Read(relativePath string) string {
	fa.t.Helper()
	// #nosec G304 - test helper, paths are controlled by test code
	content, err := os.ReadFile(filepath.Join(fa.baseDir, filepath.FromSlash(relativePath)))
	if err != nil {
		fa.t.Fatalf("Failed to read file %s: %v", relativePath, err)
	}
	return string(content)
}

// AssertFileExists validates that a file exists.
func (fa *FileAssertions) AssertFileExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, filepath.FromSlash(relativePath))
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		fa.t.Errorf("Expected file to exist: %s", fullPath)
	}
	return fa
}

// AssertNotExists validates that nothing exists at the path.
func (fa *FileAssertions) AssertNotExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, filepath.FromSlash(relativePath))
	if _, err := os.Stat(fullPath); err == nil {
		fa.t.Errorf("Expected %s not to exist", fullPath)
	}
	return fa
}

// AssertFileContains validates that a file contains expected content.
func (fa *FileAssertions) AssertFileContains(relativePath, expectedContent string) *FileAssertions {
	fa.t.Helper()
	content := fa.Read(relativePath)
	if !strings.Contains(content, expectedContent) {
		fa.t.Errorf("Expected file %s to contain %q\nActual content:\n%s",
			relativePath, expectedContent, content)
	}
	return fa
}

// AssertFileEquals validates the exact content of a file.
func (fa *FileAssertions) AssertFileEquals(relativePath, expectedContent string) *FileAssertions {
	fa.t.Helper()
	if content := fa.Read(relativePath); content != expectedContent {
		fa.t.Errorf("Unexpected content in %s\nExpected:\n%s\nActual:\n%s",
			relativePath, expectedContent, content)
	}
	return fa
}
