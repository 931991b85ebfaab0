package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile fills the target path with a small placeholder payload, creating
// parent directories as needed.
func WriteFile(t testing.TB, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte{0x42}, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// SeedEpisodes creates the named media files under dir and returns dir for
// chaining into session or command tests.
func SeedEpisodes(t testing.TB, dir string, names ...string) string {
	t.Helper()

	for _, name := range names {
		WriteFile(t, filepath.Join(dir, name))
	}
	return dir
}
