package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func createTestArchive(t *testing.T, names []string) string {
	t.Helper()

	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	defer w.Close()

	for _, name := range names {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", name, err)
		}
		if _, err := fw.Write([]byte("payload of " + name)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", name, err)
		}
	}
	return zipPath
}

func TestWalk(t *testing.T) {
	zipPath := createTestArchive(t, []string{
		"scans/page1.png",
		"scans/page2.jpg",
		"photos/trip/a.jpg",
		"photos/trip/b.jpg",
		"cover.png",
	})

	cases := []struct {
		name    string
		pattern string
		want    int
	}{
		{"scans prefix", "scans/", 2},
		{"photos prefix", "photos/", 2},
		{"no match", "missing/", 0},
		{"empty prefix matches everything", "", 5},
		{"single file prefix", "cover.png", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var visited []string
			err := Walk(zipPath, tc.pattern, func(archive string, file *zip.File) error {
				if archive != zipPath {
					t.Errorf("archive = %s, want %s", archive, zipPath)
				}
				visited = append(visited, file.Name)
				return nil
			})
			if err != nil {
				t.Errorf("Walk() error = %v", err)
			}
			if len(visited) != tc.want {
				t.Errorf("visited %d files, want %d: %v", len(visited), tc.want, visited)
			}
		})
	}
}

func TestWalk_CallbackError(t *testing.T) {
	zipPath := createTestArchive(t, []string{"a.png", "b.png"})

	sentinel := errors.New("stop")
	count := 0
	err := Walk(zipPath, "", func(string, *zip.File) error {
		count++
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Errorf("Walk() error = %v, want %v", err, sentinel)
	}
	if count != 1 {
		t.Errorf("callback called %d times after error, want 1", count)
	}
}

func TestWalk_MissingArchive(t *testing.T) {
	if err := Walk(filepath.Join(t.TempDir(), "nope.zip"), "", func(string, *zip.File) error {
		t.Error("callback should not be called")
		return nil
	}); err == nil {
		t.Error("expected error for missing archive")
	}
}

func TestIsSafePath(t *testing.T) {
	cases := []struct {
		path string
		safe bool
	}{
		{"scans/page1.png", true},
		{"a.png", true},
		{"/etc/passwd", false},
		{`\windows\system32`, false},
		{"../escape.png", false},
		{"scans/../../escape.png", false},
	}

	for _, tc := range cases {
		if got := isSafePath(tc.path); got != tc.safe {
			t.Errorf("isSafePath(%q) = %v, want %v", tc.path, got, tc.safe)
		}
	}
}
