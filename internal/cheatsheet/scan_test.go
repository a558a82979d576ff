package cheatsheet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

// flakyFs fails Stat for selected paths and can refuse to open directories.
type flakyFs struct {
	afero.Fs
	badStat map[string]bool
	badOpen bool
}

func (f flakyFs) Stat(name string) (os.FileInfo, error) {
	if f.badStat[name] {
		return nil, os.ErrPermission
	}
	return f.Fs.Stat(name)
}

func (f flakyFs) Open(name string) (afero.File, error) {
	if f.badOpen {
		return nil, os.ErrPermission
	}
	return f.Fs.Open(name)
}

func newSheetFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/sheets", 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	for _, f := range files {
		if err := afero.WriteFile(fs, filepath.Join("/sheets", f), []byte("# "+f+"\n"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", f, err)
		}
	}
	return fs
}

func TestScan(t *testing.T) {
	fs := newSheetFs(t, "git.md", "git.html", "tmux.txt")
	if err := fs.MkdirAll("/sheets/nested", 0755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/sheets/nested/deep.md", []byte("deep"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := Scan(fs, "/sheets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"git.html", "git.md", "tmux.txt"}
	if diff := cmp.Diff(want, names(files)); diff != "" {
		t.Errorf("unexpected files (-want +got):\n%s", diff)
	}
	if files[1].Path != "/sheets/git.md" {
		t.Errorf("expected joined path, got %q", files[1].Path)
	}
}

func TestScan_EmptyDirectory(t *testing.T) {
	files, err := Scan(newSheetFs(t), "/sheets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", names(files))
	}
}

func TestScan_InvalidDirectory(t *testing.T) {
	fs := newSheetFs(t, "git.md")

	tests := []struct {
		name string
		dir  string
	}{
		{"missing directory", "/nowhere"},
		{"path is a file", "/sheets/git.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scan(fs, tt.dir)
			if !errors.Is(err, ErrInvalidDirectory) {
				t.Errorf("expected ErrInvalidDirectory, got %v", err)
			}
		})
	}
}

func TestScan_FileRootIsRejectedBeforeListing(t *testing.T) {
	fs := flakyFs{Fs: newSheetFs(t, "git.md"), badOpen: true}

	_, err := Scan(fs, "/sheets/git.md")
	if !errors.Is(err, ErrInvalidDirectory) {
		t.Errorf("expected ErrInvalidDirectory, got %v", err)
	}
}

func TestScan_SkipsUnreadableEntries(t *testing.T) {
	fs := flakyFs{
		Fs:      newSheetFs(t, "docker.md", "git.md", "vim.md"),
		badStat: map[string]bool{"/sheets/git.md": true},
	}

	files, err := Scan(fs, "/sheets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"docker.md", "vim.md"}
	if diff := cmp.Diff(want, names(files)); diff != "" {
		t.Errorf("unexpected files (-want +got):\n%s", diff)
	}
}

func TestScan_ListingFailure(t *testing.T) {
	fs := flakyFs{Fs: newSheetFs(t, "git.md"), badOpen: true}

	_, err := Scan(fs, "/sheets")

	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected *ScanError, got %v", err)
	}
	if scanErr.Dir != "/sheets" {
		t.Errorf("expected dir /sheets, got %q", scanErr.Dir)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("expected wrapped permission error, got %v", err)
	}
}
