package cheatsheet

import (
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Scan lists the regular files directly inside dir.
// dir must be an existing directory, otherwise ErrInvalidDirectory is returned
// before anything is listed. Entries that cannot be stat'ed are skipped, so the
// result may be partial. The order is whatever the filesystem reports.
func Scan(fs afero.Fs, dir string) ([]CandidateFile, error) {
	info, err := fs.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDirectory, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidDirectory, dir)
	}

	names, err := listNames(fs, dir)
	if err != nil {
		return nil, &ScanError{Dir: dir, Err: err}
	}

	files := make([]CandidateFile, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		entry, err := fs.Stat(path)
		if err != nil {
			log.Debugf("Skipping unreadable entry %s: %v", path, err)
			continue
		}
		if !entry.Mode().IsRegular() {
			continue
		}
		files = append(files, NewCandidate(path))
	}

	log.Debugf("Scanned %s: %d entries, %d files", dir, len(names), len(files))
	return files, nil
}

// listNames returns every entry name in dir without sorting.
func listNames(fs afero.Fs, dir string) ([]string, error) {
	f, err := fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Readdirnames(-1)
}
