// Package opener hands a file to the operating system's default application.
package opener

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
)

// System opens files with the platform's open command.
type System struct {
	// GOOS overrides runtime.GOOS when set.
	GOOS string
}

// Open runs the platform open command for path and waits for it to finish.
// A non-zero exit is returned as an error carrying the command's stderr.
func (s System) Open(path string) error {
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	name, args := Command(goos, path)
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found: %w", name, err)
	}

	log.Debugf("Running %s %s", name, strings.Join(args, " "))
	cmd := exec.Command(name, args...) // #nosec G204
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Command returns the program and arguments that open path on goos:
// - darwin: open
// - windows: cmd /c start
// - everything else: xdg-open
func Command(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		// The empty argument is the window title start expects before a quoted path.
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}
