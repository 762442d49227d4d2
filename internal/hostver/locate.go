package hostver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// Locate returns the path of the host module. A non-empty explicit path is
// used as given. Otherwise the path is derived from supportDir, the host's
// support directory:
//
//	windows  <supportDir>\SketchUp.exe
//	darwin   <supportDir>/../../../../Contents/MacOS/SketchUp  (supportDir = Tools)
func Locate(explicit, supportDir string) (string, error) {
	return locate(runtime.GOOS, explicit, supportDir)
}

func locate(goos, explicit, supportDir string) (string, error) {
	path := explicit
	if path == "" {
		if supportDir == "" {
			return "", fmt.Errorf("%w: neither a module path nor a support directory was given", ErrNotFound)
		}
		switch goos {
		case "windows":
			path = filepath.Join(supportDir, "SketchUp.exe")
		case "darwin":
			path = filepath.Join(supportDir, "..", "..", "..", "..", "Contents", "MacOS", "SketchUp")
		default:
			return "", fmt.Errorf("%w: %s", ErrUnsupported, goos)
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("hostver: %w", err)
	}
	fi, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %s", ErrNotFound, abs)
	case err != nil:
		return "", fmt.Errorf("hostver: %w", err)
	case fi.IsDir():
		return "", fmt.Errorf("%w: %s is a directory", ErrNotFound, abs)
	}
	return abs, nil
}
