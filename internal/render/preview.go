package render

import (
	"fmt"
	"os/exec"
	"runtime"
)

// previewCommand returns the desktop opener for goos.
func previewCommand(goos, path string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{path}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, fmt.Errorf("no image viewer known for %s", goos)
	}
}

// Preview opens path in the desktop image viewer without waiting for it.
// Callers treat failure as "no display" and carry on.
func Preview(path string) error {
	name, args, err := previewCommand(runtime.GOOS, path)
	if err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	go cmd.Wait()
	return nil
}
