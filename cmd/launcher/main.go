package main

import (
	"errors"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// startupDelay is how long the launcher waits after starting the backend
// before starting the frontend. There is deliberately no readiness probe:
// if the backend is slow to come up, early frontend requests fail until it
// does.
const startupDelay = 3 * time.Second

func main() {
	dir, err := executableDir()
	if err != nil {
		log.Fatalf("Failed to locate launcher directory: %v", err)
	}

	backend := exec.Command(filepath.Join(dir, "backend"))
	backend.Stdout = os.Stdout
	backend.Stderr = os.Stderr
	if err := backend.Start(); err != nil {
		// Fire and forget: the frontend starts regardless.
		log.Printf("[launcher] backend failed to start: %v", err)
	} else {
		log.Printf("[launcher] backend started (pid %d)", backend.Process.Pid)
	}

	time.Sleep(startupDelay)

	// The protection-disabling flags are insecure defaults, acceptable only
	// for this local single-user demo.
	frontend := exec.Command(filepath.Join(dir, "frontend"),
		"-disable-cors-check",
		"-disable-xsrf",
	)
	frontend.Stdout = os.Stdout
	frontend.Stderr = os.Stderr
	frontend.Stdin = os.Stdin

	log.Println("[launcher] starting frontend")
	err = frontend.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		log.Fatalf("[launcher] frontend failed: %v", err)
	}
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
