// Package viewer opens a generated document with the desktop's default
// application.
package viewer

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Opener starts an external program for a path.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// System opens files with the platform launcher (open, xdg-open or start).
type System struct {
	// GOOS overrides runtime.GOOS; used by tests.
	GOOS string
	// Run starts the command; defaults to (*exec.Cmd).Start.
	Run func(*exec.Cmd) error
}

// Command returns the launcher command for path without starting it.
func (s System) Command(ctx context.Context, path string) (*exec.Cmd, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "darwin":
		return exec.CommandContext(ctx, "open", abs), nil
	case "windows":
		return exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", abs), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.CommandContext(ctx, "xdg-open", abs), nil
	}
	return nil, fmt.Errorf("opening files is not supported on %s", goos)
}

// Open starts the launcher and returns without waiting for it.
func (s System) Open(ctx context.Context, path string) error {
	cmd, err := s.Command(ctx, path)
	if err != nil {
		return err
	}
	run := s.Run
	if run == nil {
		run = (*exec.Cmd).Start
	}
	if err := run(cmd); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}
