//go:build windows

package infra

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/windows"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

// ShellLauncher implements domain.Launcher via the shell's open verb.
type ShellLauncher struct{}

// NewShellLauncher creates a shell-open launcher.
func NewShellLauncher() domain.Launcher {
	return &ShellLauncher{}
}

// Open requests a launch of path with default open semantics. ShellExecute
// gives no synchronous confirmation that the target actually started.
func (l *ShellLauncher) Open(path string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	if err := windows.ShellExecute(0, verb, file, nil, nil, windows.SW_SHOWNORMAL); err != nil {
		return fmt.Errorf("shell open %s: %w", path, err)
	}
	return nil
}

// KeyboardPathResolver implements domain.PathResolver for the touch keyboard
// service installed under the shared Program Files tree.
type KeyboardPathResolver struct{}

// NewKeyboardPathResolver creates the keyboard path resolver.
func NewKeyboardPathResolver() domain.PathResolver {
	return &KeyboardPathResolver{}
}

// KeyboardExecutable resolves
// <Common Program Files>\Microsoft Shared\ink\TabTip.exe.
func (r *KeyboardPathResolver) KeyboardExecutable() (string, error) {
	base, err := windows.KnownFolderPath(windows.FOLDERID_ProgramFilesCommon, 0)
	if err != nil {
		return "", fmt.Errorf("resolving common program files folder: %w", err)
	}
	return filepath.Join(base, "Microsoft Shared", "ink", "TabTip.exe"), nil
}

// Ensure the launcher implementations satisfy their interfaces.
var (
	_ domain.Launcher     = (*ShellLauncher)(nil)
	_ domain.PathResolver = (*KeyboardPathResolver)(nil)
)
