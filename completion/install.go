package completion

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/napalu/cmdline/errs"
)

// Location is where the completion script of a program is installed for one shell
type Location struct {
	// Dir is the user completion directory the shell loads scripts from
	Dir string
	// File is the script name following the shell's naming convention
	File string
}

// Path returns the full path of the script
func (l Location) Path() string {
	return filepath.Join(l.Dir, l.File)
}

// LocationFor returns the user-level location of the completion script of programName for shell
func LocationFor(shell, programName string) (Location, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Location{}, errs.ErrInstallCompletion.WithArgs(shell).Wrap(err)
	}
	return location(home, runtime.GOOS, strings.ToLower(shell), filepath.Base(programName))
}

func location(home, goos, shell, program string) (Location, error) {
	switch shell {
	case "bash":
		return Location{Dir: filepath.Join(home, ".local", "share", "bash-completion", "completions"), File: program}, nil
	case "zsh":
		return Location{Dir: filepath.Join(home, ".zsh", "completion"), File: "_" + program}, nil
	case "fish":
		return Location{Dir: filepath.Join(home, ".config", "fish", "completions"), File: program + ".fish"}, nil
	case "powershell", "pwsh":
		file := program + ".ps1"
		switch goos {
		case "windows":
			if _, err := exec.LookPath("pwsh"); err == nil {
				return Location{Dir: filepath.Join(home, "Documents", "PowerShell", "Completions"), File: file}, nil
			}
			return Location{Dir: filepath.Join(home, "Documents", "WindowsPowerShell", "Completions"), File: file}, nil
		case "darwin":
			return Location{Dir: filepath.Join(home, "Library", "PowerShell", "Completions"), File: file}, nil
		default:
			return Location{Dir: filepath.Join(home, ".config", "powershell", "Completions"), File: file}, nil
		}
	default:
		return Location{}, errs.ErrUnsupportedShell.WithArgs(shell)
	}
}

// Install renders the script of shell for programName and writes it to the user completion
// directory of the shell, returning the path written
func Install(shell, programName string, data *Data) (string, error) {
	g, err := ForShell(shell)
	if err != nil {
		return "", err
	}
	loc, err := LocationFor(shell, programName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(loc.Dir, 0o755); err != nil {
		return "", errs.ErrInstallCompletion.WithArgs(loc.Dir).Wrap(err)
	}
	script := g.Generate(filepath.Base(programName), data)
	if err := os.WriteFile(loc.Path(), []byte(script), 0o644); err != nil {
		return "", errs.ErrInstallCompletion.WithArgs(loc.Path()).Wrap(err)
	}
	return loc.Path(), nil
}
