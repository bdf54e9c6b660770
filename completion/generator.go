package completion

import (
	"strings"

	"github.com/napalu/cmdline/errs"
)

// Generator renders the completion script of one shell
type Generator interface {
	Generate(programName string, data *Data) string
}

// Shells lists the shells a generator exists for
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// ForShell returns the generator of shell, ignoring case
func ForShell(shell string) (Generator, error) {
	switch strings.ToLower(shell) {
	case "bash":
		return &BashGenerator{}, nil
	case "zsh":
		return &ZshGenerator{}, nil
	case "fish":
		return &FishGenerator{}, nil
	case "powershell", "pwsh":
		return &PowerShellGenerator{}, nil
	default:
		return nil, errs.ErrUnsupportedShell.WithArgs(shell)
	}
}

// functionName turns a program name into a shell identifier
func functionName(programName string) string {
	var b strings.Builder
	for _, r := range programName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
