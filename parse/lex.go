package parse

import (
	"errors"
	"io"
	"strings"

	"github.com/google/shlex"
)

// Split breaks a command line into arguments using POSIX shell quoting rules. A word
// starting with '#' opens a comment running to the end of its line.
func Split(s string) ([]string, error) {
	l := shlex.NewLexer(strings.NewReader(s))
	args := []string{}
	for {
		word, err := l.Next()
		if errors.Is(err, io.EOF) {
			return args, nil
		}
		if err != nil {
			return nil, err
		}
		args = append(args, word)
	}
}
