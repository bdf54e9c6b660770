// Package markup holds the registry of documentation markup dialects. A dialect turns the
// raw text of a doc tag into styled text; the parser never looks inside the markup itself.
package markup

import (
	"strings"
	"sync"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/text"
)

// Converter converts raw documentation text into styled text
type Converter func(raw string) (text.Text, error)

// Plain is the name of the built-in dialect which treats documentation as unstyled text
const Plain = "plain"

var (
	mu         sync.RWMutex
	converters = map[string]Converter{
		Plain: func(raw string) (text.Text, error) {
			return text.Plain(raw), nil
		},
	}
)

// Register makes a converter available under dialect. Dialect names are case-insensitive.
// Registering an existing dialect replaces it.
func Register(dialect string, c Converter) {
	mu.Lock()
	defer mu.Unlock()
	converters[strings.ToLower(dialect)] = c
}

// Lookup returns the converter registered for dialect. An empty dialect selects Plain.
func Lookup(dialect string) (Converter, error) {
	if dialect == "" {
		dialect = Plain
	}
	mu.RLock()
	defer mu.RUnlock()
	c, ok := converters[strings.ToLower(dialect)]
	if !ok {
		return nil, errs.ErrUnknownMarkup.WithArgs(dialect)
	}
	return c, nil
}

// Convert looks up dialect and applies it to raw
func Convert(dialect, raw string) (text.Text, error) {
	c, err := Lookup(dialect)
	if err != nil {
		return text.Text{}, err
	}
	return c(raw)
}
