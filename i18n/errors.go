package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider defines an interface for getting default messages
type MessageProvider interface {
	GetMessage(key string) string
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support.
//
// Example usage:
//
//	err := NewError("cmdline.error.unsupported_type")
//	err = err.WithArgs("Options", "Count", "chan int")
type TrError struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	key      string
	args     []interface{}
	wrapped  error
}

// DefaultMessageProvider implements MessageProvider using a bundle
type DefaultMessageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewMessageProvider returns a provider reading lang from bundle, falling back to the
// bundle's default language for missing keys
func NewMessageProvider(bundle *Bundle, lang language.Tag) *DefaultMessageProvider {
	return &DefaultMessageProvider{bundle: bundle, lang: bundle.Match(lang)}
}

func (p *DefaultMessageProvider) GetMessage(key string) string {
	if msg, ok := p.bundle.message(p.lang, key); ok {
		return msg
	}
	return key
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error returns the message in the language of the default provider, formatted with args if provided
func (e *TrError) Error() string {
	return e.Format(getDefaultProvider())
}

// Format renders the error using the messages of provider
func (e *TrError) Format(provider MessageProvider) string {
	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		if tr, ok := e.wrapped.(*TrError); ok {
			return fmt.Sprintf("%s: %s", msg, tr.Format(provider))
		}
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by TrError.Error. Passing nil
// restores the English messages of the default bundle.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewMessageProvider(Default(), language.English)
	}
	return defaultProvider
}
