package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestDefaultBundle_LoadsEmbeddedLocales(t *testing.T) {
	b := Default()
	assert.True(t, b.HasLanguage(language.English))
	assert.True(t, b.HasLanguage(language.German))
	assert.Equal(t, []language.Tag{language.German, language.English}, b.Languages())
	assert.Equal(t, "Usage:", b.T("cmdline.msg.usage_prefix"))
	assert.Equal(t, "Aufruf:", b.TL(language.German, "cmdline.msg.usage_prefix"))
}

func TestBundle_TLFormatsArguments(t *testing.T) {
	b := Default()
	assert.Equal(t, "command group Cmd has no members", b.T("cmdline.error.empty_group", "Cmd"))
}

func TestBundle_MatchFallsBack(t *testing.T) {
	b := Default()
	assert.Equal(t, language.German, b.Match(language.MustParse("de-CH")))
	assert.Equal(t, language.English, b.Match(language.Japanese))
	assert.Equal(t, "Usage:", b.TL(language.Japanese, "cmdline.msg.usage_prefix"))
}

func TestBundle_UnknownKeyIsReturned(t *testing.T) {
	assert.Equal(t, "no.such.key", Default().T("no.such.key"))
}

func TestBundle_AddLanguageValidatesKeys(t *testing.T) {
	b, err := NewBundle()
	assert.Nil(t, err)

	err = b.AddLanguage(language.French, map[string]string{"cmdline.msg.usage_prefix": "Utilisation :"})
	assert.True(t, errors.Is(err, ErrInvalidTranslations))
	assert.False(t, b.HasLanguage(language.French))

	// updating an existing language only merges
	err = b.AddLanguage(language.English, map[string]string{"cmdline.msg.usage_prefix": "Use:"})
	assert.Nil(t, err)
	assert.Equal(t, "Use:", b.T("cmdline.msg.usage_prefix"))
	assert.True(t, b.HasKey(language.English, "cmdline.msg.error_prefix"))
	assert.Equal(t, "Usage:", Default().T("cmdline.msg.usage_prefix"))
}

func TestTrError(t *testing.T) {
	sentinel := NewError("cmdline.error.empty_group")
	err := sentinel.WithArgs("Cmd")
	assert.Equal(t, "command group Cmd has no members", err.Error())
	assert.True(t, errors.Is(err, sentinel))
	assert.False(t, errors.Is(err, NewError("cmdline.error.empty_group")))

	cause := errors.New("boom")
	wrapped := err.Wrap(cause)
	assert.True(t, errors.Is(wrapped, cause))
	assert.True(t, errors.Is(wrapped, sentinel))
	assert.Equal(t, "command group Cmd has no members: boom", wrapped.Error())
	assert.Equal(t, "cmdline.error.empty_group", wrapped.Key())
	assert.Equal(t, []interface{}{"Cmd"}, wrapped.Args())
}

func TestTrError_Provider(t *testing.T) {
	err := NewError("cmdline.error.empty_group").WithArgs("Cmd").(*TrError)
	assert.Equal(t, "Befehlsgruppe Cmd hat keine Mitglieder", err.Format(NewMessageProvider(Default(), language.German)))

	wrapped := NewError("cmdline.error.split_command_line").Wrap(err).(*TrError)
	assert.Equal(t, "die Befehlszeile kann nicht in Argumente zerlegt werden: Befehlsgruppe Cmd hat keine Mitglieder",
		wrapped.Format(NewMessageProvider(Default(), language.German)))

	SetDefaultMessageProvider(NewMessageProvider(Default(), language.German))
	defer SetDefaultMessageProvider(nil)
	assert.Equal(t, "Befehlsgruppe Cmd hat keine Mitglieder", err.Error())
}
