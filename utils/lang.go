package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// SupportedLanguages are the message files loaded from i18n.dir
var SupportedLanguages = []string{"en", "ne"}

var bundle *i18n.Bundle

func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, lang := range SupportedLanguages {
		bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), lang+".yaml"))
	}
}

// NewLocalizer returns nil before InitI18NBundle, which callers treat as
// the built-in English messages
func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		return nil
	}
	return i18n.NewLocalizer(bundle, lang)
}
