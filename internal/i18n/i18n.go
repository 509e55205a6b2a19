package i18n

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Translator resolves message ids for one locale. Unknown ids come back
// unchanged so a missing entry is visible but never fatal.
type Translator struct {
	localizer *i18n.Localizer
}

func NewBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.Spanish)

	es := make([]*i18n.Message, 0, len(catalogue))
	en := make([]*i18n.Message, 0, len(catalogue))
	for id, texts := range catalogue {
		es = append(es, &i18n.Message{ID: id, Other: texts[0]})
		en = append(en, &i18n.Message{ID: id, Other: texts[1]})
	}

	bundle.AddMessages(language.Spanish, es...)
	bundle.AddMessages(language.English, en...)
	return bundle
}

// New returns a translator for lang, falling back to Spanish.
func New(lang string) *Translator {
	if lang == "" {
		lang = language.Spanish.String()
	}
	return &Translator{localizer: i18n.NewLocalizer(NewBundle(), lang, language.Spanish.String())}
}

func (t *Translator) T(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
