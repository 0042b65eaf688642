package i18n

import (
	"embed"
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/nicksnyder/go-i18n/v2/i18n/template"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"friendly/internal/domain/entities"
	"friendly/internal/ports/output"
	"friendly/pkg/pyformat"
)

//go:embed locales/*/LC_MESSAGES/*.mo
var localeFS embed.FS

// Domain is the gettext domain of the embedded catalogs.
const Domain = "friendly"

// Source strings are English.
var sourceLanguage = language.English

// Ensure Translator implements the output.Translator port.
var _ output.Translator = (*Translator)(nil)

// Catalog strings are plain text; {placeholders} are filled by pyformat.
var plainText = template.IdentityParser{}

// Translator is a thin wrapper around go-i18n's Bundle/Localizer holding one
// catalog. It is never mutated after NewTranslator returns.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
	// plural holds the keys with plural forms; Translate returns their
	// first form, as gettext does.
	plural map[string]bool
}

// NewTranslator builds a Translator backed by go-i18n from cat.
//
// The catalog language comes from its Language header, then from
// defaultLocale (e.g. "fr"). Override files in go-i18n TOML format
// (name.<lang>.toml) are layered on top; a file that fails to load is
// logged and skipped.
func NewTranslator(cat *entities.Catalog, defaultLocale string, overrides ...string) *Translator {
	tag := catalogTag(cat, defaultLocale)

	bundle := i18n.NewBundle(sourceLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	messages := make([]*i18n.Message, 0, cat.Len())
	plural := make(map[string]bool)
	for _, e := range cat.Entries() {
		if m := toMessage(e); m != nil {
			messages = append(messages, m)
			if e.IsPlural() {
				plural[m.ID] = true
			}
		}
	}
	if err := bundle.AddMessages(tag, messages...); err != nil {
		log.Printf("i18n: failed to add %d messages for %s: %v", len(messages), tag, err)
	}

	for _, path := range overrides {
		mf, err := bundle.LoadMessageFile(path)
		if err != nil {
			log.Printf("i18n: failed to load %s: %v", path, err)
			continue
		}
		for _, id := range placeholderMismatches(mf) {
			log.Printf("i18n: %s: placeholders of %q differ from the source text", path, id)
		}
	}

	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
		plural:    plural,
	}
}

// Identity returns a Translator with no messages.
func Identity() *Translator {
	return NewTranslator(entities.Empty(), sourceLanguage.String())
}

func (t *Translator) Language() string {
	return t.tag.String()
}

// Translate renders the message identified by key.
// If the key is not found, it falls back to the key itself.
func (t *Translator) Translate(key string) string {
	if key == "" {
		return ""
	}
	lc := &i18n.LocalizeConfig{
		MessageID:      key,
		TemplateParser: plainText,
	}
	if t.plural[key] {
		lc.PluralCount = 1
	}
	msg, err := t.localizer.Localize(lc)
	if err != nil || msg == "" {
		logUnexpected(key, err)
		return key
	}
	return msg
}

func (t *Translator) TranslatePlural(singular, plural string, n int) string {
	fallback := plural
	if n == 1 {
		fallback = singular
	}
	if singular == "" {
		return fallback
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      singular,
		PluralCount:    n,
		TemplateParser: plainText,
	})
	if msg == "" {
		logUnexpected(singular, err)
		return fallback
	}
	return msg
}

func (t *Translator) T(key string, data map[string]any) string {
	out, err := pyformat.Format(t.Translate(key), data)
	if err != nil {
		log.Printf("i18n: format failed (key=%q, lang=%s): %v", key, t.tag, err)
	}
	return out
}

// logUnexpected logs localize errors other than a missing message, which is
// the normal identity fallback.
func logUnexpected(key string, err error) {
	if err == nil {
		return
	}
	var notFound *i18n.MessageNotFoundErr
	if errors.As(err, &notFound) {
		return
	}
	log.Printf("i18n: localize failed (key=%q): %v", key, err)
}

// toMessage maps gettext plural forms onto CLDR categories: the first form
// is "one", the last is "other"; in between come "few" then "many".
func toMessage(e entities.Entry) *i18n.Message {
	if !e.Translated() {
		return nil
	}
	m := &i18n.Message{ID: e.Key()}
	if !e.IsPlural() {
		m.Other = e.Str
		return m
	}

	forms := e.StrPlural
	switch len(forms) {
	case 1:
		m.Other = forms[0]
	case 2:
		m.One, m.Other = forms[0], forms[1]
		m.Many = forms[1]
	case 3:
		m.One, m.Few, m.Other = forms[0], forms[1], forms[2]
		m.Many = forms[2]
	default:
		m.One, m.Few, m.Many, m.Other = forms[0], forms[1], forms[2], forms[len(forms)-1]
	}
	return m
}

// placeholderMismatches lists the messages of mf whose translated forms
// do not use the same {placeholders} as their source text.
func placeholderMismatches(mf *i18n.MessageFile) []string {
	var out []string
	for _, m := range mf.Messages {
		want := fieldSet(m.ID)
		for _, form := range []string{m.Zero, m.One, m.Two, m.Few, m.Many, m.Other} {
			if form != "" && fieldSet(form) != want {
				out = append(out, m.ID)
				break
			}
		}
	}
	return out
}

func fieldSet(s string) string {
	fields := pyformat.Fields(s)
	sort.Strings(fields)
	return strings.Join(fields, ",")
}

func catalogTag(cat *entities.Catalog, defaultLocale string) language.Tag {
	for _, candidate := range []string{cat.Metadata().Language, defaultLocale} {
		candidate = strings.ReplaceAll(strings.TrimSpace(candidate), "_", "-")
		if candidate == "" {
			continue
		}
		if tag, err := language.Parse(candidate); err == nil {
			return tag
		}
	}
	return sourceLanguage
}
