package entities

import (
	"strconv"
	"strings"
	"time"
)

// Metadata is the header of a message catalog (the entry with an empty msgid).
type Metadata struct {
	ProjectIDVersion string
	ReportBugsTo     string
	POTCreationDate  time.Time
	PORevisionDate   time.Time
	LastTranslator   string
	LanguageTeam     string
	Language         string
	ContentType      string
	Charset          string
	PluralForms      string
	NPlurals         int
	Generator        string
	Extra            map[string]string
}

// ParsePluralForms extracts nplurals and the plural expression from a
// Plural-Forms header value such as "nplurals=2; plural=(n > 1);".
// nplurals is 0 when missing or invalid.
func ParsePluralForms(value string) (nplurals int, expr string) {
	for _, part := range strings.Split(value, ";") {
		name, val, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(name) {
		case "nplurals":
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err == nil && n > 0 {
				nplurals = n
			}
		case "plural":
			expr = strings.TrimSpace(val)
		}
	}
	return nplurals, expr
}
