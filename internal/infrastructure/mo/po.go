package mo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/chai2010/gettext-go/po"

	"friendly/internal/domain"
	"friendly/internal/domain/entities"
	"friendly/pkg/podate"
)

// CompilePOFile reads the PO source at path and compiles it like msgfmt.
func CompilePOFile(path string) (*entities.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("compile %s: %w", path, domain.ErrCatalogNotFound)
		}
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	cat, err := CompilePO(data)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return cat, nil
}

// CompilePO parses a PO source. Fuzzy and untranslated entries are dropped,
// as msgfmt does without --use-fuzzy.
func CompilePO(data []byte) (cat *entities.Catalog, err error) {
	defer func() {
		if r := recover(); r != nil {
			cat = nil
			err = fmt.Errorf("%w: %v", domain.ErrCatalogMalformed, r)
		}
	}()

	f, err := po.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogMalformed, err)
	}

	entries := make([]entities.Entry, 0, len(f.Messages))
	for _, m := range f.Messages {
		if m.MsgId == "" || isFuzzy(m.Flags) {
			continue
		}
		e := entities.Entry{
			Context:   m.MsgContext,
			ID:        m.MsgId,
			IDPlural:  m.MsgIdPlural,
			Str:       m.MsgStr,
			StrPlural: m.MsgStrPlural,
		}
		if !e.Translated() {
			continue
		}
		entries = append(entries, e)
	}
	return entities.NewCatalog(metadataFromPOHeader(f.MimeHeader), entries), nil
}

func isFuzzy(flags []string) bool {
	for _, f := range flags {
		if f == "fuzzy" {
			return true
		}
	}
	return false
}

func metadataFromPOHeader(h po.Header) entities.Metadata {
	meta := entities.Metadata{
		ProjectIDVersion: h.ProjectIdVersion,
		ReportBugsTo:     h.ReportMsgidBugsTo,
		LastTranslator:   h.LastTranslator,
		LanguageTeam:     h.LanguageTeam,
		Language:         h.Language,
		ContentType:      h.ContentType,
		PluralForms:      h.PluralForms,
		Generator:        h.XGenerator,
	}
	meta.POTCreationDate, _ = podate.Parse(h.POTCreationDate)
	meta.PORevisionDate, _ = podate.Parse(h.PORevisionDate)
	meta.Charset = charsetOf(h.ContentType)
	meta.NPlurals, _ = entities.ParsePluralForms(h.PluralForms)
	return meta
}
