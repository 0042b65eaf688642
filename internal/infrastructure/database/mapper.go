package database

import (
	"encoding/json"
	"fmt"

	"friendly/internal/domain/entities"
	"friendly/pkg/podate"
)

// metadataDoc is the jsonb form of entities.Metadata. Dates keep the PO
// header layout.
type metadataDoc struct {
	ProjectIDVersion string            `json:"project_id_version,omitempty"`
	ReportBugsTo     string            `json:"report_msgid_bugs_to,omitempty"`
	POTCreationDate  string            `json:"pot_creation_date,omitempty"`
	PORevisionDate   string            `json:"po_revision_date,omitempty"`
	LastTranslator   string            `json:"last_translator,omitempty"`
	LanguageTeam     string            `json:"language_team,omitempty"`
	Language         string            `json:"language,omitempty"`
	ContentType      string            `json:"content_type,omitempty"`
	Charset          string            `json:"charset,omitempty"`
	PluralForms      string            `json:"plural_forms,omitempty"`
	NPlurals         int               `json:"nplurals,omitempty"`
	Generator        string            `json:"generator,omitempty"`
	Extra            map[string]string `json:"extra,omitempty"`
}

func metadataToJSON(m entities.Metadata) ([]byte, error) {
	return json.Marshal(metadataDoc{
		ProjectIDVersion: m.ProjectIDVersion,
		ReportBugsTo:     m.ReportBugsTo,
		POTCreationDate:  podate.Format(m.POTCreationDate),
		PORevisionDate:   podate.Format(m.PORevisionDate),
		LastTranslator:   m.LastTranslator,
		LanguageTeam:     m.LanguageTeam,
		Language:         m.Language,
		ContentType:      m.ContentType,
		Charset:          m.Charset,
		PluralForms:      m.PluralForms,
		NPlurals:         m.NPlurals,
		Generator:        m.Generator,
		Extra:            m.Extra,
	})
}

func metadataFromJSON(data []byte) (entities.Metadata, error) {
	var doc metadataDoc
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return entities.Metadata{}, fmt.Errorf("decode metadata: %w", err)
		}
	}
	// Dates were written by podate.Format; an unreadable one stays zero.
	pot, _ := podate.Parse(doc.POTCreationDate)
	rev, _ := podate.Parse(doc.PORevisionDate)
	return entities.Metadata{
		ProjectIDVersion: doc.ProjectIDVersion,
		ReportBugsTo:     doc.ReportBugsTo,
		POTCreationDate:  pot,
		PORevisionDate:   rev,
		LastTranslator:   doc.LastTranslator,
		LanguageTeam:     doc.LanguageTeam,
		Language:         doc.Language,
		ContentType:      doc.ContentType,
		Charset:          doc.Charset,
		PluralForms:      doc.PluralForms,
		NPlurals:         doc.NPlurals,
		Generator:        doc.Generator,
		Extra:            doc.Extra,
	}, nil
}

func entryToRow(locale string, e entities.Entry) EntryRow {
	plural := e.StrPlural
	if plural == nil {
		// msgstr_plural is NOT NULL.
		plural = []string{}
	}
	return EntryRow{
		Locale:       locale,
		Msgctxt:      e.Context,
		Msgid:        e.ID,
		MsgidPlural:  e.IDPlural,
		Msgstr:       e.Str,
		MsgstrPlural: plural,
	}
}

func rowToEntry(r EntryRow) entities.Entry {
	e := entities.Entry{
		Context:  r.Msgctxt,
		ID:       r.Msgid,
		IDPlural: r.MsgidPlural,
		Str:      r.Msgstr,
	}
	if len(r.MsgstrPlural) > 0 {
		e.StrPlural = r.MsgstrPlural
	}
	return e
}
