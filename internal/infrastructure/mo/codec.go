package mo

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"strings"

	"github.com/chai2010/gettext-go/mo"
	"golang.org/x/text/encoding/htmlindex"

	"friendly/internal/domain"
	"friendly/internal/domain/entities"
	"friendly/pkg/podate"
)

// Magic numbers of the GNU MO container, as read with each byte order.
const (
	MagicLittleEndian = 0x950412de
	MagicBigEndian    = 0xde120495
)

// LoadFile reads and decodes the MO file at path.
func LoadFile(path string) (*entities.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, domain.ErrCatalogNotFound)
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	cat, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cat, nil
}

// LoadFS reads and decodes the MO file name from fsys.
func LoadFS(fsys fs.FS, name string) (*entities.Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", name, domain.ErrCatalogNotFound)
		}
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	cat, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return cat, nil
}

// Decode parses a GNU MO file. Any decoding failure, including a panic in
// the underlying reader on corrupt offsets, is reported as
// domain.ErrCatalogMalformed.
func Decode(data []byte) (cat *entities.Catalog, err error) {
	if _, err := Inspect(data); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			cat = nil
			err = fmt.Errorf("%w: %v", domain.ErrCatalogMalformed, r)
		}
	}()

	f, err := mo.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogMalformed, err)
	}

	meta := metadataFromHeader(f.MimeHeader)
	decode, err := charsetDecoder(meta.Charset)
	if err != nil {
		return nil, err
	}

	entries := make([]entities.Entry, 0, len(f.Messages))
	for _, m := range f.Messages {
		e := normalize(entities.Entry{
			Context:   m.MsgContext,
			ID:        m.MsgId,
			IDPlural:  m.MsgIdPlural,
			Str:       m.MsgStr,
			StrPlural: m.MsgStrPlural,
		})
		if e.ID == "" {
			continue
		}
		if decode != nil {
			e = decodeEntry(e, decode)
		}
		entries = append(entries, e)
	}
	return entities.NewCatalog(meta, entries), nil
}

// normalize splits keys that the reader left joined with NUL or EOT.
func normalize(e entities.Entry) entities.Entry {
	if e.Context == "" {
		if ctx, id, ok := strings.Cut(e.ID, entities.ContextSeparator); ok {
			e.Context, e.ID = ctx, id
		}
	}
	if e.IDPlural == "" {
		if id, plural, ok := strings.Cut(e.ID, "\x00"); ok {
			e.ID, e.IDPlural = id, plural
		}
	}
	if e.IDPlural != "" && len(e.StrPlural) == 0 {
		e.StrPlural = strings.Split(e.Str, "\x00")
		e.Str = ""
	}
	return e
}

func decodeEntry(e entities.Entry, decode func(string) string) entities.Entry {
	e.Context = decode(e.Context)
	e.ID = decode(e.ID)
	e.IDPlural = decode(e.IDPlural)
	e.Str = decode(e.Str)
	if e.StrPlural != nil {
		forms := make([]string, len(e.StrPlural))
		for i, s := range e.StrPlural {
			forms[i] = decode(s)
		}
		e.StrPlural = forms
	}
	return e
}

// charsetDecoder returns nil for UTF-8 (or an unspecified charset).
func charsetDecoder(charset string) (func(string) string, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8", "charset":
		return nil, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown charset %q", domain.ErrCatalogMalformed, charset)
	}
	dec := enc.NewDecoder()
	return func(s string) string {
		out, err := dec.String(s)
		if err != nil {
			return s
		}
		return out
	}, nil
}

func metadataFromHeader(h mo.Header) entities.Metadata {
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
	if len(h.UnknowFields) > 0 {
		meta.Extra = make(map[string]string, len(h.UnknowFields))
		for k, v := range h.UnknowFields {
			meta.Extra[k] = v
		}
	}
	return meta
}

func charsetOf(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}
