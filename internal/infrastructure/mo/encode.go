package mo

import (
	"encoding/binary"
	"sort"
	"strings"

	"friendly/internal/domain/entities"
	"friendly/pkg/podate"
)

const headerSize = 28

// Encode writes cat as a little-endian GNU MO file, the way msgfmt does:
// the header entry (empty msgid) first, originals sorted, no hash table.
// Strings are always written as UTF-8 whatever charset the catalog was
// decoded from.
func Encode(cat *entities.Catalog) []byte {
	type pair struct{ id, str string }

	pairs := []pair{{"", headerString(cat.Metadata())}}
	for _, e := range cat.Entries() {
		id, str := entities.JoinKey(e.Context, e.ID), e.Str
		if e.IsPlural() {
			id += "\x00" + e.IDPlural
			str = strings.Join(e.StrPlural, "\x00")
		}
		pairs = append(pairs, pair{id, str})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].id < pairs[j].id })

	n := uint32(len(pairs))
	origTable := uint32(headerSize)
	transTable := origTable + 8*n

	out := make([]byte, 0, headerSize+16*int(n))
	out = binary.LittleEndian.AppendUint32(out, MagicLittleEndian)
	out = binary.LittleEndian.AppendUint32(out, 0) // revision
	out = binary.LittleEndian.AppendUint32(out, n)
	out = binary.LittleEndian.AppendUint32(out, origTable)
	out = binary.LittleEndian.AppendUint32(out, transTable)
	out = binary.LittleEndian.AppendUint32(out, 0) // hash table size
	out = binary.LittleEndian.AppendUint32(out, transTable+8*n)

	var data []byte
	offset := transTable + 8*n
	descriptors := func(get func(pair) string) {
		for _, p := range pairs {
			s := get(p)
			out = binary.LittleEndian.AppendUint32(out, uint32(len(s)))
			out = binary.LittleEndian.AppendUint32(out, offset+uint32(len(data)))
			data = append(data, s...)
			data = append(data, 0)
		}
	}
	descriptors(func(p pair) string { return p.id })
	descriptors(func(p pair) string { return p.str })

	return append(out, data...)
}

// headerString renders the header entry as msgfmt stores it: one
// "Name: value\n" line per field.
func headerString(meta entities.Metadata) string {
	var b strings.Builder
	field := func(name, value string) {
		if value != "" {
			b.WriteString(name + ": " + value + "\n")
		}
	}
	field("Project-Id-Version", meta.ProjectIDVersion)
	field("Report-Msgid-Bugs-To", meta.ReportBugsTo)
	field("POT-Creation-Date", podate.Format(meta.POTCreationDate))
	field("PO-Revision-Date", podate.Format(meta.PORevisionDate))
	field("Last-Translator", meta.LastTranslator)
	field("Language-Team", meta.LanguageTeam)
	field("Language", meta.Language)
	field("MIME-Version", "1.0")
	field("Content-Type", "text/plain; charset=UTF-8")
	field("Content-Transfer-Encoding", "8bit")
	field("Plural-Forms", meta.PluralForms)
	field("X-Generator", meta.Generator)

	extra := make([]string, 0, len(meta.Extra))
	for k := range meta.Extra {
		extra = append(extra, k)
	}
	sort.Strings(extra)
	for _, k := range extra {
		field(k, meta.Extra[k])
	}
	return b.String()
}
