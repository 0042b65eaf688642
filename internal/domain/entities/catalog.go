package entities

import "sort"

// Catalog is an immutable mapping from source strings to their translations.
// A nil or empty Catalog translates every key to itself.
type Catalog struct {
	metadata Metadata
	entries  map[string]Entry
}

// NewCatalog builds a Catalog from entries. Later entries with the same key
// replace earlier ones; the header entry (empty msgid) is ignored.
func NewCatalog(metadata Metadata, entries []Entry) *Catalog {
	c := &Catalog{
		metadata: metadata,
		entries:  make(map[string]Entry, len(entries)),
	}
	if metadata.Extra != nil {
		extra := make(map[string]string, len(metadata.Extra))
		for k, v := range metadata.Extra {
			extra[k] = v
		}
		c.metadata.Extra = extra
	}
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		if e.StrPlural != nil {
			e.StrPlural = append([]string(nil), e.StrPlural...)
		}
		c.entries[e.Key()] = e
	}
	return c
}

// Empty returns a catalog with no entries.
func Empty() *Catalog {
	return NewCatalog(Metadata{}, nil)
}

// Translate returns the translation of key, or key itself when the catalog
// has no non-empty translation for it.
func (c *Catalog) Translate(key string) string {
	if c == nil {
		return key
	}
	e, ok := c.entries[key]
	if !ok {
		return key
	}
	if e.IsPlural() {
		if len(e.StrPlural) > 0 && e.StrPlural[0] != "" {
			return e.StrPlural[0]
		}
		return key
	}
	if e.Str == "" {
		return key
	}
	return e.Str
}

// Lookup returns the entry stored under key.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.entries[key]
	if ok && e.StrPlural != nil {
		e.StrPlural = append([]string(nil), e.StrPlural...)
	}
	return e, ok
}

// Forms returns the translated forms stored under key, in msgstr order.
func (c *Catalog) Forms(key string) []string {
	e, ok := c.Lookup(key)
	if !ok {
		return nil
	}
	return e.Forms()
}

// Keys returns every lookup key, sorted.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns every entry, sorted by key.
func (c *Catalog) Entries() []Entry {
	keys := c.Keys()
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		e, _ := c.Lookup(k)
		out = append(out, e)
	}
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

func (c *Catalog) Metadata() Metadata {
	if c == nil {
		return Metadata{}
	}
	m := c.metadata
	if m.Extra != nil {
		extra := make(map[string]string, len(m.Extra))
		for k, v := range m.Extra {
			extra[k] = v
		}
		m.Extra = extra
	}
	return m
}
