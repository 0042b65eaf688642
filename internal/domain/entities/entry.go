package entities

// ContextSeparator joins msgctxt and msgid into a single lookup key.
const ContextSeparator = "\x04"

// Entry is one translated message of a catalog.
type Entry struct {
	Context   string
	ID        string
	IDPlural  string
	Str       string
	StrPlural []string
}

// Key returns the lookup key of the entry.
func (e Entry) Key() string {
	return JoinKey(e.Context, e.ID)
}

// IsPlural reports whether the entry carries plural forms.
func (e Entry) IsPlural() bool {
	return e.IDPlural != ""
}

// Forms returns the translated forms in msgstr order.
func (e Entry) Forms() []string {
	if e.IsPlural() {
		return e.StrPlural
	}
	return []string{e.Str}
}

// Translated reports whether at least one form is non-empty.
func (e Entry) Translated() bool {
	for _, f := range e.Forms() {
		if f != "" {
			return true
		}
	}
	return false
}

// JoinKey builds the lookup key for msgid in context ctx.
func JoinKey(ctx, id string) string {
	if ctx == "" {
		return id
	}
	return ctx + ContextSeparator + id
}
