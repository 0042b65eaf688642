// Package pyformat fills the named placeholders of catalog templates.
//
// Templates use the str.format syntax of the tool the catalog was written
// for: {name}, {name!r}, {name!s} and {name:format}, with {{ and }} as literal
// braces. Format specs are accepted but ignored.
package pyformat

import (
	"fmt"
	"sort"
	"strings"
)

// MissingFieldsError lists placeholders that had no value.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("pyformat: missing fields %s", strings.Join(e.Fields, ", "))
}

// Format replaces every placeholder of tmpl with its value from data.
// Unknown placeholders and unbalanced braces are kept verbatim; the returned
// string is always usable even when err is non-nil.
func Format(tmpl string, data map[string]any) (string, error) {
	if !strings.ContainsAny(tmpl, "{}") {
		return tmpl, nil
	}

	var b strings.Builder
	b.Grow(len(tmpl))
	missing := map[string]struct{}{}
	unbalanced := false

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch {
		case c == '{' && i+1 < len(tmpl) && tmpl[i+1] == '{':
			b.WriteByte('{')
			i++
		case c == '}' && i+1 < len(tmpl) && tmpl[i+1] == '}':
			b.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				unbalanced = true
				b.WriteString(tmpl[i:])
				i = len(tmpl)
				continue
			}
			field := tmpl[i+1 : i+1+end]
			name, conv := splitField(field)
			v, ok := data[name]
			if !ok {
				missing[name] = struct{}{}
				b.WriteString(tmpl[i : i+2+end])
			} else {
				b.WriteString(convert(v, conv))
			}
			i += end + 1
		case c == '}':
			unbalanced = true
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}

	if len(missing) > 0 {
		fields := make([]string, 0, len(missing))
		for f := range missing {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		return b.String(), &MissingFieldsError{Fields: fields}
	}
	if unbalanced {
		return b.String(), fmt.Errorf("pyformat: unbalanced braces in %q", tmpl)
	}
	return b.String(), nil
}

// Fields returns the placeholder names used by tmpl, in order of first use.
func Fields(tmpl string) []string {
	var out []string
	seen := map[string]bool{}
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '{' {
			continue
		}
		if i+1 < len(tmpl) && tmpl[i+1] == '{' {
			i++
			continue
		}
		end := strings.IndexByte(tmpl[i+1:], '}')
		if end < 0 {
			break
		}
		name, _ := splitField(tmpl[i+1 : i+1+end])
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
		i += end + 1
	}
	return out
}

func splitField(field string) (name, conv string) {
	if idx := strings.IndexByte(field, ':'); idx >= 0 {
		field = field[:idx]
	}
	name, conv, _ = strings.Cut(field, "!")
	return name, conv
}

func convert(v any, conv string) string {
	if conv == "r" {
		return Repr(v)
	}
	return Str(v)
}

// Str renders v the way str() would for the common scalar types.
func Str(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Repr renders v the way repr() would: strings are quoted, preferring single
// quotes unless the string contains one and no double quote.
func Repr(v any) string {
	s, ok := v.(string)
	if !ok {
		return Str(v)
	}
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}
	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}
