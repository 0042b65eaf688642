package podate

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the date layout xgettext and Poedit write in catalog headers,
// e.g. "2019-05-05 10:44-0300".
const Layout = "2006-01-02 15:04-0700"

var layouts = []string{
	Layout,
	"2006-01-02 15:04:05-0700",
	"2006-01-02 15:04Z0700",
	"2006-01-02 15:04 -0700",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse parses a POT-Creation-Date or PO-Revision-Date header value.
// The untouched template value "YEAR-MO-DA HO:MI+ZONE" yields the zero time.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.HasPrefix(value, "YEAR") {
		return time.Time{}, nil
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD HH:MM+ZONE)", value)
}

// Format renders t for a catalog header; the zero time renders as "".
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(Layout)
}
