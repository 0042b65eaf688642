package domain

import "errors"

// Domain errors.
var (
	ErrCatalogNotFound   = errors.New("catalog not found")
	ErrCatalogMalformed  = errors.New("catalog is malformed")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrLocaleNotFound    = errors.New("no catalog stored for locale")
	ErrNoDatabase        = errors.New("database is not configured")
)

var codes = map[error]string{
	ErrCatalogNotFound:   "catalog_not_found",
	ErrCatalogMalformed:  "catalog_malformed",
	ErrUnsupportedFormat: "unsupported_format",
	ErrLocaleNotFound:    "locale_not_found",
	ErrNoDatabase:        "no_database",
}

// Code returns the stable code of the domain error wrapped in err, or "".
func Code(err error) string {
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
