package domain

// Catalog sources.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceDatabase = "db"
)

// Export formats.
const (
	FormatMO   = "mo"
	FormatTOML = "toml"
)
