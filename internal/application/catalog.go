package application

import (
	"context"
	"fmt"
	"log"
	"strings"

	"friendly/internal/domain"
	"friendly/internal/domain/entities"
	"friendly/internal/ports/output"
)

// CatalogSettings selects where the catalog comes from.
type CatalogSettings struct {
	Locale string
	Source string
	Path   string
}

type CatalogService struct {
	files    output.CatalogFiles
	repo     output.CatalogRepository
	settings CatalogSettings
}

// NewCatalogService builds the service; repo may be nil when no database
// is configured.
func NewCatalogService(
	files output.CatalogFiles,
	repo output.CatalogRepository,
	settings CatalogSettings,
) *CatalogService {
	return &CatalogService{
		files:    files,
		repo:     repo,
		settings: settings,
	}
}

// Load returns the configured catalog. Any failure is logged and yields an
// empty catalog, so every lookup falls back to the source text.
func (s *CatalogService) Load(ctx context.Context) (cat *entities.Catalog) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("catalog: load panicked, using untranslated messages: %v", r)
			cat = entities.Empty()
		}
	}()

	cat, err := s.LoadStrict(ctx)
	if err != nil {
		log.Printf("catalog: %v; using untranslated messages", err)
		return entities.Empty()
	}
	return cat
}

// LoadStrict is Load without the fallback.
func (s *CatalogService) LoadStrict(ctx context.Context) (*entities.Catalog, error) {
	switch s.settings.Source {
	case domain.SourceFile:
		// The file readers already name the path in their errors.
		return s.files.ReadFile(s.settings.Path)
	case domain.SourceDatabase:
		if s.repo == nil {
			return nil, domain.ErrNoDatabase
		}
		cat, err := s.repo.Load(ctx, s.settings.Locale)
		if err != nil {
			return nil, fmt.Errorf("load %s from database: %w", s.settings.Locale, err)
		}
		return cat, nil
	case domain.SourceEmbedded, "":
		return s.files.Embedded(s.settings.Locale)
	default:
		return nil, fmt.Errorf("catalog source %q: %w", s.settings.Source, domain.ErrUnsupportedFormat)
	}
}

// Import stores cat under its Language header, or the configured locale.
func (s *CatalogService) Import(ctx context.Context, cat *entities.Catalog) error {
	if s.repo == nil {
		return domain.ErrNoDatabase
	}
	locale := strings.TrimSpace(cat.Metadata().Language)
	if locale == "" {
		locale = s.settings.Locale
	}
	if err := s.repo.Save(ctx, locale, cat); err != nil {
		return fmt.Errorf("import %s: %w", locale, err)
	}
	return nil
}

func (s *CatalogService) Export(cat *entities.Catalog, format string) ([]byte, error) {
	return s.files.Encode(cat, format)
}
