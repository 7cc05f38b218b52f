package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/andrewpaige1/vocabook-api/models"
	"github.com/andrewpaige1/vocabook-api/service"
	"github.com/andrewpaige1/vocabook-api/validation"
)

// Catalog is the part of the catalog service the importer writes through.
type Catalog interface {
	EnsureCategory(ctx context.Context, name string) (*models.Category, bool, error)
	UpsertVocabulary(ctx context.Context, creatorID uint, in service.VocabularyInput) (bool, error)
}

// ImportConfig defines the import configuration
type ImportConfig struct {
	SheetName       string // empty means the first sheet
	CategoryColumn  string
	HeadwordColumn  string
	MeaningColumn   string
	RomanizedColumn string
	ExampleColumn   string
	StartRow        int // 1-based
	CreatorID       uint
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		CategoryColumn:  "A",
		HeadwordColumn:  "B",
		MeaningColumn:   "C",
		RomanizedColumn: "D",
		ExampleColumn:   "E",
		StartRow:        2,
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed    int      `json:"total_processed"`
	CategoriesCreated int      `json:"categories_created"`
	Created           int      `json:"created"`
	Updated           int      `json:"updated"`
	Skipped           int      `json:"skipped"`
	Errors            []string `json:"errors"`
}

type Importer struct {
	catalog Catalog
	log     *zap.Logger
}

func New(catalog Catalog, log *zap.Logger) *Importer {
	return &Importer{catalog: catalog, log: log}
}

type columns struct {
	category, headword, meaning, romanized, example int
}

// Import reads vocabulary rows from an xlsx workbook. Row level problems are
// collected in the result; only unreadable input or store failures abort.
func (im *Importer) Import(ctx context.Context, r io.Reader, cfg ImportConfig) (*ImportResult, error) {
	cols, err := resolveColumns(cfg)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if !hasSheet(f, sheet) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < cfg.StartRow {
			continue
		}
		if isBlank(row) {
			result.Skipped++
			continue
		}

		result.TotalProcessed++
		if err := im.processRow(ctx, row, cols, cfg.CreatorID, result); err != nil {
			var verrs validation.Errors
			if !errors.As(err, &verrs) && !errors.Is(err, errEmptyCategory) {
				return result, fmt.Errorf("row %d: %w", rowNum, err)
			}
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	im.log.Info("vocabulary import finished",
		zap.String("sheet", sheet),
		zap.Int("processed", result.TotalProcessed),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}

var (
	ErrInvalidWorkbook = errors.New("not an xlsx workbook")
	ErrSheetNotFound   = errors.New("sheet does not exist")

	errEmptyCategory = errors.New("category cannot be empty")
)

func (im *Importer) processRow(ctx context.Context, row []string, cols columns, creatorID uint, result *ImportResult) error {
	categoryName := cell(row, cols.category)
	if categoryName == "" {
		return errEmptyCategory
	}

	category, created, err := im.catalog.EnsureCategory(ctx, categoryName)
	if err != nil {
		return err
	}
	if created {
		result.CategoriesCreated++
	}

	in := service.VocabularyInput{
		CategoryID: category.ID,
		Headword:   cell(row, cols.headword),
		Meaning:    cell(row, cols.meaning),
	}
	if v := cell(row, cols.romanized); v != "" {
		in.RomanizedForm = &v
	}
	if v := cell(row, cols.example); v != "" {
		in.Example = &v
	}

	isNew, err := im.catalog.UpsertVocabulary(ctx, creatorID, in)
	if err != nil {
		return err
	}
	if isNew {
		result.Created++
	} else {
		result.Updated++
	}
	return nil
}

func resolveColumns(cfg ImportConfig) (columns, error) {
	var cols columns
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{cfg.CategoryColumn, &cols.category},
		{cfg.HeadwordColumn, &cols.headword},
		{cfg.MeaningColumn, &cols.meaning},
		{cfg.RomanizedColumn, &cols.romanized},
		{cfg.ExampleColumn, &cols.example},
	} {
		if c.name == "" {
			*c.dst = -1
			continue
		}
		n, err := excelize.ColumnNameToNumber(c.name)
		if err != nil {
			return cols, fmt.Errorf("invalid column %q: %w", c.name, err)
		}
		*c.dst = n - 1
	}
	return cols, nil
}

func hasSheet(f *excelize.File, name string) bool {
	for _, sheet := range f.GetSheetList() {
		if sheet == name {
			return true
		}
	}
	return false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
