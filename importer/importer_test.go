package importer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/andrewpaige1/vocabook-api/models"
	"github.com/andrewpaige1/vocabook-api/service"
	"github.com/andrewpaige1/vocabook-api/validation"
)

type fakeCatalog struct {
	categories map[string]uint
	headwords  map[string]service.VocabularyInput
	creators   []uint
	failOn     string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		categories: map[string]uint{"Animals": 1},
		headwords:  map[string]service.VocabularyInput{"いぬ": {CategoryID: 1, Headword: "いぬ", Meaning: "dog"}},
	}
}

func (c *fakeCatalog) EnsureCategory(ctx context.Context, name string) (*models.Category, bool, error) {
	if id, ok := c.categories[name]; ok {
		return &models.Category{ID: id, Name: name}, false, nil
	}
	id := uint(len(c.categories) + 1)
	c.categories[name] = id
	return &models.Category{ID: id, Name: name}, true, nil
}

func (c *fakeCatalog) UpsertVocabulary(ctx context.Context, creatorID uint, in service.VocabularyInput) (bool, error) {
	if in.Headword == c.failOn {
		return false, errors.New("db down")
	}
	if in.Meaning == "" {
		return false, validation.Field("meaning", "is required")
	}
	c.creators = append(c.creators, creatorID)
	_, exists := c.headwords[in.Headword]
	c.headwords[in.Headword] = in
	return !exists, nil
}

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImporter_Import(t *testing.T) {
	t.Parallel()

	buf := workbook(t, [][]interface{}{
		{"category", "headword", "meaning", "romanized", "example"},
		{"Animals", "ねこ", "cat", "neko", "ねこがいます"},
		{"Animals", "いぬ", "dog (updated)", "inu", ""},
		{"", ""},
		{"Food", "ごはん", "rice", "", ""},
		{"", "みず", "water", "", ""},
		{"Food", "パン", "", "", ""},
	})

	catalog := newFakeCatalog()
	cfg := DefaultImportConfig()
	cfg.CreatorID = 7

	got, err := New(catalog, zap.NewNop()).Import(context.Background(), buf, cfg)
	require.NoError(t, err)

	assert.Equal(t, 5, got.TotalProcessed)
	assert.Equal(t, 1, got.CategoriesCreated)
	assert.Equal(t, 2, got.Created)
	assert.Equal(t, 1, got.Updated)
	assert.Equal(t, 3, got.Skipped)
	require.Len(t, got.Errors, 2)
	assert.True(t, strings.HasPrefix(got.Errors[0], "Row 6: "))
	assert.Contains(t, got.Errors[1], "meaning: is required")

	neko := catalog.headwords["ねこ"]
	require.NotNil(t, neko.RomanizedForm)
	assert.Equal(t, "neko", *neko.RomanizedForm)
	assert.Nil(t, catalog.headwords["ごはん"].RomanizedForm)
	assert.Equal(t, "dog (updated)", catalog.headwords["いぬ"].Meaning)
	assert.Equal(t, []uint{7, 7, 7}, catalog.creators)
}

func TestImporter_Import_StoreFailureAborts(t *testing.T) {
	t.Parallel()

	buf := workbook(t, [][]interface{}{
		{"category", "headword", "meaning"},
		{"Animals", "ねこ", "cat"},
		{"Animals", "とり", "bird"},
	})

	catalog := newFakeCatalog()
	catalog.failOn = "ねこ"

	got, err := New(catalog, zap.NewNop()).Import(context.Background(), buf, DefaultImportConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Equal(t, 0, got.Created)
}

func TestImporter_Import_InvalidInput(t *testing.T) {
	t.Parallel()

	im := New(newFakeCatalog(), zap.NewNop())

	got, err := im.Import(context.Background(), strings.NewReader("not a workbook"), DefaultImportConfig())
	require.ErrorIs(t, err, ErrInvalidWorkbook)
	assert.Nil(t, got)

	cfg := DefaultImportConfig()
	cfg.SheetName = "Missing"
	got, err = im.Import(context.Background(), workbook(t, nil), cfg)
	require.ErrorIs(t, err, ErrSheetNotFound)
	assert.NotErrorIs(t, err, ErrInvalidWorkbook)
	assert.Nil(t, got)

	cfg = DefaultImportConfig()
	cfg.HeadwordColumn = "1"
	_, err = im.Import(context.Background(), workbook(t, nil), cfg)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSheetNotFound))
}

func TestImporter_Import_NamedSheet(t *testing.T) {
	t.Parallel()

	catalog := newFakeCatalog()
	im := New(catalog, zap.NewNop())

	cfg := DefaultImportConfig()
	cfg.SheetName = "Sheet1"
	got, err := im.Import(context.Background(), workbook(t, nil), cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalProcessed)
}
