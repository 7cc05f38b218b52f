package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/andrewpaige1/vocabook-api/models"
	"github.com/andrewpaige1/vocabook-api/validation"
)

type CategoryInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description"`
}

type VocabularyInput struct {
	CategoryID    uint    `json:"category_id" validate:"required"`
	Headword      string  `json:"headword" validate:"required,max=255"`
	Meaning       string  `json:"meaning" validate:"required,max=255"`
	RomanizedForm *string `json:"romanized_form" validate:"omitempty,max=255"`
	Example       *string `json:"example"`
}

// CatalogService administers categories and vocabulary items.
type CatalogService struct {
	categories   CategoryStore
	vocabularies VocabularyStore
	log          *zap.Logger
}

func NewCatalogService(categories CategoryStore, vocabularies VocabularyStore, log *zap.Logger) *CatalogService {
	return &CatalogService{categories: categories, vocabularies: vocabularies, log: log}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	in = in.normalize()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	category := &models.Category{Name: in.Name, Description: in.Description}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, duplicateAs(err, "name")
	}

	s.log.Info("category created", zap.Uint("id", category.ID), zap.String("slug", category.Slug))
	return category, nil
}

// UpdateCategory renames the category; the slug follows the new name.
func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, in CategoryInput) (*models.Category, error) {
	in = in.normalize()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = in.Name
	category.Description = in.Description
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, duplicateAs(err, "name")
	}
	return category, nil
}

// DeleteCategory also removes the category's vocabulary.
func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("category deleted", zap.Uint("id", id))
	return nil
}

// EnsureCategory returns the category with the given name, creating it if needed.
func (s *CatalogService) EnsureCategory(ctx context.Context, name string) (*models.Category, bool, error) {
	name = strings.TrimSpace(name)
	category, err := s.categories.FindByName(ctx, name)
	if err == nil {
		return category, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	category, err = s.CreateCategory(ctx, CategoryInput{Name: name})
	if err != nil {
		return nil, false, err
	}
	return category, true, nil
}

// ListVocabularies lists every item, or only one category's when categoryID is set.
func (s *CatalogService) ListVocabularies(ctx context.Context, categoryID uint) ([]models.Vocabulary, error) {
	var (
		vocabularies []models.Vocabulary
		err          error
	)
	if categoryID == 0 {
		vocabularies, err = s.vocabularies.List(ctx)
	} else {
		vocabularies, err = s.vocabularies.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}
	if vocabularies == nil {
		vocabularies = []models.Vocabulary{}
	}
	return vocabularies, nil
}

func (s *CatalogService) CreateVocabulary(ctx context.Context, creatorID uint, in VocabularyInput) (*models.Vocabulary, error) {
	in = in.normalize()
	if err := s.validateVocabulary(ctx, in); err != nil {
		return nil, err
	}

	vocabulary := &models.Vocabulary{CreatorID: &creatorID}
	in.apply(vocabulary)
	if err := s.vocabularies.Create(ctx, vocabulary); err != nil {
		return nil, duplicateAs(err, "headword")
	}
	return vocabulary, nil
}

func (s *CatalogService) UpdateVocabulary(ctx context.Context, id uint, in VocabularyInput) (*models.Vocabulary, error) {
	in = in.normalize()
	if err := s.validateVocabulary(ctx, in); err != nil {
		return nil, err
	}

	vocabulary, err := s.vocabularies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.apply(vocabulary)
	vocabulary.Category = nil
	if err := s.vocabularies.Update(ctx, vocabulary); err != nil {
		return nil, duplicateAs(err, "headword")
	}
	return vocabulary, nil
}

// UpsertVocabulary creates the item or updates the one with the same headword.
func (s *CatalogService) UpsertVocabulary(ctx context.Context, creatorID uint, in VocabularyInput) (bool, error) {
	existing, err := s.vocabularies.FindByHeadword(ctx, strings.TrimSpace(in.Headword))
	switch {
	case errors.Is(err, ErrNotFound):
		_, err = s.CreateVocabulary(ctx, creatorID, in)
		return err == nil, err
	case err != nil:
		return false, err
	}

	_, err = s.UpdateVocabulary(ctx, existing.ID, in)
	return false, err
}

func (s *CatalogService) DeleteVocabulary(ctx context.Context, id uint) error {
	return s.vocabularies.Delete(ctx, id)
}

func (s *CatalogService) validateVocabulary(ctx context.Context, in VocabularyInput) error {
	if err := validation.Struct(in); err != nil {
		return err
	}

	_, err := s.categories.FindByID(ctx, in.CategoryID)
	if errors.Is(err, ErrNotFound) {
		return validation.Field("category_id", "does not exist")
	}
	return err
}

func (in CategoryInput) normalize() CategoryInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = optional(in.Description)
	return in
}

func (in VocabularyInput) normalize() VocabularyInput {
	in.Headword = strings.TrimSpace(in.Headword)
	in.Meaning = strings.TrimSpace(in.Meaning)
	in.RomanizedForm = optional(in.RomanizedForm)
	in.Example = optional(in.Example)
	return in
}

func (in VocabularyInput) apply(v *models.Vocabulary) {
	v.CategoryID = in.CategoryID
	v.Headword = in.Headword
	v.Meaning = in.Meaning
	v.RomanizedForm = in.RomanizedForm
	v.Example = in.Example
}

// optional trims s and turns blank strings into nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// duplicateAs reports a unique violation as a validation error on field.
func duplicateAs(err error, field string) error {
	if errors.Is(err, ErrDuplicate) {
		return validation.Field(field, "has already been taken")
	}
	return err
}
