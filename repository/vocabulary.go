package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrewpaige1/vocabook-api/models"
)

type VocabularyRepository struct {
	db *gorm.DB
}

func NewVocabularyRepository(db *gorm.DB) *VocabularyRepository {
	return &VocabularyRepository{db: db}
}

func (r *VocabularyRepository) FindByID(ctx context.Context, id uint) (*models.Vocabulary, error) {
	var vocabulary models.Vocabulary
	if err := r.db.WithContext(ctx).Preload("Category").First(&vocabulary, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &vocabulary, nil
}

func (r *VocabularyRepository) FindByHeadword(ctx context.Context, headword string) (*models.Vocabulary, error) {
	var vocabulary models.Vocabulary
	if err := r.db.WithContext(ctx).Where("headword = ?", headword).First(&vocabulary).Error; err != nil {
		return nil, translateError(err)
	}
	return &vocabulary, nil
}

func (r *VocabularyRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Vocabulary{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count vocabulary: %w", err)
	}
	return count > 0, nil
}

// ListByCategory returns the category's items in insertion order.
func (r *VocabularyRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.Vocabulary, error) {
	var vocabularies []models.Vocabulary
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&vocabularies).Error
	if err != nil {
		return nil, fmt.Errorf("list vocabularies: %w", err)
	}
	return vocabularies, nil
}

func (r *VocabularyRepository) List(ctx context.Context) ([]models.Vocabulary, error) {
	var vocabularies []models.Vocabulary
	if err := r.db.WithContext(ctx).Preload("Category").Order("id").Find(&vocabularies).Error; err != nil {
		return nil, fmt.Errorf("list vocabularies: %w", err)
	}
	return vocabularies, nil
}

func (r *VocabularyRepository) Create(ctx context.Context, vocabulary *models.Vocabulary) error {
	if err := r.db.WithContext(ctx).Omit("Category").Create(vocabulary).Error; err != nil {
		return fmt.Errorf("create vocabulary: %w", translateError(err))
	}
	return nil
}

func (r *VocabularyRepository) Update(ctx context.Context, vocabulary *models.Vocabulary) error {
	if err := r.db.WithContext(ctx).Omit("Category").Save(vocabulary).Error; err != nil {
		return fmt.Errorf("update vocabulary: %w", translateError(err))
	}
	return nil
}

func (r *VocabularyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vocabulary_id = ?", id).Delete(&models.Progress{}).Error; err != nil {
			return fmt.Errorf("delete progress: %w", err)
		}

		result := tx.Delete(&models.Vocabulary{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete vocabulary: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
