package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrewpaige1/vocabook-api/models"
)

// ProgressRepository stores per-user vocabulary progress.
type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Find returns ErrNotFound when the user never interacted with the item.
func (r *ProgressRepository) Find(ctx context.Context, userID, vocabularyID uint) (*models.Progress, error) {
	var progress models.Progress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND vocabulary_id = ?", userID, vocabularyID).
		First(&progress).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &progress, nil
}

// Save inserts the record or overwrites the existing one for the same pair.
func (r *ProgressRepository) Save(ctx context.Context, progress *models.Progress) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "vocabulary_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "favorite", "last_reviewed_at", "updated_at"}),
		}).
		Create(progress).Error
	if err != nil {
		return fmt.Errorf("save progress: %w", translateError(err))
	}
	return nil
}

// ListForVocabularies returns the user's records for the given items keyed by vocabulary id.
func (r *ProgressRepository) ListForVocabularies(ctx context.Context, userID uint, vocabularyIDs []uint) (map[uint]*models.Progress, error) {
	out := make(map[uint]*models.Progress, len(vocabularyIDs))
	if len(vocabularyIDs) == 0 {
		return out, nil
	}

	var records []models.Progress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND vocabulary_id IN ?", userID, vocabularyIDs).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	for i := range records {
		out[records[i].VocabularyID] = &records[i]
	}
	return out, nil
}

// FavoriteVocabularies returns the items the user marked as favorite, with their category.
func (r *ProgressRepository) FavoriteVocabularies(ctx context.Context, userID uint) ([]models.Vocabulary, error) {
	var vocabularies []models.Vocabulary
	err := r.db.WithContext(ctx).
		Select("vocabularies.*").
		Joins("JOIN user_vocabularies ON user_vocabularies.vocabulary_id = vocabularies.id").
		Where("user_vocabularies.user_id = ? AND user_vocabularies.favorite = ?", userID, models.FavoriteYes).
		Preload("Category").
		Find(&vocabularies).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return vocabularies, nil
}
