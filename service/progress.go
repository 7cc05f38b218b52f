package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/andrewpaige1/vocabook-api/models"
	"github.com/andrewpaige1/vocabook-api/validation"
)

const (
	msgFavoriteAdded   = "Added to favorites"
	msgFavoriteRemoved = "Removed from favorites"
)

// FavoriteResult is the state of the favorite flag after a toggle.
type FavoriteResult struct {
	Favorited bool
	Message   string
}

// ProgressService tracks favorites and learning status per user and vocabulary item.
type ProgressService struct {
	progress     ProgressStore
	categories   CategoryStore
	vocabularies VocabularyStore
	log          *zap.Logger
	now          func() time.Time
}

func NewProgressService(progress ProgressStore, categories CategoryStore, vocabularies VocabularyStore, log *zap.Logger) *ProgressService {
	return &ProgressService{
		progress:     progress,
		categories:   categories,
		vocabularies: vocabularies,
		log:          log,
		now:          time.Now,
	}
}

// ToggleFavorite flips the favorite flag, creating the record on first use.
func (s *ProgressService) ToggleFavorite(ctx context.Context, userID, vocabularyID uint) (FavoriteResult, error) {
	p, err := s.getOrCreate(ctx, userID, vocabularyID)
	if err != nil {
		return FavoriteResult{}, err
	}

	p.Favorite = p.Favorite.Toggle()
	if err := s.progress.Save(ctx, p); err != nil {
		return FavoriteResult{}, err
	}

	s.log.Debug("favorite toggled",
		zap.Uint("user_id", userID),
		zap.Uint("vocabulary_id", vocabularyID),
		zap.Bool("favorited", p.Favorite.Bool()),
	)

	result := FavoriteResult{Favorited: p.Favorite.Bool(), Message: msgFavoriteRemoved}
	if result.Favorited {
		result.Message = msgFavoriteAdded
	}
	return result, nil
}

// UpdateStatus sets the learning status and stamps last_reviewed_at with the
// current time, so the item reads as reviewed now. Favorites never touch it.
// The status is checked before anything is read or written.
func (s *ProgressService) UpdateStatus(ctx context.Context, userID, vocabularyID uint, status string) error {
	if status == "" {
		return validation.Field("status", "is required")
	}
	st, err := models.ParseStatus(status)
	if err != nil {
		return validation.Field("status", "must be one of: learning, familiar, mastered")
	}

	p, err := s.getOrCreate(ctx, userID, vocabularyID)
	if err != nil {
		return err
	}

	reviewedAt := s.now()
	p.Status = st
	p.LastReviewedAt = &reviewedAt
	if err := s.progress.Save(ctx, p); err != nil {
		return err
	}

	s.log.Debug("status updated",
		zap.Uint("user_id", userID),
		zap.Uint("vocabulary_id", vocabularyID),
		zap.String("status", string(st)),
	)
	return nil
}

// ListFavorites returns the user's favorite items with their categories.
func (s *ProgressService) ListFavorites(ctx context.Context, userID uint) ([]models.Vocabulary, error) {
	favorites, err := s.progress.FavoriteVocabularies(ctx, userID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []models.Vocabulary{}
	}
	return favorites, nil
}

// Categories returns the learning index: categories by name with vocabulary counts.
func (s *ProgressService) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// CategoryView merges a category's items with the user's progress.
// Items without a record get the default projection; nothing is written.
func (s *ProgressService) CategoryView(ctx context.Context, slug string, userID uint) (*models.CategoryView, error) {
	category, err := s.categories.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	vocabularies, err := s.vocabularies.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(vocabularies))
	for i, v := range vocabularies {
		ids[i] = v.ID
	}

	records, err := s.progress.ListForVocabularies(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	views := make([]models.VocabularyView, len(vocabularies))
	for i, v := range vocabularies {
		views[i] = records[v.ID].View(v)
	}

	return &models.CategoryView{Category: *category, Vocabularies: views}, nil
}

// getOrCreate loads the pair's record or materializes the defaults in memory.
func (s *ProgressService) getOrCreate(ctx context.Context, userID, vocabularyID uint) (*models.Progress, error) {
	exists, err := s.vocabularies.Exists(ctx, vocabularyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("vocabulary %d: %w", vocabularyID, ErrNotFound)
	}

	p, err := s.load(ctx, userID, vocabularyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = models.NewProgress(userID, vocabularyID)
	}
	return p, nil
}

// load returns nil without error when the pair has no record yet.
func (s *ProgressService) load(ctx context.Context, userID, vocabularyID uint) (*models.Progress, error) {
	p, err := s.progress.Find(ctx, userID, vocabularyID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
