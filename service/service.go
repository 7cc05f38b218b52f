package service

import (
	"context"

	"github.com/andrewpaige1/vocabook-api/models"
	"github.com/andrewpaige1/vocabook-api/repository"
)

var (
	ErrNotFound  = repository.ErrNotFound
	ErrDuplicate = repository.ErrDuplicate
)

type ProgressStore interface {
	Find(ctx context.Context, userID, vocabularyID uint) (*models.Progress, error)
	Save(ctx context.Context, progress *models.Progress) error
	ListForVocabularies(ctx context.Context, userID uint, vocabularyIDs []uint) (map[uint]*models.Progress, error)
	FavoriteVocabularies(ctx context.Context, userID uint) ([]models.Vocabulary, error)
}

type CategoryStore interface {
	ListWithCounts(ctx context.Context) ([]models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}

type VocabularyStore interface {
	FindByID(ctx context.Context, id uint) (*models.Vocabulary, error)
	FindByHeadword(ctx context.Context, headword string) (*models.Vocabulary, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.Vocabulary, error)
	List(ctx context.Context) ([]models.Vocabulary, error)
	Create(ctx context.Context, vocabulary *models.Vocabulary) error
	Update(ctx context.Context, vocabulary *models.Vocabulary) error
	Delete(ctx context.Context, id uint) error
}

type UserStore interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

type StatsReader interface {
	StatusCounts(ctx context.Context, userID uint) ([]models.StatusCount, error)
}
