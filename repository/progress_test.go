package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/vocabook-api/models"
)

func TestProgressRepository_FindAndSave(t *testing.T) {
	t.Parallel()

	f := seed(t)
	repo := NewProgressRepository(f.database)
	ctx := context.Background()

	_, err := repo.Find(ctx, f.user.ID, f.cat.ID)
	require.ErrorIs(t, err, ErrNotFound)

	p := models.NewProgress(f.user.ID, f.cat.ID)
	p.Favorite = models.FavoriteYes
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Find(ctx, f.user.ID, f.cat.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLearning, got.Status)
	assert.Equal(t, models.FavoriteYes, got.Favorite)
	assert.Nil(t, got.LastReviewedAt)

	// Saving a fresh record for the same pair overwrites instead of appending.
	reviewed := time.Now().UTC().Truncate(time.Second)
	again := models.NewProgress(f.user.ID, f.cat.ID)
	again.Status = models.StatusMastered
	again.LastReviewedAt = &reviewed
	require.NoError(t, repo.Save(ctx, again))

	got, err = repo.Find(ctx, f.user.ID, f.cat.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusMastered, got.Status)
	assert.Equal(t, models.FavoriteNo, got.Favorite)
	require.NotNil(t, got.LastReviewedAt)
	assert.True(t, reviewed.Equal(*got.LastReviewedAt))

	var count int64
	require.NoError(t, f.database.Model(&models.Progress{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProgressRepository_ListForVocabularies(t *testing.T) {
	t.Parallel()

	f := seed(t)
	repo := NewProgressRepository(f.database)
	ctx := context.Background()

	mine := models.NewProgress(f.user.ID, f.cat.ID)
	mine.Status = models.StatusFamiliar
	require.NoError(t, repo.Save(ctx, mine))
	require.NoError(t, repo.Save(ctx, models.NewProgress(f.other.ID, f.dog.ID)))
	require.NoError(t, repo.Save(ctx, models.NewProgress(f.user.ID, f.rice.ID)))

	got, err := repo.ListForVocabularies(ctx, f.user.ID, []uint{f.cat.ID, f.dog.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.StatusFamiliar, got[f.cat.ID].Status)

	empty, err := repo.ListForVocabularies(ctx, f.user.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProgressRepository_FavoriteVocabularies(t *testing.T) {
	t.Parallel()

	f := seed(t)
	repo := NewProgressRepository(f.database)
	ctx := context.Background()

	for _, p := range []*models.Progress{
		{UserID: f.user.ID, VocabularyID: f.cat.ID, Status: models.StatusLearning, Favorite: models.FavoriteYes},
		{UserID: f.user.ID, VocabularyID: f.dog.ID, Status: models.StatusLearning, Favorite: models.FavoriteNo},
		{UserID: f.user.ID, VocabularyID: f.rice.ID, Status: models.StatusMastered, Favorite: models.FavoriteYes},
		{UserID: f.other.ID, VocabularyID: f.dog.ID, Status: models.StatusLearning, Favorite: models.FavoriteYes},
	} {
		require.NoError(t, repo.Save(ctx, p))
	}

	favorites, err := repo.FavoriteVocabularies(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)

	headwords := map[string]string{}
	for _, v := range favorites {
		require.NotNil(t, v.Category)
		headwords[v.Headword] = v.Category.Name
	}
	assert.Equal(t, map[string]string{"ねこ": "Animals", "ごはん": "Food"}, headwords)

	none, err := repo.FavoriteVocabularies(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
