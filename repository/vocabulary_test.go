package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/vocabook-api/models"
)

func TestVocabularyRepository(t *testing.T) {
	t.Parallel()

	f := seed(t)
	repo := NewVocabularyRepository(f.database)
	ctx := context.Background()

	ok, err := repo.Exists(ctx, f.cat.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, ok)

	items, err := repo.ListByCategory(ctx, f.animals.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "ねこ", items[0].Headword)
	assert.Equal(t, "いぬ", items[1].Headword)

	got, err := repo.FindByID(ctx, f.rice.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Food", got.Category.Name)

	err = repo.Create(ctx, &models.Vocabulary{CategoryID: f.food.ID, Headword: "ねこ", Meaning: "another cat"})
	require.ErrorIs(t, err, ErrDuplicate)

	romaji := "gohan"
	got.RomanizedForm = &romaji
	got.Meaning = "cooked rice"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.FindByHeadword(ctx, "ごはん")
	require.NoError(t, err)
	assert.Equal(t, "cooked rice", updated.Meaning)
	require.NotNil(t, updated.RomanizedForm)
	assert.Equal(t, "gohan", *updated.RomanizedForm)
}

func TestVocabularyRepository_Delete(t *testing.T) {
	t.Parallel()

	f := seed(t)
	repo := NewVocabularyRepository(f.database)
	progress := NewProgressRepository(f.database)
	ctx := context.Background()

	require.NoError(t, progress.Save(ctx, models.NewProgress(f.user.ID, f.dog.ID)))
	require.NoError(t, repo.Delete(ctx, f.dog.ID))

	_, err := progress.Find(ctx, f.user.ID, f.dog.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindByID(ctx, f.dog.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, f.dog.ID), ErrNotFound)
}
