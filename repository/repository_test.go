package repository

import (
	"fmt"
	"testing"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrewpaige1/vocabook-api/models"
)

// newTestDB opens a private in-memory sqlite database with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", gonanoid.Must())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

type fixture struct {
	user     models.User
	other    models.User
	animals  models.Category
	food     models.Category
	cat      models.Vocabulary
	dog      models.Vocabulary
	rice     models.Vocabulary
	database *gorm.DB
}

func seed(t *testing.T) fixture {
	t.Helper()

	db := newTestDB(t)
	f := fixture{database: db}

	f.user = models.User{Name: "Learner", Email: "learner@example.com", Role: models.RoleUser, PasswordHash: "x"}
	f.other = models.User{Name: "Other", Email: "other@example.com", Role: models.RoleUser, PasswordHash: "x"}
	require.NoError(t, db.Create(&f.user).Error)
	require.NoError(t, db.Create(&f.other).Error)

	f.animals = models.Category{Name: "Animals"}
	f.food = models.Category{Name: "Food"}
	require.NoError(t, db.Create(&f.animals).Error)
	require.NoError(t, db.Create(&f.food).Error)

	f.cat = models.Vocabulary{CategoryID: f.animals.ID, Headword: "ねこ", Meaning: "cat"}
	f.dog = models.Vocabulary{CategoryID: f.animals.ID, Headword: "いぬ", Meaning: "dog"}
	f.rice = models.Vocabulary{CategoryID: f.food.ID, Headword: "ごはん", Meaning: "rice"}
	for _, v := range []*models.Vocabulary{&f.cat, &f.dog, &f.rice} {
		require.NoError(t, db.Create(v).Error)
	}

	return f
}
