package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Category groups vocabulary items
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null;size:120" json:"slug"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Vocabularies []Vocabulary `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;" json:"-"`

	// Filled only by queries that count vocabulary.
	VocabularyCount *int `gorm:"->;-:migration" json:"vocabularies_count,omitempty"`
}

// Slugify derives the URL slug of a category name.
func Slugify(name string) string {
	return slug.Make(name)
}

// BeforeSave keeps Slug derived from Name on every insert and update.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Slug = Slugify(c.Name)
	return nil
}
