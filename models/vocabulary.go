package models

import "time"

// Vocabulary is a single learnable term belonging to one category
type Vocabulary struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CategoryID    uint      `gorm:"not null;index" json:"category_id"`
	Category      *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Headword      string    `gorm:"uniqueIndex;not null;size:255" json:"headword"`
	Meaning       string    `gorm:"not null;size:255" json:"meaning"`
	RomanizedForm *string   `gorm:"size:255" json:"romanized_form"`
	Example       *string   `gorm:"type:text" json:"example"`
	CreatorID     *uint     `gorm:"index" json:"creator_user_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Progress []Progress `gorm:"foreignKey:VocabularyID;constraint:OnDelete:CASCADE;" json:"-"`
}

// VocabularyView is a vocabulary item merged with one user's progress.
type VocabularyView struct {
	Vocabulary
	IsFavorited    bool       `json:"is_favorited"`
	Status         Status     `json:"status"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
}

// CategoryView is the learning page of a single category.
type CategoryView struct {
	Category     Category         `json:"category"`
	Vocabularies []VocabularyView `json:"vocabularies"`
}
