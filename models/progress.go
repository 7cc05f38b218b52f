package models

import "time"

// Progress is one user's learning state for one vocabulary item.
// The (UserID, VocabularyID) pair is the identity of the record.
type Progress struct {
	UserID         uint       `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	VocabularyID   uint       `gorm:"primaryKey;autoIncrement:false" json:"vocabulary_id"`
	Status         Status     `gorm:"not null;size:20;default:learning" json:"status"`
	Favorite       Favorite   `gorm:"not null;size:3;default:no" json:"favorite"`
	LastReviewedAt *time.Time `gorm:"default:null" json:"last_reviewed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Vocabulary *Vocabulary `gorm:"foreignKey:VocabularyID" json:"-"`
}

func (Progress) TableName() string {
	return "user_vocabularies"
}

// NewProgress returns the state a pair has before the user ever touched it.
func NewProgress(userID, vocabularyID uint) *Progress {
	return &Progress{
		UserID:       userID,
		VocabularyID: vocabularyID,
		Status:       StatusLearning,
		Favorite:     FavoriteNo,
	}
}

// View projects a vocabulary item through an optional progress record.
// A nil record yields the defaults.
func (p *Progress) View(v Vocabulary) VocabularyView {
	view := VocabularyView{Vocabulary: v, Status: StatusLearning}
	if p == nil {
		return view
	}
	view.IsFavorited = p.Favorite.Bool()
	view.Status = p.Status
	view.LastReviewedAt = p.LastReviewedAt
	return view
}

// StatusCount is one row of the per-status aggregation.
type StatusCount struct {
	Status Status `db:"status"`
	Count  int    `db:"count"`
}

// DashboardStats is the status breakdown of a user's tracked vocabulary.
type DashboardStats struct {
	LearningCount      int     `json:"learningCount"`
	FamiliarCount      int     `json:"familiarCount"`
	MasteredCount      int     `json:"masteredCount"`
	TotalCount         int     `json:"totalCount"`
	LearningPercentage float64 `json:"learningPercentage"`
	FamiliarPercentage float64 `json:"familiarPercentage"`
	MasteredPercentage float64 `json:"masteredPercentage"`
}
