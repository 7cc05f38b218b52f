package models

import (
	"fmt"
	"strings"
)

// Status describes how well a user knows a vocabulary item.
type Status string

const (
	StatusLearning Status = "learning"
	StatusFamiliar Status = "familiar"
	StatusMastered Status = "mastered"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusLearning, StatusFamiliar, StatusMastered}

func (s Status) Valid() bool {
	switch s {
	case StatusLearning, StatusFamiliar, StatusMastered:
		return true
	}
	return false
}

// ParseStatus accepts only the exact lowercase status names.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("status must be one of %s", statusList())
	}
	return status, nil
}

func statusList() string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Favorite is stored as "yes"/"no" to match the user_vocabularies enum column.
type Favorite string

const (
	FavoriteYes Favorite = "yes"
	FavoriteNo  Favorite = "no"
)

func FavoriteFrom(b bool) Favorite {
	if b {
		return FavoriteYes
	}
	return FavoriteNo
}

func (f Favorite) Bool() bool {
	return f == FavoriteYes
}

// Toggle flips yes to no and anything else to yes.
func (f Favorite) Toggle() Favorite {
	return FavoriteFrom(!f.Bool())
}
