package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/andrewpaige1/vocabook-api/models"
)

// QueryI is the subset of *sqlx.DB the read-side repositories need.
type QueryI interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// StatsRepository runs aggregate queries over user progress.
type StatsRepository struct {
	db       QueryI
	bindType int
}

// NewStatsRepository binds queries for the given sqlx driver name.
func NewStatsRepository(db QueryI, driverName string) *StatsRepository {
	return &StatsRepository{db: db, bindType: sqlx.BindType(driverName)}
}

// StatusCounts returns the number of the user's records per status.
func (r *StatsRepository) StatusCounts(ctx context.Context, userID uint) ([]models.StatusCount, error) {
	query := sqlx.Rebind(r.bindType, `
		SELECT status, COUNT(*) AS count
		FROM user_vocabularies
		WHERE user_id = ?
		GROUP BY status
	`)

	counts := make([]models.StatusCount, 0, len(models.Statuses))
	if err := r.db.SelectContext(ctx, &counts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to count statuses for user %d: %w", userID, err)
	}
	return counts, nil
}
