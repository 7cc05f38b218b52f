package service

import (
	"context"
	"math"

	"github.com/andrewpaige1/vocabook-api/models"
)

// DashboardService derives the status breakdown of a user's tracked vocabulary.
type DashboardService struct {
	stats StatsReader
}

func NewDashboardService(stats StatsReader) *DashboardService {
	return &DashboardService{stats: stats}
}

func (s *DashboardService) Stats(ctx context.Context, userID uint) (models.DashboardStats, error) {
	counts, err := s.stats.StatusCounts(ctx, userID)
	if err != nil {
		return models.DashboardStats{}, err
	}
	return ComputeStats(counts), nil
}

// ComputeStats partitions the counts by status. Percentages are rounded to
// two decimals and are all zero when nothing is tracked.
func ComputeStats(counts []models.StatusCount) models.DashboardStats {
	var stats models.DashboardStats
	for _, c := range counts {
		switch c.Status {
		case models.StatusLearning:
			stats.LearningCount += c.Count
		case models.StatusFamiliar:
			stats.FamiliarCount += c.Count
		case models.StatusMastered:
			stats.MasteredCount += c.Count
		}
		stats.TotalCount += c.Count
	}

	stats.LearningPercentage = percentage(stats.LearningCount, stats.TotalCount)
	stats.FamiliarPercentage = percentage(stats.FamiliarCount, stats.TotalCount)
	stats.MasteredPercentage = percentage(stats.MasteredCount, stats.TotalCount)
	return stats
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*100*100) / 100
}
