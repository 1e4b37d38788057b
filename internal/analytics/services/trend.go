package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/teamhub/teamhub/internal/analytics/models"
	"github.com/teamhub/teamhub/pkg/logger"
)

const trendDays = 7

// TrendStore provides the windowed counts the trend is built from
type TrendStore interface {
	CountCompletedInWindow(projectID uint, from, to time.Time) (int64, error)
	CountProgressInWindow(projectID uint, from, to time.Time) (int64, error)
}

// ProductivityTrend computes the 7-day completion and progress-report
// series for a project, oldest day first, today last. Any store error
// degrades the whole trend to an empty list; a partial series would
// mislead more than an absent one.
func ProductivityTrend(projectID uint, now time.Time, store TrendStore) []models.TrendPoint {
	trend := make([]models.TrendPoint, 0, trendDays)

	for offset := trendDays - 1; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		to := from.AddDate(0, 0, 1)

		completed, err := store.CountCompletedInWindow(projectID, from, to)
		if err != nil {
			logger.Warn("trend computation failed", zap.Uint("project_id", projectID), zap.Error(err))
			return []models.TrendPoint{}
		}
		updates, err := store.CountProgressInWindow(projectID, from, to)
		if err != nil {
			logger.Warn("trend computation failed", zap.Uint("project_id", projectID), zap.Error(err))
			return []models.TrendPoint{}
		}

		trend = append(trend, models.TrendPoint{
			Date:            from.Format("2006-01-02"),
			TasksCompleted:  int(completed),
			ProgressUpdates: int(updates),
		})
	}

	return trend
}
