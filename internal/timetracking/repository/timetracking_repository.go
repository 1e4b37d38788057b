package repository

import (
	"github.com/teamhub/teamhub/internal/common/database"
	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/timetracking/models"
)

// CreateEntry stores a time entry
func CreateEntry(entry *models.TimeEntry) error {
	result := database.DB.Create(entry)
	if result.Error != nil {
		return errors.Internal("failed to create time entry", result.Error.Error())
	}
	return nil
}

// GetEntryByID retrieves a time entry
func GetEntryByID(id uint) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	result := database.DB.First(&entry, id)
	if result.Error != nil {
		return nil, errors.NotFound("time entry")
	}
	return &entry, nil
}

// ListEntriesByUser retrieves a user's entries inside a date range,
// newest first
func ListEntriesByUser(userID uint, filter *models.TimeFilter) ([]*models.TimeEntry, error) {
	query := database.DB.Where("user_id = ?", userID)
	if filter != nil {
		if !filter.From.IsZero() {
			query = query.Where("date >= ?", filter.From)
		}
		if !filter.To.IsZero() {
			query = query.Where("date < ?", filter.To)
		}
	}

	var entries []*models.TimeEntry
	result := query.Order("date DESC, id DESC").Find(&entries)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch time entries", result.Error.Error())
	}
	return entries, nil
}

// ListEntriesByProject retrieves a project's entries inside a date range,
// newest first
func ListEntriesByProject(projectID uint, filter *models.TimeFilter) ([]*models.TimeEntry, error) {
	query := database.DB.Where("project_id = ?", projectID)
	if filter != nil {
		if !filter.From.IsZero() {
			query = query.Where("date >= ?", filter.From)
		}
		if !filter.To.IsZero() {
			query = query.Where("date < ?", filter.To)
		}
	}

	var entries []*models.TimeEntry
	result := query.Order("date DESC, id DESC").Find(&entries)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch time entries", result.Error.Error())
	}
	return entries, nil
}

// DeleteEntry removes a time entry
func DeleteEntry(id uint) error {
	result := database.DB.Delete(&models.TimeEntry{}, id)
	if result.Error != nil {
		return errors.Internal("failed to delete time entry", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("time entry")
	}
	return nil
}
