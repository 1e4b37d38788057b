package repository

import (
	"time"

	"github.com/teamhub/teamhub/internal/calendar/models"
	"github.com/teamhub/teamhub/internal/common/database"
	"github.com/teamhub/teamhub/internal/common/errors"
)

// CreateEvent stores a calendar event
func CreateEvent(event *models.CalendarEvent) error {
	result := database.DB.Create(event)
	if result.Error != nil {
		return errors.Internal("failed to create event", result.Error.Error())
	}
	return nil
}

// GetEventByID retrieves an event
func GetEventByID(id uint) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	result := database.DB.First(&event, id)
	if result.Error != nil {
		return nil, errors.NotFound("event")
	}
	return &event, nil
}

// ListEventsByProject retrieves a project's events ordered by start time,
// optionally bounded to [from, to)
func ListEventsByProject(projectID uint, from, to time.Time) ([]*models.CalendarEvent, error) {
	query := database.DB.Where("project_id = ?", projectID)
	if !from.IsZero() {
		query = query.Where("start_time >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("start_time < ?", to)
	}

	var events []*models.CalendarEvent
	result := query.Order("start_time ASC").Find(&events)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch events", result.Error.Error())
	}
	return events, nil
}

// GetEventByTask retrieves the event linked to a task, if any
func GetEventByTask(taskID uint) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	result := database.DB.Where("task_id = ?", taskID).First(&event)
	if result.Error != nil {
		return nil, errors.NotFound("event")
	}
	return &event, nil
}

// UpdateEvent persists event changes
func UpdateEvent(event *models.CalendarEvent) error {
	result := database.DB.Save(event)
	if result.Error != nil {
		return errors.Internal("failed to update event", result.Error.Error())
	}
	return nil
}

// DeleteEvent removes an event
func DeleteEvent(id uint) error {
	result := database.DB.Delete(&models.CalendarEvent{}, id)
	if result.Error != nil {
		return errors.Internal("failed to delete event", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("event")
	}
	return nil
}
