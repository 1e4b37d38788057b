package services

import (
	"time"

	"github.com/teamhub/teamhub/internal/calendar/models"
	"github.com/teamhub/teamhub/internal/calendar/repository"
	"github.com/teamhub/teamhub/internal/common/errors"
	projectrepo "github.com/teamhub/teamhub/internal/projects/repository"
	projectsvc "github.com/teamhub/teamhub/internal/projects/services"
	taskrepo "github.com/teamhub/teamhub/internal/tasks/repository"
)

// CreateEvent schedules an event in a project calendar. Linking a task
// requires the task to belong to the same project and not already have
// a linked event.
func CreateEvent(projectID, userID uint, req *models.CreateEventRequest) (*models.CalendarEvent, error) {
	if _, err := projectrepo.GetProjectByID(projectID); err != nil {
		return nil, err
	}
	if err := projectsvc.RequireMember(projectID, userID); err != nil {
		return nil, err
	}

	if req.EndTime != nil && req.EndTime.Before(req.StartTime) {
		return nil, errors.BadRequest("end_time must not precede start_time")
	}

	if req.TaskID != nil {
		task, err := taskrepo.GetTaskByID(*req.TaskID)
		if err != nil {
			return nil, err
		}
		if task.ProjectID != projectID {
			return nil, errors.BadRequest("task does not belong to this project")
		}
		if _, err := repository.GetEventByTask(*req.TaskID); err == nil {
			return nil, errors.Conflict("task already has a linked event")
		}
	}

	event := &models.CalendarEvent{
		ProjectID:   projectID,
		TaskID:      req.TaskID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CreatedBy:   userID,
	}
	if err := repository.CreateEvent(event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents retrieves a project's events, optionally bounded by range
func ListEvents(projectID, userID uint, from, to time.Time) ([]*models.CalendarEvent, error) {
	if _, err := projectrepo.GetProjectByID(projectID); err != nil {
		return nil, err
	}
	if err := projectsvc.RequireMember(projectID, userID); err != nil {
		return nil, err
	}
	return repository.ListEventsByProject(projectID, from, to)
}

// UpdateEvent applies partial updates; any project member may update
func UpdateEvent(eventID, userID uint, req *models.UpdateEventRequest) (*models.CalendarEvent, error) {
	event, err := repository.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}
	if err := projectsvc.RequireMember(event.ProjectID, userID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = req.EndTime
	}
	if event.EndTime != nil && event.EndTime.Before(event.StartTime) {
		return nil, errors.BadRequest("end_time must not precede start_time")
	}

	if err := repository.UpdateEvent(event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event; creator or project manager only
func DeleteEvent(eventID, userID uint) error {
	event, err := repository.GetEventByID(eventID)
	if err != nil {
		return err
	}
	if event.CreatedBy != userID {
		if err := projectsvc.RequireManager(event.ProjectID, userID); err != nil {
			return errors.Forbidden("only the event creator or project manager may delete")
		}
	}
	return repository.DeleteEvent(eventID)
}
