package services

import (
	"time"

	"github.com/teamhub/teamhub/internal/common/errors"
	projectsvc "github.com/teamhub/teamhub/internal/projects/services"
	taskrepo "github.com/teamhub/teamhub/internal/tasks/repository"
	"github.com/teamhub/teamhub/internal/timetracking/models"
	"github.com/teamhub/teamhub/internal/timetracking/repository"
)

const dateLayout = "2006-01-02"

// CreateEntry logs a block of work time for the caller
func CreateEntry(userID uint, req *models.CreateTimeEntryRequest) (*models.TimeEntry, error) {
	if err := projectsvc.RequireMember(req.ProjectID, userID); err != nil {
		return nil, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, errors.BadRequest("invalid date, expected YYYY-MM-DD", req.Date)
	}

	if req.TaskID != nil {
		task, err := taskrepo.GetTaskByID(*req.TaskID)
		if err != nil {
			return nil, err
		}
		if task.ProjectID != req.ProjectID {
			return nil, errors.BadRequest("task does not belong to the given project")
		}
	}

	entry := &models.TimeEntry{
		UserID:      userID,
		ProjectID:   req.ProjectID,
		TaskID:      req.TaskID,
		Description: req.Description,
		Hours:       req.Hours,
		Billable:    req.Billable,
		Date:        date,
	}
	if err := repository.CreateEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListMyEntries retrieves the caller's entries inside an optional range
func ListMyEntries(userID uint, fromStr, toStr string) ([]*models.TimeEntry, error) {
	filter, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	return repository.ListEntriesByUser(userID, filter)
}

// ListProjectEntries retrieves a project's entries; members may read
func ListProjectEntries(projectID, userID uint, fromStr, toStr string) ([]*models.TimeEntry, error) {
	if err := projectsvc.RequireMember(projectID, userID); err != nil {
		return nil, err
	}
	filter, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	return repository.ListEntriesByProject(projectID, filter)
}

// ProjectSummary totals a project's entries with a billable split
func ProjectSummary(projectID, userID uint, fromStr, toStr string) (*models.TimeSummary, error) {
	entries, err := ListProjectEntries(projectID, userID, fromStr, toStr)
	if err != nil {
		return nil, err
	}
	return Summarize(entries), nil
}

// Summarize totals a set of entries
func Summarize(entries []*models.TimeEntry) *models.TimeSummary {
	summary := &models.TimeSummary{EntryCount: len(entries)}
	for _, entry := range entries {
		summary.TotalHours += entry.Hours
		if entry.Billable {
			summary.BillableHours += entry.Hours
		}
	}
	return summary
}

// DeleteEntry removes one of the caller's own entries
func DeleteEntry(entryID, userID uint) error {
	entry, err := repository.GetEntryByID(entryID)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return errors.Forbidden("you may only delete your own time entries")
	}
	return repository.DeleteEntry(entryID)
}

// parseRange converts from/to query strings into a half-open interval;
// the upper bound is exclusive of the day after "to".
func parseRange(fromStr, toStr string) (*models.TimeFilter, error) {
	filter := &models.TimeFilter{}
	if fromStr != "" {
		from, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return nil, errors.BadRequest("invalid from date, expected YYYY-MM-DD", fromStr)
		}
		filter.From = from
	}
	if toStr != "" {
		to, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return nil, errors.BadRequest("invalid to date, expected YYYY-MM-DD", toStr)
		}
		filter.To = to.AddDate(0, 0, 1)
	}
	return filter, nil
}
