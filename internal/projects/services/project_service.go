package services

import (
	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/common/validation"
	"github.com/teamhub/teamhub/internal/projects/models"
	"github.com/teamhub/teamhub/internal/projects/repository"
)

var projectStatuses = []string{"active", "archived", "completed"}

// CreateProject creates a project with the creator as its manager member
func CreateProject(userID uint, req *models.CreateProjectRequest) (*models.Project, error) {
	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   userID,
		Status:      "active",
	}
	if err := repository.CreateProject(project); err != nil {
		return nil, err
	}

	member := &models.ProjectMember{
		ProjectID: project.ID,
		UserID:    userID,
		Role:      "manager",
	}
	if err := repository.AddMember(member); err != nil {
		return nil, err
	}

	return project, nil
}

// GetProject retrieves a project with its members, enforcing read access
func GetProject(projectID, userID uint) (*models.ProjectResponse, error) {
	project, err := repository.GetProjectByID(projectID)
	if err != nil {
		return nil, err
	}

	if err := RequireMember(projectID, userID); err != nil {
		return nil, err
	}

	members, err := repository.ListMembers(projectID)
	if err != nil {
		return nil, err
	}

	return &models.ProjectResponse{Project: *project, Members: members}, nil
}

// ListProjects retrieves the caller's projects
func ListProjects(userID uint) ([]*models.Project, error) {
	return repository.ListProjectsByUser(userID)
}

// UpdateProject applies partial updates; only the manager may update
func UpdateProject(projectID, userID uint, req *models.UpdateProjectRequest) (*models.Project, error) {
	project, err := repository.GetProjectByID(projectID)
	if err != nil {
		return nil, err
	}

	if err := RequireManager(projectID, userID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		if !validation.OneOf(*req.Status, projectStatuses) {
			return nil, errors.BadRequest("invalid project status")
		}
		project.Status = *req.Status
	}

	if err := repository.UpdateProject(project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project; only the manager may delete
func DeleteProject(projectID, userID uint) error {
	if _, err := repository.GetProjectByID(projectID); err != nil {
		return err
	}
	if err := RequireManager(projectID, userID); err != nil {
		return err
	}
	return repository.DeleteProject(projectID)
}

// ========== MEMBERSHIP ==========

// AddMember adds a user to the project workforce; manager only
func AddMember(projectID, userID uint, req *models.AddMemberRequest) error {
	if _, err := repository.GetProjectByID(projectID); err != nil {
		return err
	}
	if err := RequireManager(projectID, userID); err != nil {
		return err
	}

	role := req.Role
	if role == "" {
		role = "member"
	}
	if role != "member" && role != "manager" {
		return errors.BadRequest("invalid member role")
	}

	return repository.AddMember(&models.ProjectMember{
		ProjectID: projectID,
		UserID:    req.UserID,
		Role:      role,
	})
}

// RemoveMember removes a user from the project; manager only
func RemoveMember(projectID, userID, targetID uint) error {
	if err := RequireManager(projectID, userID); err != nil {
		return err
	}
	return repository.RemoveMember(projectID, targetID)
}

// ListMembers returns the project's member list; members may read
func ListMembers(projectID, userID uint) ([]models.MemberInfo, error) {
	if _, err := repository.GetProjectByID(projectID); err != nil {
		return nil, err
	}
	if err := RequireMember(projectID, userID); err != nil {
		return nil, err
	}
	return repository.ListMembers(projectID)
}

// ========== ACCESS CHECKS ==========

// RequireMember returns Forbidden unless the user belongs to the project
func RequireMember(projectID, userID uint) error {
	if _, err := repository.GetMembership(projectID, userID); err != nil {
		return errors.Forbidden("you are not a member of this project")
	}
	return nil
}

// RequireManager returns Forbidden unless the user is a manager of the project
func RequireManager(projectID, userID uint) error {
	member, err := repository.GetMembership(projectID, userID)
	if err != nil || member.Role != "manager" {
		return errors.Forbidden("only the project manager may do this")
	}
	return nil
}
