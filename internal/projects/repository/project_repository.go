package repository

import (
	"github.com/teamhub/teamhub/internal/common/database"
	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/projects/models"
)

// ========== PROJECT REPOSITORY ==========

// CreateProject creates a project
func CreateProject(project *models.Project) error {
	result := database.DB.Create(project)
	if result.Error != nil {
		return errors.Internal("failed to create project", result.Error.Error())
	}
	return nil
}

// GetProjectByID retrieves a project by ID
func GetProjectByID(id uint) (*models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, id)
	if result.Error != nil {
		return nil, errors.NotFound("project")
	}
	return &project, nil
}

// ListProjectsByUser retrieves the projects a user belongs to
func ListProjectsByUser(userID uint) ([]*models.Project, error) {
	var projects []*models.Project
	result := database.DB.
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.user_id = ?", userID).
		Order("projects.updated_at DESC").
		Find(&projects)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch projects", result.Error.Error())
	}
	return projects, nil
}

// UpdateProject persists project field changes
func UpdateProject(project *models.Project) error {
	result := database.DB.Save(project)
	if result.Error != nil {
		return errors.Internal("failed to update project", result.Error.Error())
	}
	return nil
}

// DeleteProject deletes a project and its membership rows
func DeleteProject(id uint) error {
	if result := database.DB.Where("project_id = ?", id).Delete(&models.ProjectMember{}); result.Error != nil {
		return errors.Internal("failed to delete project members", result.Error.Error())
	}
	result := database.DB.Delete(&models.Project{}, id)
	if result.Error != nil {
		return errors.Internal("failed to delete project", result.Error.Error())
	}
	return nil
}

// ========== MEMBERSHIP REPOSITORY ==========

// AddMember adds a user to a project
func AddMember(member *models.ProjectMember) error {
	result := database.DB.Create(member)
	if result.Error != nil {
		return errors.Conflict("user is already a project member")
	}
	return nil
}

// RemoveMember removes a user from a project
func RemoveMember(projectID, userID uint) error {
	result := database.DB.
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.ProjectMember{})
	if result.Error != nil {
		return errors.Internal("failed to remove member", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("project member")
	}
	return nil
}

// ListMembers retrieves project members joined with user identity
func ListMembers(projectID uint) ([]models.MemberInfo, error) {
	var members []models.MemberInfo
	result := database.DB.
		Table("project_members").
		Select("users.id, users.name, users.email, project_members.role").
		Joins("JOIN users ON users.id = project_members.user_id").
		Where("project_members.project_id = ?", projectID).
		Order("users.name ASC").
		Scan(&members)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch members", result.Error.Error())
	}
	return members, nil
}

// GetMembership retrieves the membership row for a user in a project
func GetMembership(projectID, userID uint) (*models.ProjectMember, error) {
	var member models.ProjectMember
	result := database.DB.
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&member)
	if result.Error != nil {
		return nil, errors.NotFound("project member")
	}
	return &member, nil
}
