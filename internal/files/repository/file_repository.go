package repository

import (
	"github.com/teamhub/teamhub/internal/common/database"
	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/files/models"
)

// CreateFile stores file metadata
func CreateFile(file *models.File) error {
	result := database.DB.Create(file)
	if result.Error != nil {
		return errors.Internal("failed to store file metadata", result.Error.Error())
	}
	return nil
}

// GetFileByID retrieves file metadata
func GetFileByID(id uint) (*models.File, error) {
	var file models.File
	result := database.DB.First(&file, id)
	if result.Error != nil {
		return nil, errors.NotFound("file")
	}
	return &file, nil
}

// ListFilesByProject retrieves a project's files, newest first
func ListFilesByProject(projectID uint) ([]*models.File, error) {
	var files []*models.File
	result := database.DB.
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&files)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch files", result.Error.Error())
	}
	return files, nil
}

// DeleteFile removes file metadata
func DeleteFile(id uint) error {
	result := database.DB.Delete(&models.File{}, id)
	if result.Error != nil {
		return errors.Internal("failed to delete file metadata", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("file")
	}
	return nil
}
