package services

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/files/models"
	"github.com/teamhub/teamhub/internal/files/repository"
	projectsvc "github.com/teamhub/teamhub/internal/projects/services"
)

// Store writes uploaded bytes to a local directory. Constructed in main
// from the storage config.
type Store struct {
	dir     string
	maxSize int64
}

// NewStore creates the upload directory if needed
func NewStore(dir string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Internal("failed to create upload directory", err.Error())
	}
	return &Store{dir: dir, maxSize: maxSize}, nil
}

// Upload saves a multipart file into a project; any member may upload
func (s *Store) Upload(projectID, userID uint, header *multipart.FileHeader) (*models.File, error) {
	if err := projectsvc.RequireMember(projectID, userID); err != nil {
		return nil, err
	}
	if header.Size > s.maxSize {
		return nil, errors.Unprocessable("file exceeds the upload size limit")
	}

	src, err := header.Open()
	if err != nil {
		return nil, errors.BadRequest("failed to read upload", err.Error())
	}
	defer src.Close()

	storedName := uuid.New().String() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return nil, errors.Internal("failed to store file", err.Error())
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(dst.Name())
		return nil, errors.Internal("failed to store file", err.Error())
	}

	file := &models.File{
		ProjectID:  projectID,
		UploaderID: userID,
		Name:       filepath.Base(header.Filename),
		StoredName: storedName,
		Size:       size,
		MimeType:   header.Header.Get("Content-Type"),
	}
	if err := repository.CreateFile(file); err != nil {
		os.Remove(dst.Name())
		return nil, err
	}
	return file, nil
}

// Open returns the metadata and disk path of a file; members may read
func (s *Store) Open(fileID, userID uint) (*models.File, string, error) {
	file, err := repository.GetFileByID(fileID)
	if err != nil {
		return nil, "", err
	}
	if err := projectsvc.RequireMember(file.ProjectID, userID); err != nil {
		return nil, "", err
	}
	return file, filepath.Join(s.dir, file.StoredName), nil
}

// List retrieves a project's files; members may read
func (s *Store) List(projectID, userID uint) ([]*models.File, error) {
	if err := projectsvc.RequireMember(projectID, userID); err != nil {
		return nil, err
	}
	return repository.ListFilesByProject(projectID)
}

// Delete removes a file; uploader or project manager only
func (s *Store) Delete(fileID, userID uint) error {
	file, err := repository.GetFileByID(fileID)
	if err != nil {
		return err
	}
	if file.UploaderID != userID {
		if err := projectsvc.RequireManager(file.ProjectID, userID); err != nil {
			return errors.Forbidden("only the uploader or project manager may delete")
		}
	}
	if err := repository.DeleteFile(fileID); err != nil {
		return err
	}
	// Metadata is authoritative; a missing disk file is not an error here
	os.Remove(filepath.Join(s.dir, file.StoredName))
	return nil
}
