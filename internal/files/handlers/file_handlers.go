package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/common/middleware"
	"github.com/teamhub/teamhub/internal/files/services"
	projecthandlers "github.com/teamhub/teamhub/internal/projects/handlers"
)

// FileHandler serves file routes backed by a storage directory
type FileHandler struct {
	store *services.Store
}

func NewFileHandler(store *services.Store) *FileHandler {
	return &FileHandler{store: store}
}

func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
	}
	return userID, ok
}

// Upload saves a multipart file into a project
// POST /api/v1/projects/:id/files
func (h *FileHandler) Upload(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("missing file field", err.Error()))
		return
	}

	file, uploadErr := h.store.Upload(projectID, userID, header)
	if uploadErr != nil {
		middleware.JSONErrorResponse(c, uploadErr)
		return
	}

	c.JSON(http.StatusCreated, file)
}

// List retrieves a project's files, newest first
// GET /api/v1/projects/:id/files
func (h *FileHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	files, err := h.store.List(projectID, userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files, "count": len(files)})
}

// Download streams a file's bytes with its original name
// GET /api/v1/files/:id
func (h *FileHandler) Download(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	fileID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	file, path, err := h.store.Open(fileID, userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.FileAttachment(path, file.Name)
}

// Delete removes a file
// DELETE /api/v1/files/:id
func (h *FileHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	fileID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(fileID, userID); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}
