package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/michael-freling/dirtree/internal/directory"
	"github.com/michael-freling/dirtree/internal/xerrors"
)

type DirectoryService interface {
	Create(ctx context.Context, path string) error
	Move(ctx context.Context, sourcePath, targetPath string) error
	Delete(ctx context.Context, path string) error
	ReadTree(ctx context.Context) ([]*directory.Node, error)
	RenderTree(ctx context.Context) (string, error)
}

type DirectoryController struct {
	logger  *slog.Logger
	service DirectoryService
}

func NewDirectoryController(logger *slog.Logger, service DirectoryService) *DirectoryController {
	return &DirectoryController{
		logger:  logger,
		service: service,
	}
}

type CreateDirectoryRequest struct {
	Path string `json:"path" binding:"required"`
}

type MoveDirectoryRequest struct {
	SourcePath string `json:"sourcePath" binding:"required"`
	TargetPath string `json:"targetPath" binding:"required"`
}

func (controller DirectoryController) abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, xerrors.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, directory.ErrDirectoryNotFound):
		status = http.StatusNotFound
	default:
		controller.logger.ErrorContext(c.Request.Context(), "Failed to handle a request",
			"path", c.Request.URL.Path,
			"error", err,
		)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// ListDirectories returns all directories as a forest.
func (controller DirectoryController) ListDirectories(c *gin.Context) {
	roots, err := controller.service.ReadTree(c.Request.Context())
	if err != nil {
		controller.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"directories": roots,
	})
}

// RenderDirectories returns the same text as the LIST command.
func (controller DirectoryController) RenderDirectories(c *gin.Context) {
	tree, err := controller.service.RenderTree(c.Request.Context())
	if err != nil {
		controller.abortWithError(c, err)
		return
	}
	c.String(http.StatusOK, tree)
}

func (controller DirectoryController) CreateDirectory(c *gin.Context) {
	var request CreateDirectoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := controller.service.Create(c.Request.Context(), request.Path); err != nil {
		controller.abortWithError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (controller DirectoryController) MoveDirectory(c *gin.Context) {
	var request MoveDirectoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := controller.service.Move(c.Request.Context(), request.SourcePath, request.TargetPath); err != nil {
		controller.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteDirectory deletes a directory given by the path query parameter.
func (controller DirectoryController) DeleteDirectory(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}

	if err := controller.service.Delete(c.Request.Context(), path); err != nil {
		controller.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
