package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

func RegisterDirectoryRoutes(r *gin.Engine, controller *DirectoryController) {
	directories := r.Group("/directories")
	{
		directories.GET("", controller.ListDirectories)
		directories.GET("/tree", controller.RenderDirectories)
		directories.POST("", controller.CreateDirectory)
		directories.POST("/move", controller.MoveDirectory)
		directories.DELETE("", controller.DeleteDirectory)
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.InfoContext(c.Request.Context(), "Handled a request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

func NewHandler(logger *slog.Logger, service DirectoryService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	RegisterDirectoryRoutes(r, NewDirectoryController(logger, service))
	return r
}
