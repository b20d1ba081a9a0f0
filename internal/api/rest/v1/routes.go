package v1

import (
	"net/http"

	"github.com/MGTheTrain/textseal/internal/domain/keys"
	"github.com/MGTheTrain/textseal/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the file routes for dir and, when keyMetadataService is set,
// the read-only key catalog routes.
func SetupRoutes(r *gin.Engine, dir string, keyMetadataService keys.KeyMetadataService, logger logger.Logger) {
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})

	fileHandler := NewFileHandler(dir, logger)
	r.GET("/", fileHandler.Index)
	r.GET(FilesPath+"/*path", fileHandler.ServeFile)

	if keyMetadataService == nil {
		return
	}

	v1 := r.Group(BasePath)
	keyHandler := NewKeyHandler(keyMetadataService)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
}
