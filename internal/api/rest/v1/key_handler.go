package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/textseal/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key catalog requests
type KeyHandler interface {
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
}

type keyHandler struct {
	keyMetadataService keys.KeyMetadataService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyMetadataService keys.KeyMetadataService) KeyHandler {
	return &keyHandler{
		keyMetadataService: keyMetadataService,
	}
}

// ListMetadata handles the GET request to list key metadata with optional query parameters
// (algorithm, type, dateTimeCreated in RFC3339, limit, offset, sortBy, sortOrder).
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewKeyQuery()

	if algorithm := ctx.Query("algorithm"); len(algorithm) > 0 {
		query.Algorithm = algorithm
	}

	if keyType := ctx.Query("type"); len(keyType) > 0 {
		query.Type = keyType
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid dateTimeCreated: %v", err)})
			return
		}
		query.DateTimeCreated = parsedTime
	}

	for name, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		if value := ctx.Query(name); len(value) > 0 {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %s", name, value)})
				return
			}
			*target = parsed
		}
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	keyMetas, err := handler.keyMetadataService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []KeyMetaResponse{}
	for _, keyMeta := range keyMetas {
		listResponse = append(listResponse, newKeyMetaResponse(keyMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve key metadata by ID
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	keyMeta, err := handler.keyMetadataService.GetByID(ctx, keyID)
	if err != nil {
		if errors.Is(err, keys.ErrKeyNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("key with id %s not found", keyID)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("failed to get key %s: %v", keyID, err)})
		return
	}

	ctx.JSON(http.StatusOK, newKeyMetaResponse(keyMeta))
}
