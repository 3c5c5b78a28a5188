package handler

import (
	"errors"
	"net/http"

	"github.com/erp/connector/internal/application/export"
	"github.com/erp/connector/internal/domain/sync"
	"github.com/erp/connector/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExportHandler exposes the export pipeline and the identity map over HTTP.
type ExportHandler struct {
	orchestrator *export.Orchestrator
	identities   sync.IdentityMap
	logger       *zap.Logger
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(orchestrator *export.Orchestrator, identities sync.IdentityMap, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		orchestrator: orchestrator,
		identities:   identities,
		logger:       logger,
	}
}

// RegisterRoutes registers the export routes.
func (h *ExportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/export/:kind/:id", h.Export)
	rg.GET("/mappings/:kind", h.ListMappings)
	rg.POST("/mappings", h.SeedMapping)
}

// Export triggers a single export attempt for one entity.
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeValidation, err.Error()))
		return
	}

	err := h.orchestrator.Export(c.Request.Context(), sync.EntityKind(req.Kind), req.ID)
	if err != nil {
		h.respondExportError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ExportResponse{
		Kind:    req.Kind,
		LocalID: req.ID,
	}))
}

// ListMappings lists recorded identity mappings of one kind, newest first.
func (h *ExportHandler) ListMappings(c *gin.Context) {
	var req dto.ListMappingsRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeValidation, err.Error()))
		return
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeValidation, err.Error()))
		return
	}
	if req.Limit == 0 {
		req.Limit = 100
	}

	mappings, err := h.identities.FindByKind(c.Request.Context(), sync.EntityKind(req.Kind), req.Limit)
	if err != nil {
		h.logger.Error("listing mappings failed", zap.String("kind", req.Kind), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrCodeInternal, "failed to list mappings"))
		return
	}

	entries := make([]dto.MappingResponse, len(mappings))
	for i, mapping := range mappings {
		entries[i] = dto.MappingResponse{
			Kind:      mapping.Kind.String(),
			LocalID:   mapping.LocalID,
			RemoteID:  mapping.RemoteID,
			CreatedAt: mapping.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// SeedMapping registers a configuration-owned mapping (currencies and
// payment methods); the export pipeline only resolves these kinds.
func (h *ExportHandler) SeedMapping(c *gin.Context) {
	var req dto.SeedMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeValidation, err.Error()))
		return
	}

	if err := h.identities.Record(c.Request.Context(), sync.EntityKind(req.Kind), req.LocalID, req.RemoteID); err != nil {
		h.logger.Error("seeding mapping failed", zap.String("kind", req.Kind), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrCodeInternal, "failed to record mapping"))
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.MappingResponse{
		Kind:     req.Kind,
		LocalID:  req.LocalID,
		RemoteID: req.RemoteID,
	}))
}

// respondExportError maps a typed export failure onto an HTTP status.
func (h *ExportHandler) respondExportError(c *gin.Context, err error) {
	if errors.Is(err, export.ErrNoExporter) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeNoExporter, err.Error()))
		return
	}

	switch sync.KindOf(err) {
	case sync.ErrorKindNotFound:
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrCodeNotFound, err.Error()))
	case sync.ErrorKindAlreadyExported:
		c.JSON(http.StatusConflict, dto.NewErrorResponse(dto.ErrCodeAlreadyExported, err.Error()))
	case sync.ErrorKindPrerequisiteMissing:
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(dto.ErrCodePrerequisiteMissing, err.Error()))
	case sync.ErrorKindDependencyExport:
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(dto.ErrCodeDependencyExport, err.Error()))
	case sync.ErrorKindBusinessRejection:
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(dto.ErrCodeBusinessRejection, err.Error()))
	case sync.ErrorKindTransport:
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(dto.ErrCodeTransport, err.Error()))
	default:
		h.logger.Error("export failed with unclassified error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrCodeInternal, "export failed"))
	}
}
