package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/firmanw/ledger_books_app/internal/apperrors"
	portssvc "github.com/firmanw/ledger_books_app/internal/core/ports/services"
	"github.com/firmanw/ledger_books_app/internal/dto"
	"github.com/firmanw/ledger_books_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// labelHandler handles HTTP requests related to labels.
type labelHandler struct {
	labelService portssvc.LabelSvcFacade
}

func newLabelHandler(ls portssvc.LabelSvcFacade) *labelHandler {
	return &labelHandler{
		labelService: ls,
	}
}

// registerLabelRoutes registers routes related to labels.
func registerLabelRoutes(rg *gin.RouterGroup, labelService portssvc.LabelSvcFacade) {
	h := newLabelHandler(labelService)

	labels := rg.Group("/labels")
	{
		labels.GET("", h.listLabels)
		labels.POST("", h.createLabel)
		labels.PUT("/:id", h.updateLabel)
		labels.DELETE("/:id", h.deleteLabel)
	}
}

// listLabels godoc
// @Summary List labels
// @Description Retrieves all labels, oldest first
// @Tags labels
// @Produce json
// @Success 200 {array} dto.LabelResponse
// @Failure 500 {object} map[string]string "Failed to list labels"
// @Router /labels [get]
func (h *labelHandler) listLabels(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	labels, err := h.labelService.ListLabels(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list labels from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list labels"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelResponses(labels))
}

// createLabel godoc
// @Summary Create a new label
// @Description Creates a label; color defaults when omitted
// @Tags labels
// @Accept json
// @Produce json
// @Param label body dto.CreateLabelRequest true "Label details"
// @Success 201 {object} dto.LabelResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create label"
// @Router /labels [post]
func (h *labelHandler) createLabel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLabel", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	label, err := h.labelService.CreateLabel(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating label", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create label in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create label"})
		}
		return
	}

	logger.Info("Label created successfully", slog.String("label_id", label.LabelID))
	c.JSON(http.StatusCreated, dto.ToLabelResponse(label))
}

// updateLabel godoc
// @Summary Update a label
// @Description Updates a label's name and color
// @Tags labels
// @Accept json
// @Produce json
// @Param id path string true "Label ID"
// @Param label body dto.UpdateLabelRequest true "Label details"
// @Success 200 {object} dto.LabelResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Label not found"
// @Failure 500 {object} map[string]string "Failed to update label"
// @Router /labels/{id} [put]
func (h *labelHandler) updateLabel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	labelID := c.Param("id")

	var req dto.UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLabel", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("label_id", labelID))

	label, err := h.labelService.UpdateLabel(c.Request.Context(), labelID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Label not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Label not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating label", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update label in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update label"})
		}
		return
	}

	logger.Info("Label updated successfully")
	c.JSON(http.StatusOK, dto.ToLabelResponse(label))
}

// deleteLabel godoc
// @Summary Delete a label
// @Description Removes a label; referencing transactions become unlabeled
// @Tags labels
// @Produce json
// @Param id path string true "Label ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Label not found"
// @Failure 500 {object} map[string]string "Failed to delete label"
// @Router /labels/{id} [delete]
func (h *labelHandler) deleteLabel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	labelID := c.Param("id")
	logger = logger.With(slog.String("label_id", labelID))

	if err := h.labelService.DeleteLabel(c.Request.Context(), labelID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Label not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Label not found"})
		} else {
			logger.Error("Failed to delete label in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete label"})
		}
		return
	}

	logger.Info("Label deleted successfully")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
