package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sdp-site.backend/internal/domain/entities"
	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/internal/domain/repositories"
	"sdp-site.backend/internal/domain/seed"
	"sdp-site.backend/internal/interfaces/http/middleware"
	"sdp-site.backend/internal/interfaces/http/response"
	"sdp-site.backend/pkg/logger"
)

// FAQHandler handles FAQ endpoints
type FAQHandler struct {
	faqRepo repositories.FAQRepository
}

// NewFAQHandler creates a new FAQ handler
func NewFAQHandler(faqRepo repositories.FAQRepository) *FAQHandler {
	return &FAQHandler{faqRepo: faqRepo}
}

// List handles the FAQ listing, ordered by display order. Visitors see only
// active FAQs; an admin session sees all of them. On store failure the fixed
// fallback listing is served, flagged via X-Fallback-Data.
// GET /api/faqs
func (h *FAQHandler) List(c *gin.Context) {
	includeInactive := middleware.IsAdmin(c)

	faqs, err := h.faqRepo.List(c.Request.Context(), includeInactive)
	if err != nil {
		logger.Warn(c.Request.Context(), "faq listing degraded to fallback data", zap.Error(err))
		c.Header(FallbackHeader, "true")
		response.Success(c, http.StatusOK, seed.FAQs())
		return
	}
	if faqs == nil {
		faqs = []*entities.FAQ{}
	}
	response.Success(c, http.StatusOK, faqs)
}

// Get handles fetching a single FAQ.
// GET /api/faqs/:id
func (h *FAQHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	faq, err := h.faqRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("faq not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, faq)
}

// Create handles FAQ creation. Omitted order defaults to 0 and omitted
// isActive defaults to true.
// POST /api/faqs
func (h *FAQHandler) Create(c *gin.Context) {
	var input entities.FAQInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faq := &entities.FAQ{
		Question: input.Question,
		Answer:   input.Answer,
		Order:    input.Order,
		IsActive: input.Active(),
	}
	if err := h.faqRepo.Create(c.Request.Context(), faq); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, faq)
}

// Update handles full replacement of a FAQ.
// PUT /api/faqs/:id
func (h *FAQHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input entities.FAQInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faq := &entities.FAQ{
		ID:       id,
		Question: input.Question,
		Answer:   input.Answer,
		Order:    input.Order,
		IsActive: input.Active(),
	}
	if err := h.faqRepo.Update(c.Request.Context(), faq); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("faq not found"))
			return
		}
		response.Error(c, err)
		return
	}

	updated, err := h.faqRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete handles FAQ deletion.
// DELETE /api/faqs/:id
func (h *FAQHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.faqRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("faq not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}
