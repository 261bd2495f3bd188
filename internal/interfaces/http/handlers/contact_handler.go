package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sdp-site.backend/internal/domain/entities"
	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/internal/interfaces/http/response"
	"sdp-site.backend/internal/usecases"
)

// ContactHandler handles the public contact form and the admin inbox
type ContactHandler struct {
	contactUsecase *usecases.ContactUsecase
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactUsecase *usecases.ContactUsecase) *ContactHandler {
	return &ContactHandler{contactUsecase: contactUsecase}
}

// Create handles a public contact form submission. All fields are required;
// a missing or malformed one rejects the whole submission with 400.
// POST /api/contact
func (h *ContactHandler) Create(c *gin.Context) {
	var input entities.ContactMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.contactUsecase.Submit(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "Message sent successfully",
		"id":      msg.ID,
	})
}

// List handles the admin inbox: newest messages first, capped at 50.
// GET /api/contact
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.contactUsecase.Inbox(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if messages == nil {
		messages = []*entities.ContactMessage{}
	}
	response.Success(c, http.StatusOK, messages)
}

// Delete removes a message from the inbox.
// DELETE /api/contact/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.contactUsecase.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("message not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}
