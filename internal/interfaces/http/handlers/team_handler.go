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
	"sdp-site.backend/internal/interfaces/http/response"
	"sdp-site.backend/pkg/logger"
)

// TeamHandler handles team member endpoints
type TeamHandler struct {
	teamRepo repositories.TeamMemberRepository
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamRepo repositories.TeamMemberRepository) *TeamHandler {
	return &TeamHandler{teamRepo: teamRepo}
}

// List handles the public team listing, ordered by display order. Members
// are rendered in their public shape: missing images fall back to the
// placeholder and links are grouped under "social". On store failure the
// fixed fallback listing is served, flagged via X-Fallback-Data.
// GET /api/team
func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.teamRepo.List(c.Request.Context())
	if err != nil {
		logger.Warn(c.Request.Context(), "team listing degraded to fallback data", zap.Error(err))
		c.Header(FallbackHeader, "true")
		response.Success(c, http.StatusOK, seed.TeamMembers())
		return
	}

	public := make([]entities.TeamMemberPublic, 0, len(members))
	for _, m := range members {
		public = append(public, m.Public())
	}
	response.Success(c, http.StatusOK, public)
}

// Get returns a single member with raw fields for the admin console.
// GET /api/team/:id
func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	member, err := h.teamRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("team member not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, member)
}

// Create handles team member creation. Omitted order defaults to 0 and
// empty optional fields persist as null.
// POST /api/team
func (h *TeamHandler) Create(c *gin.Context) {
	var input entities.TeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member := memberFromInput(0, &input)
	if err := h.teamRepo.Create(c.Request.Context(), member); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, member)
}

// Update handles full replacement of a team member.
// PUT /api/team/:id
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input entities.TeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member := memberFromInput(id, &input)
	if err := h.teamRepo.Update(c.Request.Context(), member); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("team member not found"))
			return
		}
		response.Error(c, err)
		return
	}

	updated, err := h.teamRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete handles team member deletion.
// DELETE /api/team/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.teamRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("team member not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}

func memberFromInput(id uint, input *entities.TeamMemberInput) *entities.TeamMember {
	return &entities.TeamMember{
		ID:          id,
		Name:        input.Name,
		Role:        input.Role,
		Bio:         input.Bio,
		Image:       nullString(input.Image),
		LinkedinURL: nullString(input.LinkedinURL),
		GithubURL:   nullString(input.GithubURL),
		TwitterURL:  nullString(input.TwitterURL),
		Email:       nullString(input.Email),
		Order:       input.Order,
	}
}
