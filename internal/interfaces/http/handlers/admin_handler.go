package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sdp-site.backend/internal/domain/repositories"
	"sdp-site.backend/internal/interfaces/http/response"
	"sdp-site.backend/pkg/logger"
)

// AdminHandler serves aggregate numbers for the admin dashboard
type AdminHandler struct {
	eventRepo   repositories.EventRepository
	teamRepo    repositories.TeamMemberRepository
	faqRepo     repositories.FAQRepository
	contactRepo repositories.ContactMessageRepository
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	eventRepo repositories.EventRepository,
	teamRepo repositories.TeamMemberRepository,
	faqRepo repositories.FAQRepository,
	contactRepo repositories.ContactMessageRepository,
) *AdminHandler {
	return &AdminHandler{
		eventRepo:   eventRepo,
		teamRepo:    teamRepo,
		faqRepo:     faqRepo,
		contactRepo: contactRepo,
	}
}

// Stats returns entity counts for the dashboard cards. A failing count is
// reported as zero rather than failing the whole dashboard.
// GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	count := func(name string, fn func() (int64, error)) int64 {
		n, err := fn()
		if err != nil {
			logger.Warn(ctx, "stats count failed: "+name, zap.Error(err))
			return 0
		}
		return n
	}

	response.Success(c, http.StatusOK, gin.H{
		"events":   count("events", func() (int64, error) { return h.eventRepo.Count(ctx) }),
		"team":     count("team", func() (int64, error) { return h.teamRepo.Count(ctx) }),
		"faqs":     count("faqs", func() (int64, error) { return h.faqRepo.Count(ctx) }),
		"messages": count("messages", func() (int64, error) { return h.contactRepo.Count(ctx) }),
	})
}
