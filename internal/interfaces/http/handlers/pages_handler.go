package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sdp-site.backend/internal/interfaces/http/middleware"
)

// PagesHandler renders the server-side admin console pages. Everything
// except the login page sits behind the admin page guard.
type PagesHandler struct{}

// NewPagesHandler creates a new pages handler
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Login renders the login page. Reachable with or without a session.
// GET /admin/login
func (h *PagesHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "Admin Login",
	})
}

// Dashboard renders the admin dashboard.
// GET /admin
func (h *PagesHandler) Dashboard(c *gin.Context) {
	email, _ := middleware.GetUserEmail(c)
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title": "Dashboard",
		"email": email,
	})
}

// Events renders the event management page.
// GET /admin/events
func (h *PagesHandler) Events(c *gin.Context) {
	c.HTML(http.StatusOK, "events.html", gin.H{
		"title": "Manage Events",
	})
}

// Team renders the team management page.
// GET /admin/team
func (h *PagesHandler) Team(c *gin.Context) {
	c.HTML(http.StatusOK, "team.html", gin.H{
		"title": "Manage Team",
	})
}

// FAQs renders the FAQ management page.
// GET /admin/faqs
func (h *PagesHandler) FAQs(c *gin.Context) {
	c.HTML(http.StatusOK, "faqs.html", gin.H{
		"title": "Manage FAQs",
	})
}

// Messages renders the contact inbox page.
// GET /admin/messages
func (h *PagesHandler) Messages(c *gin.Context) {
	c.HTML(http.StatusOK, "messages.html", gin.H{
		"title": "Messages",
	})
}
