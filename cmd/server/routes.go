package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sdp-site.backend/internal/interfaces/http/handlers"
	"sdp-site.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	eventHandler   *handlers.EventHandler
	teamHandler    *handlers.TeamHandler
	faqHandler     *handlers.FAQHandler
	contactHandler *handlers.ContactHandler
	authHandler    *handlers.AuthHandler
	setupHandler   *handlers.SetupHandler
	adminHandler   *handlers.AdminHandler
	sessionAuth    gin.HandlerFunc
	optionalAuth   gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authHandler.Me)
		}

		// First-run provisioning
		api.GET("/setup", d.setupHandler.Setup)
		api.GET("/migrate", d.setupHandler.MigrateHint)
		api.POST("/migrate", d.setupHandler.Migrate)

		admin := d.sessionAuth
		requireAdmin := middleware.RequireAdmin()

		// Events: public reads, admin writes
		events := api.Group("/events")
		{
			events.GET("", d.eventHandler.List)
			events.GET("/:id", d.eventHandler.Get)
			events.POST("", admin, requireAdmin, d.eventHandler.Create)
			events.PUT("/:id", admin, requireAdmin, d.eventHandler.Update)
			events.DELETE("/:id", admin, requireAdmin, d.eventHandler.Delete)
		}

		// Team: public listing, admin detail and writes
		team := api.Group("/team")
		{
			team.GET("", d.teamHandler.List)
			team.GET("/:id", d.teamHandler.Get)
			team.POST("", admin, requireAdmin, d.teamHandler.Create)
			team.PUT("/:id", admin, requireAdmin, d.teamHandler.Update)
			team.DELETE("/:id", admin, requireAdmin, d.teamHandler.Delete)
		}

		// FAQs: listing is public but shows inactive entries to admins
		faqs := api.Group("/faqs")
		{
			faqs.GET("", d.optionalAuth, d.faqHandler.List)
			faqs.GET("/:id", d.faqHandler.Get)
			faqs.POST("", admin, requireAdmin, d.faqHandler.Create)
			faqs.PUT("/:id", admin, requireAdmin, d.faqHandler.Update)
			faqs.DELETE("/:id", admin, requireAdmin, d.faqHandler.Delete)
		}

		// Contact: public submissions, admin-only inbox
		contact := api.Group("/contact")
		{
			contact.POST("", d.contactHandler.Create)
			contact.GET("", admin, requireAdmin, d.contactHandler.List)
			contact.DELETE("/:id", admin, requireAdmin, d.contactHandler.Delete)
		}

		// Dashboard stats
		api.GET("/admin/stats", admin, requireAdmin, d.adminHandler.Stats)
	}
}

func registerAdminPages(r *gin.Engine, pages *handlers.PagesHandler, guard gin.HandlerFunc) {
	// Login page stays outside the guard so it is reachable in every state.
	r.GET(middleware.AdminLoginPath, pages.Login)

	admin := r.Group("/admin")
	admin.Use(guard)
	{
		admin.GET("", pages.Dashboard)
		admin.GET("/dashboard", pages.Dashboard)
		admin.GET("/events", pages.Events)
		admin.GET("/team", pages.Team)
		admin.GET("/faqs", pages.FAQs)
		admin.GET("/messages", pages.Messages)
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "sdp-site-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
