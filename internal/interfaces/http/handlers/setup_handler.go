package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sdp-site.backend/internal/config"
	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/internal/infrastructure/models"
	"sdp-site.backend/internal/interfaces/http/response"
	"sdp-site.backend/internal/usecases"
	"sdp-site.backend/pkg/logger"
)

// SetupHandler handles first-run provisioning: schema migration and the
// initial admin account.
type SetupHandler struct {
	db          *gorm.DB
	authUsecase *usecases.AuthUsecase
	adminCfg    config.AdminConfig
}

// NewSetupHandler creates a new setup handler
func NewSetupHandler(db *gorm.DB, authUsecase *usecases.AuthUsecase, adminCfg config.AdminConfig) *SetupHandler {
	return &SetupHandler{
		db:          db,
		authUsecase: authUsecase,
		adminCfg:    adminCfg,
	}
}

// Setup seeds the initial admin account. Safe to call repeatedly; an
// existing account is left untouched.
// GET /api/setup
func (h *SetupHandler) Setup(c *gin.Context) {
	created, err := h.authUsecase.EnsureAdminUser(
		c.Request.Context(),
		h.adminCfg.Email,
		h.adminCfg.Password,
		h.adminCfg.Name,
	)
	if err != nil {
		logger.Error(c.Request.Context(), "admin seeding failed", zap.Error(err))
		response.Error(c, domainerrors.InternalError("setup failed", err))
		return
	}

	message := "Admin account already exists"
	if created {
		message = "Admin account created"
	}
	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"created": created,
		"message": message,
	})
}

// Migrate applies the schema for all registered models.
// POST /api/migrate
func (h *SetupHandler) Migrate(c *gin.Context) {
	if err := h.db.WithContext(c.Request.Context()).AutoMigrate(models.All()...); err != nil {
		logger.Error(c.Request.Context(), "migration failed", zap.Error(err))
		response.Error(c, domainerrors.InternalError("migration failed", err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Migration completed",
	})
}

// MigrateHint answers GET on the migrate endpoint with usage guidance.
// GET /api/migrate
func (h *SetupHandler) MigrateHint(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"message": "Use POST to run migrations",
	})
}
