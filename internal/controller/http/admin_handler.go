package http

import (
	"net/http"

	"github.com/shripad-gm/inceptrix/internal/usecase"
	"github.com/shripad-gm/inceptrix/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// PushToAdmin godoc
// @Summary      Push popular and SOS posts to the admin content pool
// @Description  Collect posts at or above the like threshold together with SOS posts and record them as curated admin content. Posts already curated are skipped, so repeated calls are idempotent.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/pushadmin [post]
func (h *AdminHandler) PushToAdmin(c *gin.Context) {
	created, err := h.adminUseCase.CurateContent(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to push posts to admin content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Popular and SOS posts pushed to admin content",
		"count":   len(created),
		"data":    created,
	})
}

// GetAdminContent godoc
// @Summary      List curated admin content
// @Description  All curated entries, newest first, with curator and original post attached.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.AdminContent
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/all [get]
func (h *AdminHandler) GetAdminContent(c *gin.Context) {
	contents, err := h.adminUseCase.ListCuratedContent(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to fetch admin content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if len(contents) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No admin content found"})
		return
	}

	c.JSON(http.StatusOK, contents)
}
