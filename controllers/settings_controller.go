package controllers

import (
	"net/http"

	"tour-admin-backend/middleware"
	"tour-admin-backend/models"
	"tour-admin-backend/services"
	"tour-admin-backend/utils"

	"github.com/gin-gonic/gin"
)

// SettingsController manages keyed site content blocks, currently the
// homepage hero banner.
type SettingsController struct {
	content *services.SiteContentService
}

func NewSettingsController(content *services.SiteContentService) *SettingsController {
	return &SettingsController{content: content}
}

func (sc *SettingsController) GetHeroBanner(c *gin.Context) {
	banner, err := sc.content.GetHeroBanner()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch hero banner")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, banner)
}

func (sc *SettingsController) UpdateHeroBanner(c *gin.Context) {
	var banner models.HeroBannerContent
	if err := c.ShouldBindJSON(&banner); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	updatedBy := middleware.SessionUserID(c)
	row, err := sc.content.UpdateByKey(models.ElementKeyHomepageHero, banner, updatedBy)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update hero banner")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}

func (sc *SettingsController) GetContent(c *gin.Context) {
	row, err := sc.content.GetByKey(c.Param("key"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "content not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}
