package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/grantsphere/internal/app/models/dto"
	"github.com/yigit/grantsphere/internal/app/repositories"
	"github.com/yigit/grantsphere/internal/app/services"
)

// HealthResponse reports service readiness
type HealthResponse struct {
	Status       string `json:"status" example:"ok"`
	Scholarships int    `json:"scholarships" example:"13"`
	Sessions     int    `json:"sessions" example:"2"`
}

// HealthController reports the service status
type HealthController struct {
	repo   *repositories.ScholarshipRepository
	browse services.BrowseService
}

// NewHealthController creates a new HealthController
func NewHealthController(repo *repositories.ScholarshipRepository, browse services.BrowseService) *HealthController {
	return &HealthController{repo: repo, browse: browse}
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=HealthResponse} "Service is healthy"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(HealthResponse{
		Status:       "ok",
		Scholarships: c.repo.Count(),
		Sessions:     c.browse.Count(),
	}))
}
