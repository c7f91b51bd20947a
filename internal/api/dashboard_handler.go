package api

import (
	"net/http"

	"coachmarket/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// ClientDashboard godoc
// @Summary Client dashboard
// @Description Totals, average calories, progressVs30Days and recent activity.
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ClientDashboard
// @Router /client/dashboard [get]
func (h *DashboardHandler) ClientDashboard(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.ClientDashboard(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) ClientProgress(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	progress, err := h.dashboardService.ClientProgress(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// CoachDashboard godoc
// @Summary Coach dashboard
// @Description Program and client totals with per-client programCompletion and workoutFrequency.
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.CoachDashboard
// @Router /coach/dashboard [get]
func (h *DashboardHandler) CoachDashboard(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.CoachDashboard(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
