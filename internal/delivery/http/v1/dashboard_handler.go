package v1

import (
	"net/http"

	"go-hrms-backend/internal/delivery/http/response"
	"go-hrms-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	protected.GET("/dashboard/stats", handler.Stats)
}

// Stats godoc
// @Summary      Dashboard counters
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUC.Stats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", stats)
}
