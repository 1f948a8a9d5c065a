package handlers

import (
	"net/http"

	response "vendor_registration/internal/adapter/http/dto/response"
	"vendor_registration/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	usecase usecase.IHealthUseCase
}

func NewHealthHandler(uc usecase.IHealthUseCase) *HealthHandler {
	return &HealthHandler{usecase: uc}
}

// Check godoc
// @Summary      Service health
// @Description  Reports CRM credentials, TTL store reachability, email configuration and rate-limit settings.
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.HealthResponse
// @Failure      503  {object}  response.HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	report := h.usecase.Check(c.Request.Context())

	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response.FromHealthReport(report))
}
