package routes

import (
	"vendor_registration/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI                = "/api"
	PathVendorRegistration = "/vendor-registration"
	PathHealth             = "/health"
)

func addRegistrationRoutes(rg *gin.RouterGroup, registration *handlers.VendorRegistrationHandler, health *handlers.HealthHandler) {
	rg.POST(PathVendorRegistration, registration.Register)
	rg.GET(PathHealth, health.Check)
}
