package routes

import (
	"github.com/labstack/echo/v4"

	"refill-system/internal/authz"
	"refill-system/internal/controllers"
	"refill-system/pkg/middleware"
)

// The audit log is browse-only. Mutating methods are bound to an explicit
// rejection handler so a write attempt gets a 403 with a clear message
// instead of a 404, and nothing reaches a service that could write.
func runAuditRouter(secureGroup *echo.Group, ctrl *controllers.AuditController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/audit", ctrl.GetAuditLogs, authMW.Permit(authz.AuditView))
	secureGroup.GET("/audit/:id", ctrl.FindAuditLog, authMW.Permit(authz.AuditView))

	secureGroup.POST("/audit", ctrl.RejectMutation)
	secureGroup.PUT("/audit/:id", ctrl.RejectMutation)
	secureGroup.PATCH("/audit/:id", ctrl.RejectMutation)
	secureGroup.DELETE("/audit/:id", ctrl.RejectMutation)
}
