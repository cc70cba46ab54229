package routes

import (
	"github.com/labstack/echo/v4"

	"refill-system/internal/authz"
	"refill-system/internal/controllers"
	"refill-system/pkg/middleware"
)

func runDepotRouter(secureGroup *echo.Group, ctrl *controllers.DepotController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/depot", ctrl.GetDepots, authMW.Permit(authz.DepotsView))
	secureGroup.GET("/depot/:id", ctrl.FindDepot, authMW.Permit(authz.DepotsView))
	secureGroup.POST("/depot", ctrl.CreateDepot, authMW.Permit(authz.DepotsCreate))
	secureGroup.PUT("/depot/:id", ctrl.UpdateDepot, authMW.Permit(authz.DepotsUpdate))
	secureGroup.DELETE("/depot/:id", ctrl.DeleteDepot, authMW.Permit(authz.DepotsDelete))
}
