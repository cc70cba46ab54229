package routes

import (
	"github.com/labstack/echo/v4"

	"refill-system/internal/authz"
	"refill-system/internal/controllers"
	"refill-system/pkg/middleware"
)

func runInventoryRouter(secureGroup *echo.Group, ctrl *controllers.InventoryController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/inventory", ctrl.GetInventory, authMW.Permit(authz.InventoryView))
	secureGroup.GET("/inventory/:id", ctrl.FindInventory, authMW.Permit(authz.InventoryView))
	secureGroup.POST("/inventory", ctrl.CreateInventory, authMW.Permit(authz.InventoryCreate))
	secureGroup.PUT("/inventory/:id", ctrl.UpdateInventory, authMW.Permit(authz.InventoryUpdate))
	secureGroup.DELETE("/inventory/:id", ctrl.DeleteInventory, authMW.Permit(authz.InventoryDelete))
}
