package routes

import (
	"github.com/labstack/echo/v4"

	"refill-system/internal/authz"
	"refill-system/internal/controllers"
	"refill-system/pkg/middleware"
)

func runEquipmentRouter(secureGroup *echo.Group, ctrl *controllers.EquipmentController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/equipment", ctrl.GetEquipment, authMW.Permit(authz.EquipmentView))
	secureGroup.GET("/equipment/:id", ctrl.FindEquipment, authMW.Permit(authz.EquipmentView))
	secureGroup.POST("/equipment", ctrl.CreateEquipment, authMW.Permit(authz.EquipmentCreate))
	secureGroup.PUT("/equipment/:id", ctrl.UpdateEquipment, authMW.Permit(authz.EquipmentUpdate))
	secureGroup.DELETE("/equipment/:id", ctrl.DeleteEquipment, authMW.Permit(authz.EquipmentDelete))
}
