package routes

import (
	"github.com/labstack/echo/v4"

	"refill-system/internal/authz"
	"refill-system/internal/controllers"
	"refill-system/pkg/middleware"
)

func runDistributionRouter(secureGroup *echo.Group, ctrl *controllers.DistributionController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/distribution", ctrl.GetDistributions, authMW.Permit(authz.DistributionsView))
	secureGroup.GET("/distribution/:id", ctrl.FindDistribution, authMW.Permit(authz.DistributionsView))
	secureGroup.POST("/distribution", ctrl.CreateDistribution, authMW.Permit(authz.DistributionsCreate))
	secureGroup.PUT("/distribution/:id", ctrl.UpdateDistribution, authMW.Permit(authz.DistributionsUpdate))
	secureGroup.DELETE("/distribution/:id", ctrl.DeleteDistribution, authMW.Permit(authz.DistributionsDelete))
	secureGroup.POST("/distribution/:id/confirm", ctrl.ConfirmDistribution, authMW.Permit(authz.DistributionsConfirm))
}
