package routes

import (
	"github.com/labstack/echo/v4"

	"refill-system/internal/controllers"
)

// The metadata endpoints need authentication only: every operator may see
// the resource layout, row access is enforced per resource.
func runAdminRouter(secureGroup *echo.Group, ctrl *controllers.AdminController) {
	secureGroup.GET("/admin/resources", ctrl.GetResources)
	secureGroup.GET("/admin/resources/:resource", ctrl.GetResource)
}
