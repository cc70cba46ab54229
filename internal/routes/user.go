package routes

import (
	"github.com/labstack/echo/v4"

	"refill-system/internal/authz"
	"refill-system/internal/controllers"
	"refill-system/pkg/middleware"
)

func runUserRouter(secureGroup *echo.Group, ctrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/user", ctrl.GetUsers, authMW.Permit(authz.UsersView))
	secureGroup.GET("/user/:id", ctrl.FindUser, authMW.Permit(authz.UsersView))
	secureGroup.POST("/user", ctrl.CreateUser, authMW.Permit(authz.UsersCreate))
	secureGroup.PUT("/user/:id", ctrl.UpdateUser, authMW.Permit(authz.UsersUpdate))
	secureGroup.DELETE("/user/:id", ctrl.DeleteUser, authMW.Permit(authz.UsersDelete))
}
