package routes

import (
	"github.com/labstack/echo/v4"

	"refill-system/internal/authz"
	"refill-system/internal/controllers"
	"refill-system/pkg/middleware"
)

func runCustomerRouter(secureGroup *echo.Group, ctrl *controllers.CustomerController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/customer", ctrl.GetCustomers, authMW.Permit(authz.CustomersView))
	secureGroup.GET("/customer/:id", ctrl.FindCustomer, authMW.Permit(authz.CustomersView))
	secureGroup.POST("/customer", ctrl.CreateCustomer, authMW.Permit(authz.CustomersCreate))
	secureGroup.PUT("/customer/:id", ctrl.UpdateCustomer, authMW.Permit(authz.CustomersUpdate))
	secureGroup.DELETE("/customer/:id", ctrl.DeleteCustomer, authMW.Permit(authz.CustomersDelete))
}
