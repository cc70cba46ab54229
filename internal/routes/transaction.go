package routes

import (
	"github.com/labstack/echo/v4"

	"refill-system/internal/authz"
	"refill-system/internal/controllers"
	"refill-system/pkg/middleware"
)

func runTransactionRouter(secureGroup *echo.Group, ctrl *controllers.TransactionController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/transaction", ctrl.GetTransactions, authMW.Permit(authz.TransactionsView))
	secureGroup.GET("/transaction/export", ctrl.ExportTransactions, authMW.Permit(authz.TransactionsExport))
	secureGroup.GET("/transaction/:id", ctrl.FindTransaction, authMW.Permit(authz.TransactionsView))
	secureGroup.POST("/transaction", ctrl.CreateTransaction, authMW.Permit(authz.TransactionsCreate))
	secureGroup.PUT("/transaction/:id", ctrl.UpdateTransaction, authMW.Permit(authz.TransactionsUpdate))
	secureGroup.DELETE("/transaction/:id", ctrl.DeleteTransaction, authMW.Permit(authz.TransactionsDelete))
}
