package routes

import (
	"github.com/labstack/echo/v4"

	"refill-system/internal/authz"
	"refill-system/internal/controllers"
	"refill-system/pkg/middleware"
)

func runInvoiceRouter(secureGroup *echo.Group, ctrl *controllers.InvoiceController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/invoice", ctrl.GetInvoices, authMW.Permit(authz.InvoicesView))
	secureGroup.GET("/invoice/:id", ctrl.FindInvoice, authMW.Permit(authz.InvoicesView))
	secureGroup.POST("/invoice", ctrl.CreateInvoice, authMW.Permit(authz.InvoicesCreate))
	secureGroup.PUT("/invoice/:id", ctrl.UpdateInvoice, authMW.Permit(authz.InvoicesUpdate))
	secureGroup.DELETE("/invoice/:id", ctrl.DeleteInvoice, authMW.Permit(authz.InvoicesDelete))
	secureGroup.POST("/invoice/:id/generate", ctrl.MarkInvoiceGenerated, authMW.Permit(authz.InvoicesUpdate))
	secureGroup.POST("/invoice/resend", ctrl.ResendInvoices, authMW.Permit(authz.InvoicesResend))
}
