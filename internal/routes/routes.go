package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"refill-system/internal/admin"
	"refill-system/internal/authz"
	"refill-system/internal/controllers"
	"refill-system/internal/repositories"
	"refill-system/internal/services"
	"refill-system/pkg/config"
	"refill-system/pkg/middleware"
	"refill-system/pkg/service"
)

// InitRouter wires repositories, services and controllers together and
// binds every route group under /api.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) services.InvoiceServiceInterface {
	api := e.Group("/api")

	registry := admin.NewDefaultRegistry()
	gatekeeper := authz.NewGatekeeper(registry)

	// Repositories.
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	userRepo := repositories.NewUserRepository(dbConn)
	permissionRepo := repositories.NewPermissionRepository(dbConn)
	depotRepo := repositories.NewDepotRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	customerRepo := repositories.NewCustomerRepository(dbConn)
	inventoryRepo := repositories.NewInventoryRepository(dbConn)
	transactionRepo := repositories.NewTransactionRepository(dbConn)
	invoiceRepo := repositories.NewInvoiceRepository(dbConn)
	distributionRepo := repositories.NewDistributionRepository(dbConn)
	auditRepo := repositories.NewAuditRepository(dbConn)

	// Services.
	auditService := services.NewAuditService(auditRepo, logger)
	authPermissionService := services.NewAuthPermissionService(permissionRepo, cacheRepo, logger)
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, logger)
	userService := services.NewUserService(userRepo, auditService)
	depotService := services.NewDepotService(depotRepo, auditService)
	equipmentService := services.NewEquipmentService(equipmentRepo, auditService)
	customerService := services.NewCustomerService(customerRepo, auditService)
	inventoryService := services.NewInventoryService(inventoryRepo, auditService)
	transactionService := services.NewTransactionService(transactionRepo, auditService)
	mailer := service.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, logger)
	invoiceService := services.NewInvoiceService(invoiceRepo, mailer, auditService, logger)
	distributionService := services.NewDistributionService(distributionRepo, auditService)

	// Controllers.
	authController := controllers.NewAuthController(authService, logger)
	adminController := controllers.NewAdminController(registry, logger)
	userController := controllers.NewUserController(userService, logger)
	depotController := controllers.NewDepotController(depotService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	customerController := controllers.NewCustomerController(customerService, logger)
	inventoryController := controllers.NewInventoryController(inventoryService, logger)
	transactionController := controllers.NewTransactionController(transactionService, logger)
	invoiceController := controllers.NewInvoiceController(invoiceService, logger)
	distributionController := controllers.NewDistributionController(distributionService, logger)
	auditController := controllers.NewAuditController(auditService, logger)

	authMW := middleware.NewAuthMiddleware(jwtSvc, authPermissionService, gatekeeper, logger)
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authController)
	runAdminRouter(secureGroup, adminController)
	runUserRouter(secureGroup, userController, authMW)
	runDepotRouter(secureGroup, depotController, authMW)
	runEquipmentRouter(secureGroup, equipmentController, authMW)
	runCustomerRouter(secureGroup, customerController, authMW)
	runInventoryRouter(secureGroup, inventoryController, authMW)
	runTransactionRouter(secureGroup, transactionController, authMW)
	runInvoiceRouter(secureGroup, invoiceController, authMW)
	runDistributionRouter(secureGroup, distributionController, authMW)
	runAuditRouter(secureGroup, auditController, authMW)

	return invoiceService
}
