package main

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"refill-system/internal/routes"
	"refill-system/pkg/config"
	"refill-system/pkg/database/postgresql"
	apperrors "refill-system/pkg/errors"
	applogger "refill-system/pkg/logger"
	appmw "refill-system/pkg/middleware"
	"refill-system/pkg/service"
	"refill-system/pkg/utils"
)

func main() {
	cfg := config.New()

	logger := applogger.NewLogger()
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{echo.HeaderContentDisposition},
	}))
	e.Use(appmw.RequestLogger(logger))

	e.Validator = utils.NewValidator(validator.New())

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("redis connection failed", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	invoiceService := routes.InitRouter(e, dbConn, redisClient, jwtSvc, logger, cfg)

	// Periodic sweep for generated invoices that never reached the
	// customer; the same path as the manual bulk resend action.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Invoice.ResendSchedule, func() {
		sent, err := invoiceService.ResendPending(context.Background())
		if err != nil {
			logger.Error("invoice resend sweep failed", zap.Error(err))
			return
		}
		if sent > 0 {
			logger.Info("invoice resend sweep finished", zap.Int("sent", sent))
		}
	}); err != nil {
		logger.Fatal("scheduling invoice resend failed", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	logger.Info("server listening", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
