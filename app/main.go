package main

import (
	"context"
	"net/http"

	"printfront/internal/gateway"
	"printfront/internal/history"
	"printfront/internal/realtime"
	"printfront/internal/routes"
	"printfront/pkg/config"
	apperrors "printfront/pkg/errors"
	applogger "printfront/pkg/logger"
	"printfront/pkg/service"
	"printfront/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panique interceptée",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Erreur interne du serveur", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			allowedOrigins := []string{
				"http://localhost:5173",
				"http://localhost:4173",
			}
			for _, o := range allowedOrigins {
				if origin == o {
					return true, nil
				}
			}
			return false, nil
		},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	e.Validator = utils.NewValidator(validator.New())

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey)
	gw := gateway.NewClient(cfg.Backend, logger)
	historyService := history.NewService(gw, logger)

	hub := realtime.NewHub(logger)
	go hub.Run()

	consumer := realtime.NewConsumer(cfg.Backend, hub, logger)
	go consumer.Run(context.Background())

	loggers := &routes.Loggers{
		Main:    logger,
		Auth:    logger.Named("auth"),
		Order:   logger.Named("order"),
		History: logger.Named("history"),
	}
	routes.InitRouter(e, gw, historyService, hub, jwtSvc, loggers)

	logger.Info("🚀 Serveur démarré", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Erreur au démarrage du serveur", zap.Error(err))
	}
}
