package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hazykiller/NGO-WEBSITE/internal/certificate"
	"github.com/Hazykiller/NGO-WEBSITE/internal/config"
	"github.com/Hazykiller/NGO-WEBSITE/internal/email"
	"github.com/Hazykiller/NGO-WEBSITE/internal/gateway"
	"github.com/Hazykiller/NGO-WEBSITE/internal/handlers"
	"github.com/Hazykiller/NGO-WEBSITE/internal/logger"
	"github.com/Hazykiller/NGO-WEBSITE/internal/middleware"
	"github.com/Hazykiller/NGO-WEBSITE/internal/routes"
	"github.com/Hazykiller/NGO-WEBSITE/internal/services"
	"github.com/Hazykiller/NGO-WEBSITE/internal/storage"
	"github.com/Hazykiller/NGO-WEBSITE/internal/validator"

	"github.com/gin-gonic/gin"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	// SMTP подключаем только когда задано всё: хост и учётка.
	// Иначе письма пропускаются, а verify_payment честно вернёт
	// email_sent:false.
	var mailer email.Provider
	smtpCfg := &email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUser,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
	}
	if smtpCfg.Configured() {
		mailer = email.NewSMTPProvider(smtpCfg)
		logger.Info("SMTP provider configured", "host", cfg.Email.SMTPHost, "port", cfg.Email.SMTPPort)
	} else {
		logger.Warn("SMTP is not fully configured. Receipt emails will be skipped.")
	}

	ginRouter := SetupRouter(cfg, mailer)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    address,
		Handler: ginRouter,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает готовый движок. Тесты передают сюда свой
// email.Provider (или nil, чтобы письма пропускались).
func SetupRouter(cfg *config.Config, mailer email.Provider) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     "local",
		BasePath: cfg.Certificates.Dir,
		BaseURL:  cfg.Certificates.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "dir", cfg.Certificates.Dir)

	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg, storageInstance, mailer)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage, mailer email.Provider) *services.ServiceContainer {
	gw := gateway.New(gateway.Config{
		Enabled:       cfg.Razorpay.Enabled,
		KeyID:         cfg.Razorpay.KeyID,
		KeySecret:     cfg.Razorpay.KeySecret,
		WebhookSecret: cfg.Razorpay.WebhookSecret,
	})
	logger.Info("Payment gateway initialized", "mode", gw.Mode())

	renderer := certificate.NewRenderer()

	orderService := services.NewOrderService(gw)
	certificateService := services.NewCertificateService(renderer, storageInstance)
	paymentService := services.NewPaymentService(gw, certificateService, mailer)

	return &services.ServiceContainer{
		OrderService:       orderService,
		PaymentService:     paymentService,
		CertificateService: certificateService,
		EmailProvider:      mailer,
		Storage:            storageInstance,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		HealthHandler:      handlers.NewHealthHandler(baseHandler, container.OrderService),
		OrderHandler:       handlers.NewOrderHandler(baseHandler, container.OrderService),
		PaymentHandler:     handlers.NewPaymentHandler(baseHandler, container.PaymentService),
		CertificateHandler: handlers.NewCertificateHandler(baseHandler, container.CertificateService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.FrontendOrigin))
	return router
}
