package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/Sandeshj458/JobPortal/internal/app"
	"github.com/Sandeshj458/JobPortal/internal/config"
	"github.com/Sandeshj458/JobPortal/internal/controllers"
	"github.com/Sandeshj458/JobPortal/internal/metrics"
	"github.com/Sandeshj458/JobPortal/internal/repositories"
	"github.com/Sandeshj458/JobPortal/internal/routes"
	"github.com/Sandeshj458/JobPortal/internal/services"
	"github.com/Sandeshj458/JobPortal/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	accountRepo := repositories.NewAccountRepository(application.DB)
	ledgerRepo := repositories.NewOtpLedgerRepository(application.DB)

	//----------------------------------------------------------------------
	// Metrics & Notifier
	//----------------------------------------------------------------------
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	notifier := services.NewSendgridNotifier(cfg)
	defer notifier.Close()

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	sessionService := services.NewSessionService(cfg)

	otpService := services.NewOtpService(
		accountRepo,
		ledgerRepo,
		sessionService,
		notifier,
		collector,
		cfg,
	)

	accountService := services.NewAccountService(accountRepo, notifier, cfg)

	deletionService := services.NewDeletionService(
		application.DB,
		accountRepo,
		ledgerRepo,
		notifier,
		collector,
		cfg,
	)

	ledgerCleanupService := services.NewLedgerCleanupService(ledgerRepo, cfg)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	authController := controllers.NewAuthController(otpService, accountService, cfg)
	deletionController := controllers.NewDeletionController(deletionService, cfg)
	healthController := controllers.NewHealthController(application.DB)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()

	router.HandleFunc(routes.Health, healthController.Health).Methods("GET")
	router.Handle(routes.Metrics, metrics.Handler(registry)).Methods("GET")

	v1Router := router.PathPrefix(routes.APIPrefix).Subrouter()
	v1Router.HandleFunc(routes.Register, authController.Register).Methods("POST")
	v1Router.HandleFunc(routes.SendOtp, authController.SendOtp).Methods("POST")
	v1Router.HandleFunc(routes.VerifyOtp, authController.VerifyOtp).Methods("POST")
	v1Router.HandleFunc(routes.DeleteAccount, deletionController.DeleteAccount).Methods("POST")
	v1Router.HandleFunc(routes.Logout, authController.Logout).Methods("POST")

	//----------------------------------------------------------------------
	// Setup daily cleanup via cron
	//----------------------------------------------------------------------
	c := cron.New()

	_, schErr := c.AddFunc("0 3 * * *", func() {
		if e := ledgerCleanupService.CleanupDaily(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled otp ledger cleanup failed")
		}
	})
	if schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule otp ledger cleanup job")
	}

	c.Start()

	allowedOrigins := []string{cfg.AppUrl}
	if !cfg.LDFlag_CORSHighSecurity {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000")
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
