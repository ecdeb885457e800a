package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/coachflow/coachflow-backend/internal/cache"
	"github.com/coachflow/coachflow-backend/internal/config"
	"github.com/coachflow/coachflow-backend/internal/infra/database"
	"github.com/coachflow/coachflow-backend/internal/infra/http/handlers"
	"github.com/coachflow/coachflow-backend/internal/infra/http/middleware"
	"github.com/coachflow/coachflow-backend/internal/infra/mail"
	"github.com/coachflow/coachflow-backend/internal/infra/queue"
	"github.com/coachflow/coachflow-backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := database.NewDBConnection(cfg.Database.URL)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.Queue.User, cfg.Queue.Pass, cfg.Queue.Host, cfg.Queue.Port)
	if err != nil {
		logger.Fatal("connecting to RabbitMQ", zap.Error(err))
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	bookingRepo := database.NewBookingRepository(db)
	callRepo := database.NewVoiceCallRepository(db)
	messageRepo := database.NewMessageRepository(db)
	workflowRepo := database.NewWorkflowRepository(db)
	emailRepo := database.NewEmailQueueRepository(db)

	// 2. Cache, queue producer, mail sender
	store := cache.New(cfg.Cache.RefreshInterval, logger)
	defer store.Close()

	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	sender := mail.NewEmailSender(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From)

	// 3. Worker (drains the email queue)
	worker := queue.NewWorker(rabbitMQ.Ch, sender, emailRepo, logger)
	go worker.Start(queue.QueueName)

	// 4. Services
	leadService := usecase.NewLeadService(leadRepo, store, logger)
	bookingService := usecase.NewBookingService(bookingRepo, store, logger)
	callService := usecase.NewVoiceCallService(callRepo, store, logger)
	messageService := usecase.NewMessageService(messageRepo, store, logger)
	workflowService := usecase.NewWorkflowService(workflowRepo, store, logger)
	statsUC := usecase.NewDashboardStatsUseCase(
		leadService, bookingService, callService, messageService, workflowService, store, logger,
	)
	emailService := usecase.NewEmailAutomationService(emailRepo, leadRepo, producer, store, logger)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(leadService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	callHandler := handlers.NewVoiceCallHandler(callService)
	messageHandler := handlers.NewMessageHandler(messageService)
	workflowHandler := handlers.NewWorkflowHandler(workflowService)
	dashboardHandler := handlers.NewDashboardHandler(statsUC)
	emailHandler := handlers.NewEmailHandler(emailService)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: cfg.CORS.AllowedMethods,
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Auth.SecretKey))

		r.Get("/leads", leadHandler.HandleList)
		r.Post("/leads", leadHandler.HandleCreate)
		r.Get("/bookings", bookingHandler.HandleList)
		r.Post("/bookings", bookingHandler.HandleCreate)
		r.Get("/voice-calls", callHandler.HandleList)
		r.Post("/voice-calls", callHandler.HandleCreate)
		r.Get("/messages", messageHandler.HandleList)
		r.Post("/messages", messageHandler.HandleCreate)
		r.Get("/workflows", workflowHandler.HandleList)
		r.Post("/workflows", workflowHandler.HandleCreate)

		r.Get("/dashboard/stats", dashboardHandler.HandleStats)

		r.Post("/automation/trigger", emailHandler.HandleTrigger)
		r.Post("/emails/{emailID}/engagement", emailHandler.HandleEngagement)
		r.Get("/emails/analytics", emailHandler.HandleAnalytics)
	})

	addr := ":" + cfg.App.Port
	logger.Info("server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
