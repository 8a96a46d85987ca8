package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hrms-backend/config"
	v1 "go-hrms-backend/internal/delivery/http/v1"
	"go-hrms-backend/internal/repository/postgres"
	"go-hrms-backend/internal/usecase"
	"go-hrms-backend/pkg/ai"
	"go-hrms-backend/pkg/database"
	"go-hrms-backend/pkg/email"
	"go-hrms-backend/pkg/logger"
	"go-hrms-backend/pkg/pdftext"
	"go-hrms-backend/pkg/redis"
	"go-hrms-backend/pkg/storage"
	"go-hrms-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           HRMS Backend API
// @version         1.0
// @description     HR management backend: candidates, employees, vacancies, letters and interviews.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting HRMS backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// Repositories
	personRepo := postgres.NewPersonRepository(dbPool)
	vacancyRepo := postgres.NewVacancyRepository(dbPool)
	letterRepo := postgres.NewLetterRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	hrUserRepo := postgres.NewHRUserRepository(dbPool)
	emailHistoryRepo := postgres.NewEmailHistoryRepository(dbPool)

	// Services
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notifications will fail")
	}

	ctx := context.Background()
	storageService, err := storage.NewService(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	if err := storageService.Ping(ctx); err != nil {
		logger.Log.Warn("Storage bucket unreachable - uploads will fail", "error", err)
	}

	geminiClient, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Log.Error("Failed to initialize Gemini client", "error", err)
		os.Exit(1)
	}
	defer geminiClient.Close()

	// Usecases
	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(hrUserRepo, storageService, validate, cfg.JWTSecret, cfg.InvitationCode)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo, validate)
	candidateUC := usecase.NewCandidateUsecase(personRepo, vacancyRepo, letterRepo, emailHistoryRepo, storageService, emailService, validate)
	employeeUC := usecase.NewEmployeeUsecase(personRepo, letterRepo, emailHistoryRepo, storageService)
	letterUC := usecase.NewLetterUsecase(letterRepo, personRepo, emailHistoryRepo, storageService, emailService)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, personRepo, vacancyRepo, emailHistoryRepo, emailService)
	screeningUC := usecase.NewScreeningUsecase(pdftext.Extractor{}, geminiClient)
	dashboardUC := usecase.NewDashboardUsecase(personRepo, vacancyRepo, letterRepo, interviewRepo)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		VacancyUC:   vacancyUC,
		CandidateUC: candidateUC,
		EmployeeUC:  employeeUC,
		LetterUC:    letterUC,
		InterviewUC: interviewUC,
		ScreeningUC: screeningUC,
		DashboardUC: dashboardUC,
		Config:      cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
