package v1

import (
	"net/http"
	"time"

	"go-hrms-backend/config"
	"go-hrms-backend/internal/delivery/http/middleware"
	"go-hrms-backend/internal/delivery/http/response"
	"go-hrms-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	VacancyUC   domain.VacancyUsecase
	CandidateUC domain.CandidateUsecase
	EmployeeUC  domain.EmployeeUsecase
	LetterUC    domain.LetterUsecase
	InterviewUC domain.InterviewUsecase
	ScreeningUC domain.ScreeningUsecase
	DashboardUC domain.DashboardUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run before anything that can abort
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold))
	uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig())

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config))
	{
		NewAuthHandler(v1.Group("", loginLimiter), protected, deps.AuthUC)
		NewVacancyHandler(v1, protected, deps.VacancyUC)
		NewCandidateHandler(v1, protected, deps.CandidateUC, uploadLimiter)
		NewEmployeeHandler(protected, deps.EmployeeUC)
		NewLetterHandler(protected, deps.LetterUC, uploadLimiter)
		NewInterviewHandler(protected, deps.InterviewUC)
		NewScreeningHandler(protected, deps.ScreeningUC)
		NewDashboardHandler(protected, deps.DashboardUC)
	}

	return r
}
