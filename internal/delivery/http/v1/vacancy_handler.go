package v1

import (
	"net/http"

	"go-hrms-backend/internal/delivery/http/response"
	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

// NewVacancyHandler registers vacancy routes. Listing stays public so the
// job board can render without a session; everything else is HR-only.
func NewVacancyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, vacancyUC domain.VacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	public.GET("/recruitment/vacancies", handler.List)

	vacancies := protected.Group("/recruitment/vacancies")
	{
		vacancies.POST("", handler.Create)
		vacancies.GET("/:id", handler.Get)
		vacancies.PUT("/:id", handler.Update)
		vacancies.DELETE("/:id", handler.Delete)
	}
}

type VacancyRequest struct {
	VacancyName        string `json:"vacancyName" binding:"required"`
	JobTitle           string `json:"jobTitle" binding:"required"`
	Description        string `json:"description" binding:"required"`
	Positions          int    `json:"positions" binding:"required,min=1"`
	IsActive           *bool  `json:"isActive"`
	HiringManager      string `json:"hiringManager" binding:"required"`
	HiringManagerEmail string `json:"hiringManagerEmail" binding:"required,email"`
}

// List godoc
// @Summary      List vacancies
// @Tags         vacancies
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /recruitment/vacancies [get]
func (h *VacancyHandler) List(c *gin.Context) {
	vacancies, err := h.vacancyUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", vacancies)
}

// Create godoc
// @Summary      Create vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        vacancy  body      VacancyRequest  true  "Vacancy"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /recruitment/vacancies [post]
func (h *VacancyHandler) Create(c *gin.Context) {
	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	v := req.toVacancy()
	if err := h.vacancyUC.Create(c.Request.Context(), v); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Vacancy created", v)
}

// Get godoc
// @Summary      Get vacancy
// @Tags         vacancies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruitment/vacancies/{id} [get]
func (h *VacancyHandler) Get(c *gin.Context) {
	v, err := h.vacancyUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", v)
}

// Update godoc
// @Summary      Update vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string          true  "Vacancy ID"
// @Param        vacancy  body      VacancyRequest  true  "Vacancy"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /recruitment/vacancies/{id} [put]
func (h *VacancyHandler) Update(c *gin.Context) {
	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	v := req.toVacancy()
	v.ID = c.Param("id")
	if err := h.vacancyUC.Update(c.Request.Context(), v); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy updated", v)
}

// Delete godoc
// @Summary      Delete vacancy
// @Tags         vacancies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruitment/vacancies/{id} [delete]
func (h *VacancyHandler) Delete(c *gin.Context) {
	if err := h.vacancyUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy deleted", nil)
}

func (r *VacancyRequest) toVacancy() *domain.Vacancy {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &domain.Vacancy{
		VacancyName:        r.VacancyName,
		JobTitle:           r.JobTitle,
		Description:        r.Description,
		Positions:          r.Positions,
		IsActive:           isActive,
		HiringManager:      r.HiringManager,
		HiringManagerEmail: r.HiringManagerEmail,
	}
}
