package v1

import (
	"net/http"

	"go-hrms-backend/internal/delivery/http/response"
	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

// NewCandidateHandler registers candidate routes. The application form is
// public; listing and the decision workflow are HR-only.
func NewCandidateHandler(public *gin.RouterGroup, protected *gin.RouterGroup, candidateUC domain.CandidateUsecase, uploadLimiter gin.HandlerFunc) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	public.POST("/recruitment/candidates", uploadLimiter, handler.Apply)

	candidates := protected.Group("/recruitment/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.Get)
		candidates.POST("/decision", handler.Decide)
	}
}

type DecisionRequest struct {
	CandidateID string `json:"candidateid" binding:"required"`
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Decision    string `json:"decision" binding:"required"`
}

// Apply godoc
// @Summary      Submit application
// @Description  Public candidate application form with an optional PDF resume.
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullName   formData  string  true   "Full name"
// @Param        email      formData  string  true   "Email"
// @Param        phone      formData  string  true   "Phone"
// @Param        vacancyId  formData  string  true   "Vacancy ID"
// @Param        resume     formData  file    false  "Resume (PDF)"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruitment/candidates [post]
func (h *CandidateHandler) Apply(c *gin.Context) {
	app := domain.CandidateApplication{
		FullName:   c.PostForm("fullName"),
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("phone"),
		Address:    c.PostForm("address"),
		Education:  c.PostForm("education"),
		Experience: c.PostForm("experience"),
		LinkedIn:   c.PostForm("linkedIn"),
		Notes:      c.PostForm("notes"),
		VacancyID:  c.PostForm("vacancyId"),
	}

	name, data, err := readFormFile(c, "resume")
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	app.ResumeName = name
	app.ResumeData = data

	person, err := h.candidateUC.Apply(c.Request.Context(), app)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", person)
}

// List godoc
// @Summary      List candidates
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        vacancyId  query     string  false  "Filter by vacancy"
// @Success      200        {object}  response.Response
// @Router       /recruitment/candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	persons, err := h.candidateUC.List(c.Request.Context(), c.Query("vacancyId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", persons)
}

// Get godoc
// @Summary      Get candidate
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruitment/candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	person, err := h.candidateUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", person)
}

// Decide godoc
// @Summary      Decide on candidate
// @Description  Accept promotes the candidate to employee and opens their letters; reject emails and removes the record.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        decision  body      DecisionRequest  true  "Decision"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /recruitment/candidates/decision [post]
func (h *CandidateHandler) Decide(c *gin.Context) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.candidateUC.Decide(c.Request.Context(), req.CandidateID, req.FullName, req.Email, req.Decision)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, result.Message, result)
}
