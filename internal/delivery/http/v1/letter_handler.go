package v1

import (
	"net/http"

	"go-hrms-backend/internal/delivery/http/response"
	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type LetterHandler struct {
	letterUC domain.LetterUsecase
}

func NewLetterHandler(protected *gin.RouterGroup, letterUC domain.LetterUsecase, uploadLimiter gin.HandlerFunc) {
	handler := &LetterHandler{letterUC: letterUC}

	employees := protected.Group("/employees")
	{
		employees.GET("/pending-letters", handler.Pending)
		employees.POST("/pending-letters/send-letters", uploadLimiter, handler.Issue)
		employees.POST("/letters/send", handler.CreateSent)
		employees.GET("/:id/letters", handler.ListByEmployee)
	}
}

type CreateLetterRequest struct {
	EmployeeID  string                     `json:"employeeId" binding:"required"`
	LetterType  domain.LetterType          `json:"letterType" binding:"required"`
	Offer       *domain.OfferDetails       `json:"offerDetails"`
	Appointment *domain.AppointmentDetails `json:"appointmentDetails"`
}

// Pending godoc
// @Summary      Employees with pending letters
// @Description  Lists employees having at least one unsent letter, letters filtered to the unsent ones.
// @Tags         letters
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /employees/pending-letters [get]
func (h *LetterHandler) Pending(c *gin.Context) {
	persons, err := h.letterUC.PendingEmployees(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", persons)
}

// Issue godoc
// @Summary      Send letter file
// @Description  Uploads the generated letter, marks it sent and emails it to the employee. Rejects letters already sent.
// @Tags         letters
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  formData  string  true  "Employee ID"
// @Param        letterType  formData  string  true  "offer or appointment"
// @Param        file        formData  file    true  "Letter PDF"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/pending-letters/send-letters [post]
func (h *LetterHandler) Issue(c *gin.Context) {
	employeeID := c.PostForm("employeeId")
	letterType := domain.LetterType(c.PostForm("letterType"))
	if employeeID == "" {
		c.Error(apperror.BadRequest("employeeId is required"))
		return
	}

	name, data, err := readFormFile(c, "file")
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	letter, err := h.letterUC.Issue(c.Request.Context(), employeeID, letterType, name, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Letter sent", letter)
}

// CreateSent godoc
// @Summary      Record sent letter
// @Description  Creates a typed letter with its variant details and marks it sent immediately.
// @Tags         letters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        letter  body      CreateLetterRequest  true  "Letter"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /employees/letters/send [post]
func (h *LetterHandler) CreateSent(c *gin.Context) {
	var req CreateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	draft := &domain.Letter{
		Type:        req.LetterType,
		Offer:       req.Offer,
		Appointment: req.Appointment,
	}
	letter, err := h.letterUC.CreateSent(c.Request.Context(), req.EmployeeID, draft)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Letter recorded", letter)
}

// ListByEmployee godoc
// @Summary      List employee letters
// @Tags         letters
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id}/letters [get]
func (h *LetterHandler) ListByEmployee(c *gin.Context) {
	letters, err := h.letterUC.ListByEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", letters)
}
