package v1

import (
	"net/http"

	"go-hrms-backend/internal/delivery/http/response"
	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeUC domain.EmployeeUsecase
}

func NewEmployeeHandler(protected *gin.RouterGroup, employeeUC domain.EmployeeUsecase) {
	handler := &EmployeeHandler{employeeUC: employeeUC}

	employees := protected.Group("/employees")
	{
		employees.GET("", handler.List)
		employees.GET("/export", handler.Export)
		employees.GET("/:id", handler.Get)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
		employees.POST("/:id/activities", handler.AddActivity)
		employees.GET("/:id/email-history", handler.EmailHistory)
	}
}

type ActivityRequest struct {
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Performance int    `json:"performance" binding:"required,min=1,max=5"`
}

// List godoc
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	persons, err := h.employeeUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", persons)
}

// Get godoc
// @Summary      Get employee
// @Description  Returns the employee with their letters populated.
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	person, err := h.employeeUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", person)
}

// Update godoc
// @Summary      Update employee
// @Description  Multipart profile edit. Letter and activity fields are ignored here.
// @Tags         employees
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	upd := domain.EmployeeUpdate{
		FullName:   c.PostForm("fullName"),
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("phone"),
		Address:    c.PostForm("address"),
		Education:  c.PostForm("education"),
		Experience: c.PostForm("experience"),
		LinkedIn:   c.PostForm("linkedIn"),
		Status:     c.PostForm("status"),
		Department: c.PostForm("department"),
	}

	name, data, err := readFormFile(c, "profileImage")
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	upd.ProfileImageName = name
	upd.ProfileImageData = data

	person, err := h.employeeUC.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employee updated", person)
}

// Delete godoc
// @Summary      Delete employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employeeUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employee deleted", nil)
}

// AddActivity godoc
// @Summary      Record performance activity
// @Description  Appends an activity and recomputes the running performance score.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string           true  "Employee ID"
// @Param        activity  body      ActivityRequest  true  "Activity"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /employees/{id}/activities [post]
func (h *EmployeeHandler) AddActivity(c *gin.Context) {
	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	act, score, err := h.employeeUC.AddActivity(c.Request.Context(), c.Param("id"), req.Type, req.Description, req.Performance)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Activity recorded", gin.H{
		"newActivity":      act,
		"performanceScore": score,
	})
}

// EmailHistory godoc
// @Summary      List email history
// @Description  Returns the emails exchanged with the employee, newest first.
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id}/email-history [get]
func (h *EmployeeHandler) EmailHistory(c *gin.Context) {
	entries, err := h.employeeUC.EmailHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", entries)
}

// Export godoc
// @Summary      Export employee roster
// @Description  Streams the roster as an xlsx download.
// @Tags         employees
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200
// @Router       /employees/export [get]
func (h *EmployeeHandler) Export(c *gin.Context) {
	data, filename, err := h.employeeUC.ExportRoster(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.File(c, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
