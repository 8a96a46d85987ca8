package v1

import (
	"net/http"
	"time"

	"go-hrms-backend/internal/delivery/http/response"
	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(protected *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := protected.Group("/recruitment/interviews")
	{
		interviews.POST("/schedule", handler.Schedule)
		interviews.GET("", handler.List)
		interviews.GET("/:id", handler.Get)
		interviews.PATCH("/:id", handler.UpdateStatus)
		interviews.DELETE("/:id", handler.Cancel)
	}
}

type ScheduleRequest struct {
	CandidateID     string `json:"candidateId" binding:"required"`
	InterviewDate   string `json:"interviewDate" binding:"required"`
	InterviewTime   string `json:"interviewTime" binding:"required"`
	AdditionalNotes string `json:"additionalNotes"`
}

type InterviewStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Schedule godoc
// @Summary      Schedule interview
// @Description  Books an interview for a candidate and notifies the candidate and the hiring manager.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        interview  body      ScheduleRequest  true  "Interview"
// @Success      201        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /recruitment/interviews/schedule [post]
func (h *InterviewHandler) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	date, err := time.Parse("2006-01-02", req.InterviewDate)
	if err != nil {
		if date, err = time.Parse(time.RFC3339, req.InterviewDate); err != nil {
			c.Error(apperror.BadRequest("interviewDate must be YYYY-MM-DD or RFC3339"))
			return
		}
	}

	iv, err := h.interviewUC.Schedule(c.Request.Context(), req.CandidateID, date, req.InterviewTime, req.AdditionalNotes)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Interview scheduled", iv)
}

// List godoc
// @Summary      List interviews
// @Tags         interviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /recruitment/interviews [get]
func (h *InterviewHandler) List(c *gin.Context) {
	interviews, err := h.interviewUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", interviews)
}

// Get godoc
// @Summary      Get interview
// @Tags         interviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruitment/interviews/{id} [get]
func (h *InterviewHandler) Get(c *gin.Context) {
	iv, err := h.interviewUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", iv)
}

// UpdateStatus godoc
// @Summary      Update interview status
// @Description  Status is the only mutable field after scheduling.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string                  true  "Interview ID"
// @Param        status  body      InterviewStatusRequest  true  "New status"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /recruitment/interviews/{id} [patch]
func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	var req InterviewStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	iv, err := h.interviewUC.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview updated", iv)
}

// Cancel godoc
// @Summary      Cancel interview
// @Description  Removes the interview record entirely.
// @Tags         interviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruitment/interviews/{id} [delete]
func (h *InterviewHandler) Cancel(c *gin.Context) {
	if err := h.interviewUC.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview cancelled", nil)
}
