package v1

import (
	"net/http"

	"go-hrms-backend/internal/delivery/http/response"
	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ScreeningHandler struct {
	screeningUC domain.ScreeningUsecase
}

func NewScreeningHandler(protected *gin.RouterGroup, screeningUC domain.ScreeningUsecase) {
	handler := &ScreeningHandler{screeningUC: screeningUC}

	protected.POST("/recruitment/compare-resume", handler.CompareResume)
}

type CompareResumeRequest struct {
	ResumeURL          string `json:"resumeUrl" binding:"required,url"`
	VacancyDescription string `json:"vacancyDescription" binding:"required"`
}

// CompareResume godoc
// @Summary      Score resume against vacancy
// @Description  Extracts the resume text and returns the raw model assessment. No caching, no retry.
// @Tags         screening
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CompareResumeRequest  true  "Resume and vacancy"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /recruitment/compare-resume [post]
func (h *ScreeningHandler) CompareResume(c *gin.Context) {
	var req CompareResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	score, err := h.screeningUC.CompareResume(c.Request.Context(), req.ResumeURL, req.VacancyDescription)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"alignmentScore": score})
}
