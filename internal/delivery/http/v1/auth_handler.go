package v1

import (
	"net/http"

	"go-hrms-backend/internal/delivery/http/response"
	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/signup", handler.Signup)
		publicAuth.POST("/signin", handler.Signin)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}

	hrprofile := protected.Group("/hrprofile")
	{
		hrprofile.GET("", handler.GetProfile)
		hrprofile.PUT("", handler.UpdateProfile)
	}
}

type SignupRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	InvitationCode string `json:"invitationCode" binding:"required"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
// @Summary      HR Registration
// @Description  Register an HR account. Requires the shared invitation code.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      SignupRequest  true  "Registration Details"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Signup(c.Request.Context(), req.Name, req.Email, req.Password, req.InvitationCode)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Account created", user)
}

// Signin godoc
// @Summary      HR Login
// @Description  Verify credentials and return a session token. Also sets the token cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signin  body      SigninRequest  true  "Credentials"
// @Success      200     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Router       /auth/signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, token, err := h.authUC.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	// 24h, httpOnly; Secure is left to the proxy in front
	c.SetCookie("token", token, 86400, "/", "", false, true)

	response.Success(c, http.StatusOK, "Signed in", gin.H{
		"token": token,
		"user":  user,
	})
}

// Me godoc
// @Summary      Current HR user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", user)
}

// GetProfile godoc
// @Summary      HR profile
// @Tags         hrprofile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /hrprofile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", user)
}

// UpdateProfile godoc
// @Summary      Update HR profile
// @Description  Multipart profile edit with optional profileImage upload. The subject is always the token holder.
// @Tags         hrprofile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /hrprofile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	upd := domain.HRProfileUpdate{
		Name:       c.PostForm("name"),
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("phone"),
		Position:   c.PostForm("position"),
		Department: c.PostForm("department"),
		Experience: c.PostForm("experience"),
		About:      c.PostForm("about"),
	}

	name, data, err := readFormFile(c, "profileImage")
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	upd.ProfileImageName = name
	upd.ProfileImageData = data

	user, err := h.authUC.UpdateProfile(c.Request.Context(), userID, upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", user)
}
