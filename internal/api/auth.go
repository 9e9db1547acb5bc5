package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/pageza/calendara/backend/internal/middleware"
	"github.com/pageza/calendara/backend/internal/service"
	"github.com/pageza/calendara/backend/internal/types"
	"github.com/pageza/calendara/backend/internal/validation"
)

const sessionCookieMaxAge = 24 * 60 * 60

// AuthHandler exposes registration, login and the sign-in code exchange.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/code", middleware.AuthMiddleware(h.authService), h.IssueCode)
		auth.POST("/logout", middleware.AuthMiddleware(h.authService), h.Logout)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request body",
				"details": validation.FromBinding(verrs),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// IssueCode hands the signed-in caller a one-time code it can carry to
// /auth/callback on another device or browser.
func (h *AuthHandler) IssueCode(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	code, err := h.authService.IssueLoginCode(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Callback redeems the one-time sign-in code handed off by the auth flow.
// Failure sends the visitor back to sign-in; success sets the session
// cookie and lands on the dashboard.
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code != "" {
		token, err := h.authService.ExchangeCode(c.Request.Context(), code)
		if err != nil {
			c.Redirect(http.StatusFound, middleware.SignInPath)
			return
		}
		h.setSessionCookie(c, token)
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
}
