package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-app/services"
	"chat-app/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register creates a new account.
func (ctl *AuthController) Register(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := ctl.auth.Register(input.Username, input.Email, input.Password); err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			utils.RespondError(c, http.StatusBadRequest, "Email already exists")
			return
		}
		slog.Error("register failed", "error", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login authenticates the user and issues a session token. The token and
// user identity are also set as httpOnly cookies for browser clients.
func (ctl *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := ctl.auth.Login(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			utils.RespondError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.RespondError(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			slog.Error("login failed", "error", err)
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	maxAge := int(services.TokenValidity.Seconds())
	c.SetCookie("token", result.Token, maxAge, "/", "", false, true)
	c.SetCookie("userId", result.User.ID, maxAge, "/", "", false, true)
	c.SetCookie("username", result.User.Username, maxAge, "/", "", false, true)

	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"userId":  result.User.ID,
	})
}
