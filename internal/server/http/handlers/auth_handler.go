package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	"github.com/ekeukwu/market/internal/server/http/dto"
)

// AuthHandler processes registration, login and identity lookups.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "invalid registration payload"})
		return
	}

	user, _, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "email and password are required"})
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Detail: "email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(*user))
}

// Token handles POST /token. Credentials arrive form-encoded under the
// username/password keys; username carries the account email.
func (h *AuthHandler) Token(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")

	_, token, err := h.facade.Authenticate(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "Incorrect email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "login failed"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /users/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.facade.CurrentUser(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}
