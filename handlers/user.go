package handlers

import (
	"net/http"

	"complyhub/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes account registration and auth endpoints.
type UserHandler struct {
	Svc user.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// RegisterHandler creates an account and signs the caller in.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Svc.Register(c, input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateHandler verifies credentials and issues a token.
func (h *UserHandler) AuthenticateHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Svc.Authenticate(c, input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler returns the caller's own profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler edits the caller's profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Svc.Update(c, usr, input.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RevokeAuthTokenHandler signs the caller out by invalidating the
// stored token hash.
func (h *UserHandler) RevokeAuthTokenHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Svc.RevokeToken(c, usr.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token revoked"})
}
