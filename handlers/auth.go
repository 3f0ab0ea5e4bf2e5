package handlers

import (
	"net/http"

	"havenhotel/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler issues session cookies.
type AuthHandler struct {
	Tokens *utils.TokenManager
}

func NewAuthHandler(tokens *utils.TokenManager) *AuthHandler {
	return &AuthHandler{Tokens: tokens}
}

// AccessTokenHandler handles POST /api/v1/auth/access-token. The signed token
// travels only in the cookie; the body carries just the acknowledgment.
func (h *AuthHandler) AccessTokenHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "a valid email is required")
		return
	}

	token, _, err := h.Tokens.Issue(req.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to sign session token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("token", token, int(h.Tokens.TTL().Seconds()), "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
