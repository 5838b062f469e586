package handlers

import (
	"github.com/harber-marketplace/harber-client/internal/http/response"

	"github.com/gin-gonic/gin"
)

// IssueTokenRequest 开发令牌签发请求
type IssueTokenRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// IssueToken 签发开发用 Bearer Token（仅供本地联调，真实环境由认证端签发）
func (h *Handler) IssueToken(c *gin.Context) {
	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "bad request")
		return
	}
	token, err := h.TokenService.Issue(req.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token})
}
