package handlers

import (
	"errors"
	"net/http"

	"readycleans/models"
	ai "readycleans/services/intelligence"
	"readycleans/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewChatHandler answers the site chat widget.
func NewChatHandler(chat ai.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		chatRequests.Inc()

		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			chatFailures.Inc()
			utils.JSONError(c, http.StatusBadRequest, "Message is required", err.Error())
			return
		}

		reply, err := chat.Reply(c.Request.Context(), req)
		if err != nil {
			chatFailures.Inc()
			switch {
			case errors.Is(err, ai.ErrEmptyMessage):
				utils.JSONError(c, http.StatusBadRequest, "Message is required", "")
			case errors.Is(err, ai.ErrNotConfigured):
				utils.JSONError(c, http.StatusInternalServerError, "Gemini API key not configured", "")
			default:
				logger.Error("chat reply failed", zap.Error(err))
				utils.JSONError(c, http.StatusInternalServerError, "Failed to get AI response", err.Error())
			}
			return
		}

		c.JSON(http.StatusOK, models.ChatResponse{Response: reply})
	}
}
