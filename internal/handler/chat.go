package handler

import (
	"net/http"

	"github.com/AnNhien/companion-service/internal/dto"
	"github.com/gin-gonic/gin"
)

// chatFallback is the single in-conversation apology the client shows when
// the gateway is down, instead of surfacing a hard failure.
const chatFallback = "Mạng bên mình hơi chập chờn xíu 🥹 Bạn nói lại giúp mình nhen?"

// chatSend streams the companion's reply as server-sent events, one "chunk"
// event per fragment.
func (h *Handler) chatSend(c *gin.Context) {
	var input dto.ChatRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	userName := ""
	if user := h.getUserFromRequest(c); user != nil {
		userName = user.Name
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	err := h.services.Chat.StreamReply(c.Request.Context(), userName, input.Message, func(chunk string) {
		c.SSEvent("chunk", chunk)
		c.Writer.Flush()
	})
	if err != nil {
		c.SSEvent("error", chatFallback)
		c.Writer.Flush()
		return
	}

	c.SSEvent("done", "")
	c.Writer.Flush()
}
