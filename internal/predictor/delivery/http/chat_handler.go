package http

import (
	"net/http"
	"strings"

	"golang-stock-predictor/internal/predictor/dto"
	"golang-stock-predictor/internal/predictor/service"

	"github.com/labstack/echo/v4"
)

// ChatHandler serves the scripted chat endpoint.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// RegisterRoutes registers the chat routes to the Echo group.
func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/chat", h.Chat)
}

// Chat godoc
// @Summary Get a canned reply for a chat message
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   request  body    dto.ChatRequest   true    "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Message must not be empty"})
	}

	return c.JSON(http.StatusOK, h.chatService.Reply(c.Request().Context(), req.Message))
}
