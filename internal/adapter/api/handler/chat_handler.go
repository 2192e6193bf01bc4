package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bazroba/internal/usecase"
	"bazroba/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{chatUseCase: chatUseCase}
}

type sendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

func (h *ChatHandler) SendOrderMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	message, err := h.chatUseCase.SendOrderMessage(c.Request().Context(), c.Param("id"), uid, req.Message)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *ChatHandler) ListOrderMessages(c echo.Context) error {
	uid := c.Get("uid").(string)
	messages, err := h.chatUseCase.ListOrderMessages(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

type sendDirectMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Message    string `json:"message" validate:"required,min=1"`
}

func (h *ChatHandler) SendDirectMessage(c echo.Context) error {
	var req sendDirectMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	message, err := h.chatUseCase.SendDirectMessage(c.Request().Context(), uid, req.ReceiverID, req.Message)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *ChatHandler) ListConversation(c echo.Context) error {
	uid := c.Get("uid").(string)
	messages, err := h.chatUseCase.ListConversation(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

func (h *ChatHandler) MarkMessageRead(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.chatUseCase.MarkRead(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "read"})
}
