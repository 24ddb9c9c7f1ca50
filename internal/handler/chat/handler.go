package chat

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/mindnest/backend/internal/model/chat"
	"github.com/zhouzirui/mindnest/backend/internal/service/ai"
	chatService "github.com/zhouzirui/mindnest/backend/internal/service/chat"
	"github.com/zhouzirui/mindnest/backend/pkg/logger"
	"github.com/zhouzirui/mindnest/backend/pkg/utils"
)

// Handler 聊天接口的HTTP处理器
type Handler struct {
	chatSvc *chatService.Service
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

// chatRequest only checks that message is present; blank text is rejected by
// the service, which trims it.
type chatRequest struct {
	Message string              `json:"message" validate:"required"`
	History []chat.HistoryEntry `json:"history"`
}

// handleChat 处理一轮对话
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		logger.FromContext(r.Context()).Debug("invalid request body", "error", err)
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.Validate(payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := h.chatSvc.Reply(r.Context(), payload.Message, payload.History)
	switch {
	case err == nil:
		utils.RespondJSON(w, http.StatusOK, reply)
	case errors.Is(err, chatService.ErrMessageRequired):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ai.ErrBackendUnavailable):
		utils.RespondError(w, http.StatusBadGateway, ai.ErrBackendUnavailable.Error())
	default:
		logger.FromContext(r.Context()).Error("chat failed", "error", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
