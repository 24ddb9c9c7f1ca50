package sentiment

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	model "github.com/zhouzirui/mindnest/backend/internal/model/sentiment"
	sentimentService "github.com/zhouzirui/mindnest/backend/internal/service/sentiment"
	"github.com/zhouzirui/mindnest/backend/pkg/logger"
	"github.com/zhouzirui/mindnest/backend/pkg/utils"
)

// Handler 情感分析接口的HTTP处理器
type Handler struct {
	svc *sentimentService.Service
}

// New 创建情感分析处理器
func New(svc *sentimentService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 注册情感分析相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/analyze", h.handleAnalyze)
	r.Post("/batch", h.handleBatch)
}

// analyzeRequest only checks presence; the service rejects blank text.
type analyzeRequest struct {
	Text string `json:"text" validate:"required"`
}

type batchRequest struct {
	Items []model.BatchItem `json:"items"`
}

type batchResponse struct {
	Results []model.BatchResult `json:"results"`
}

// handleAnalyze 对单条文本打分
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var payload analyzeRequest
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		logger.FromContext(r.Context()).Debug("invalid request body", "error", err)
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.Validate(payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.Analyze(r.Context(), payload.Text)
	if err != nil {
		if errors.Is(err, sentimentService.ErrTextRequired) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.FromContext(r.Context()).Error("analyze failed", "error", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

// handleBatch 批量打分，空文本直接跳过
func (h *Handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	var payload batchRequest
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		logger.FromContext(r.Context()).Debug("invalid request body", "error", err)
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results := h.svc.Batch(r.Context(), payload.Items)
	utils.RespondJSON(w, http.StatusOK, batchResponse{Results: results})
}
