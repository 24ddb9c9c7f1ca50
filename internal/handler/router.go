package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/mindnest/backend/internal/handler/chat"
	"github.com/zhouzirui/mindnest/backend/internal/handler/sentiment"
	middlewarePkg "github.com/zhouzirui/mindnest/backend/internal/middleware"
	chatService "github.com/zhouzirui/mindnest/backend/internal/service/chat"
	sentimentService "github.com/zhouzirui/mindnest/backend/internal/service/sentiment"
	"github.com/zhouzirui/mindnest/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatSvc *chatService.Service, sentimentSvc *sentimentService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger)
	r.Use(middleware.Recoverer)

	chat.New(chatSvc).RegisterRoutes(r)
	sentiment.New(sentimentSvc).RegisterRoutes(r)

	r.Get("/health", handleHealth)

	return r
}

// handleHealth 存活探针，无副作用
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
