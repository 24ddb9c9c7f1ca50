package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/zhouzirui/mindnest/backend/pkg/logger"
)

// RequestIDHeader 请求 ID 的响应头
const RequestIDHeader = "X-Request-ID"

// RequestLogger 为每个请求分配 ID，并记录请求完成日志（跳过健康检查）。
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		reqLogger := slog.Default().With(
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"client_ip", r.RemoteAddr,
		)
		ctx := logger.WithContext(r.Context(), reqLogger)

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		if r.URL.Path == "/health" {
			return
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		latency := time.Since(start)
		attrs := []any{"status", status, "latency_ms", latency.Milliseconds()}

		switch {
		case status >= 500:
			reqLogger.Error("request completed with server error", attrs...)
		case status >= 400:
			reqLogger.Warn("request completed with client error", attrs...)
		default:
			reqLogger.Info("request completed", attrs...)
		}
	})
}
