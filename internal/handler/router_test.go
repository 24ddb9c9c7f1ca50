package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	analysis "github.com/zhouzirui/mindnest/backend/internal/analysis/sentiment"
	"github.com/zhouzirui/mindnest/backend/internal/mocks"
	chatservice "github.com/zhouzirui/mindnest/backend/internal/service/chat"
	sentimentservice "github.com/zhouzirui/mindnest/backend/internal/service/sentiment"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockReplier) {
	ctrl := gomock.NewController(t)
	replier := mocks.NewMockReplier(ctrl)
	router := NewRouter(
		chatservice.NewService(replier),
		sentimentservice.NewService(analysis.NewAnalyzer()),
	)
	return router, replier
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	for i := 0; i < 2; i++ {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, resp.Code)
		require.JSONEq(t, `{"ok":true}`, resp.Body.String())
		require.NotEmpty(t, resp.Header().Get("X-Request-ID"))
	}
}

func TestRoutesAreMounted(t *testing.T) {
	router, replier := newTestRouter(t)
	replier.EXPECT().Reply(gomock.Any(), gomock.Any(), "hi").Return("hello", nil)

	tests := []struct {
		path string
		body string
	}{
		{"/chat", `{"message":"hi"}`},
		{"/analyze", `{"text":"hi"}`},
		{"/batch", `{"items":[{"text":"hi"}]}`},
	}

	for _, tt := range tests {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, tt.path, bytes.NewReader([]byte(tt.body))))
		require.Equal(t, http.StatusOK, resp.Code, tt.path)
	}
}

func TestWrongMethod(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/analyze", nil))
	require.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}
