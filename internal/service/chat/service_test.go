package chat_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zhouzirui/mindnest/backend/internal/analysis/crisis"
	"github.com/zhouzirui/mindnest/backend/internal/mocks"
	model "github.com/zhouzirui/mindnest/backend/internal/model/chat"
	"github.com/zhouzirui/mindnest/backend/internal/service/ai"
	chat "github.com/zhouzirui/mindnest/backend/internal/service/chat"
	"github.com/zhouzirui/mindnest/backend/pkg/logger"
)

func TestServiceReplyRequiresMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	replier := mocks.NewMockReplier(ctrl)
	svc := chat.NewService(replier)

	for _, msg := range []string{"", "   ", "\n"} {
		_, err := svc.Reply(context.Background(), msg, nil)
		require.ErrorIs(t, err, chat.ErrMessageRequired)
	}
}

func TestServiceReplyCrisisBypassesRelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	replier := mocks.NewMockReplier(ctrl)
	replier.EXPECT().Reply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	svc := chat.NewService(replier)

	history := []model.HistoryEntry{
		{Role: "user", Content: "I had a lovely day"},
		{Role: "assistant", Content: "That's great to hear!"},
	}

	got, err := svc.Reply(context.Background(), "  I want to die  ", history)
	require.NoError(t, err)
	require.True(t, got.Crisis)
	require.Equal(t, crisis.Response, got.Reply)
}

func TestServiceReplyCrisisLogsPhraseNotMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	replier := mocks.NewMockReplier(ctrl)
	svc := chat.NewService(replier)

	var buf bytes.Buffer
	ctx := logger.WithContext(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	got, err := svc.Reply(ctx, "my landlord called again and I want to Kill Myself", nil)
	require.NoError(t, err)
	require.True(t, got.Crisis)

	out := buf.String()
	require.Contains(t, out, "crisis language detected")
	require.Contains(t, out, "incident_id=")
	require.Contains(t, out, `phrase="kill myself"`)
	require.NotContains(t, out, "landlord")
}

func TestServiceReplyRelaysTrimmedMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	replier := mocks.NewMockReplier(ctrl)
	history := []model.HistoryEntry{{Role: "user", Content: "hello"}}
	replier.EXPECT().
		Reply(gomock.Any(), history, "I feel stressed about exams").
		Return("Exams can feel overwhelming.", nil)
	svc := chat.NewService(replier)

	got, err := svc.Reply(context.Background(), " I feel stressed about exams ", history)
	require.NoError(t, err)
	require.False(t, got.Crisis)
	require.Equal(t, "Exams can feel overwhelming.", got.Reply)
}

func TestServiceReplyPropagatesBackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	replier := mocks.NewMockReplier(ctrl)
	replier.EXPECT().
		Reply(gomock.Any(), gomock.Any(), "hello").
		Return("", errors.Join(ai.ErrBackendUnavailable, errors.New("dial tcp: connection refused")))
	svc := chat.NewService(replier)

	_, err := svc.Reply(context.Background(), "hello", nil)
	require.ErrorIs(t, err, ai.ErrBackendUnavailable)
}
