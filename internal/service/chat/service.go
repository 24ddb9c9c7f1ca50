//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../mocks/mock_replier.go -package=mocks

package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/zhouzirui/mindnest/backend/internal/analysis/crisis"
	"github.com/zhouzirui/mindnest/backend/internal/model/chat"
	"github.com/zhouzirui/mindnest/backend/pkg/logger"
)

var ErrMessageRequired = errors.New("message is required")

// Replier produces a model answer for a conversation.
type Replier interface {
	Reply(ctx context.Context, history []chat.HistoryEntry, userMessage string) (string, error)
}

// Service handles one chat exchange. It keeps no conversation state.
type Service struct {
	replier Replier
}

// NewService wires the exchange to a replier, usually the ai relay.
func NewService(replier Replier) *Service {
	return &Service{replier: replier}
}

// Reply screens the message for crisis language before relaying it. Crisis
// messages never reach the replier and get the fixed supportive response.
func (s *Service) Reply(ctx context.Context, message string, history []chat.HistoryEntry) (chat.Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return chat.Reply{}, ErrMessageRequired
	}

	if crisis.Detect(message) {
		// Only the matched phrase is logged, never the user's message.
		logger.FromContext(ctx).Warn("crisis language detected, relay bypassed",
			"incident_id", uuid.NewString(),
			"phrase", crisis.Match(message),
		)
		return chat.Reply{Reply: crisis.Response, Crisis: true}, nil
	}

	reply, err := s.replier.Reply(ctx, history, message)
	if err != nil {
		return chat.Reply{}, err
	}
	return chat.Reply{Reply: reply, Crisis: false}, nil
}
