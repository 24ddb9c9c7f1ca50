package sentiment

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/lo"

	analysis "github.com/zhouzirui/mindnest/backend/internal/analysis/sentiment"
	model "github.com/zhouzirui/mindnest/backend/internal/model/sentiment"
)

var ErrTextRequired = errors.New("text is required")

// Scorer computes polarity scores for a text.
type Scorer interface {
	Score(text string) model.Scores
}

// Service labels free text by polarity.
type Service struct {
	scorer Scorer
}

// NewService wires the service to a scorer, usually *analysis.Analyzer.
func NewService(scorer Scorer) *Service {
	return &Service{scorer: scorer}
}

// Analyze scores a single text. Blank text is rejected.
func (s *Service) Analyze(_ context.Context, text string) (model.Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Result{}, ErrTextRequired
	}

	scores := s.scorer.Score(text)
	return model.Result{
		Scores:    scores,
		Sentiment: analysis.LabelFromCompound(scores.Compound),
	}, nil
}

// Batch scores every non-blank item in order. Blank items are dropped.
func (s *Service) Batch(_ context.Context, items []model.BatchItem) []model.BatchResult {
	return lo.FilterMap(items, func(item model.BatchItem, _ int) (model.BatchResult, bool) {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			return model.BatchResult{}, false
		}

		scores := s.scorer.Score(text)
		return model.BatchResult{
			Text:   text,
			TS:     item.TS,
			Scores: scores,
			Label:  analysis.LabelFromCompound(scores.Compound),
		}, true
	})
}
