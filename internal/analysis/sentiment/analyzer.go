package sentiment

import (
	"github.com/jonreiter/govader"

	model "github.com/zhouzirui/mindnest/backend/internal/model/sentiment"
)

// Compound thresholds used by VADER's reference labelling.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Analyzer 基于 VADER 词典给文本打分。构建一次，可并发读取。
type Analyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer loads the bundled VADER lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the polarity fractions and compound score of text.
func (a *Analyzer) Score(text string) model.Scores {
	s := a.sia.PolarityScores(text)
	return model.Scores{
		Positive: s.Positive,
		Neutral:  s.Neutral,
		Negative: s.Negative,
		Compound: s.Compound,
	}
}

// LabelFromCompound maps a compound score to a three-way label.
func LabelFromCompound(compound float64) model.Label {
	switch {
	case compound >= PositiveThreshold:
		return model.Positive
	case compound <= NegativeThreshold:
		return model.Negative
	default:
		return model.Neutral
	}
}
