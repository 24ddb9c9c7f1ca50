package sentiment

import "encoding/json"

// Label is the three-way sentiment classification.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// Scores holds the polarity fractions and the compound score of a text.
type Scores struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
	Compound float64 `json:"compound"`
}

// Result is the response body of a single-text analysis.
type Result struct {
	Scores    Scores `json:"scores"`
	Sentiment Label  `json:"sentiment"`
}

// BatchItem is one input entry of a batch request. TS is opaque and echoed back.
type BatchItem struct {
	Text string          `json:"text"`
	TS   json.RawMessage `json:"ts,omitempty"`
}

// BatchResult is one scored entry of a batch response.
type BatchResult struct {
	Text   string          `json:"text"`
	TS     json.RawMessage `json:"ts"`
	Scores Scores          `json:"scores"`
	Label  Label           `json:"label"`
}
