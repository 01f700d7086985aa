package models

import "time"

// IdeaCategory groups trade ideas by their nature.
type IdeaCategory string

const (
	IdeaDirectional   IdeaCategory = "Directional"
	IdeaRelativeValue IdeaCategory = "Relative Value"
	IdeaRiskMgmt      IdeaCategory = "Risk Management"
	IdeaNarrative     IdeaCategory = "Narrative"
	IdeaNeutral       IdeaCategory = "Neutral"
)

// Conviction grades how strongly a rule fired.
type Conviction string

const (
	ConvictionHigh   Conviction = "High"
	ConvictionMedium Conviction = "Medium"
	ConvictionLow    Conviction = "Low"
)

// TradeIdea is a heuristic, advisory trade suggestion. The list is fully
// recomputed whenever the news set or macro snapshot changes.
type TradeIdea struct {
	ID           string       `json:"id"`
	Tag          string       `json:"tag"`
	Category     IdeaCategory `json:"category"`
	EdgeEstimate string       `json:"edgeEstimate"`
	Conviction   Conviction   `json:"conviction"`
	Title        string       `json:"title"`
	Summary      string       `json:"summary"`
	Horizon      string       `json:"horizon"`
	RiskNote     string       `json:"riskNote"`
}

// PipelineSnapshot is the read-only outbound view of one derivation cycle.
type PipelineSnapshot struct {
	News      []NewsItem    `json:"news"`
	Macro     MacroSnapshot `json:"macro"`
	Ideas     []TradeIdea   `json:"ideas"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
