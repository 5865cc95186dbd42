package model

// MetricSet holds the four normalized 0-100 domain scores
type MetricSet struct {
	Consistency int `json:"consistency"`
	Focus       int `json:"focus"`
	StudyLoad   int `json:"studyLoad"`
	Financial   int `json:"financial"`
}

// DashboardView is the lightweight intelligence payload
type DashboardView struct {
	GlobalScore int       `json:"globalScore"`
	Metrics     MetricSet `json:"metrics"`
	MiniInsight string    `json:"miniInsight"`
}

// Domain statuses
const (
	StatusOptimal   = "Optimal"
	StatusStable    = "Stable"
	StatusAttention = "Attention"
)

// DomainStatus labels one metric domain with a status band
type DomainStatus struct {
	Domain string `json:"domain"`
	Score  int    `json:"score"`
	Status string `json:"status"`
}

// PerformancePoint is one day in the 7-day trailing trend
type PerformancePoint struct {
	Date  string `json:"date"` // 3-letter weekday label
	Focus int    `json:"focus"`
	Load  int    `json:"load"`
	Study int    `json:"study"`
}

// ModuleScore is a per-module 0-100 completion score
type ModuleScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// DistributionSlice is one slice of the performance distribution chart
type DistributionSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Fill  string `json:"fill"`
}

// Charts groups the three chart datasets of the core view
type Charts struct {
	PerformanceData         []PerformancePoint  `json:"performanceData"`
	ModulePerformance       []ModuleScore       `json:"modulePerformance"`
	PerformanceDistribution []DistributionSlice `json:"performanceDistribution"`
}

// Recommendation risk bands
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Recommendation is a single ranked action item
type Recommendation struct {
	Title  string `json:"title"`
	Impact int    `json:"impact"` // 0-100
	Risk   string `json:"risk"`   // Low, Medium, High
	Icon   string `json:"icon"`
	Action string `json:"action"`
	Source string `json:"source"`
}

// InsightBundle is the narrative + recommendations package
type InsightBundle struct {
	HumanReadableSummary string           `json:"humanReadableSummary"`
	CauseEffectChains    []string         `json:"causeEffectChains"`
	Recommendations      []Recommendation `json:"recommendations"` // always exactly 3
}

// Predictions is the forward-looking block of the core view
type Predictions struct {
	NextRiskDay        string `json:"nextRiskDay"`
	BurnoutProbability int    `json:"burnoutProbability"`
	FinancialRisk      string `json:"financialRisk"`
}

// CoreView is the heavy intelligence payload
type CoreView struct {
	GlobalScore   int            `json:"globalScore"`
	Metrics       MetricSet      `json:"metrics"`
	DomainStatus  []DomainStatus `json:"domainStatus"`
	Charts        Charts         `json:"charts"`
	HeatIndicator []int          `json:"heatIndicator"` // 7 entries, oldest first
	AILayer       InsightBundle  `json:"aiLayer"`
	Predictions   Predictions    `json:"predictions"`
}

// AIInsightReport is the structured schema requested from the language model
type AIInsightReport struct {
	Title           string           `json:"title"`
	Priority        string           `json:"priority"`
	Synthesis       string           `json:"synthesis"`
	Insights        []string         `json:"insights"` // exactly 5
	CausalChain     string           `json:"causalChain"`
	Predictions     Predictions      `json:"predictions"`
	WeeklyOutlook   string           `json:"weeklyOutlook"`
	MonthlyOutlook  string           `json:"monthlyOutlook"`
	Recommendations []Recommendation `json:"recommendations"` // exactly 3
}

// ChatRequest is the body of POST /api/intelligence/chat
type ChatRequest struct {
	Message string    `json:"message"`
	Metrics MetricSet `json:"metrics"`
}

// ChatResponse is the reply envelope of the chat endpoint
type ChatResponse struct {
	Reply string `json:"reply"`
}

// GenerateAIRequest is the body of POST /api/intelligence/generate-ai.
// Context optionally carries the latest weekly-review summary.
type GenerateAIRequest struct {
	Metrics *MetricSet `json:"metrics"`
	Context string     `json:"context,omitempty"`
}
