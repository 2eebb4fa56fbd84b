package models

// MarketAnalysisInput is the request for the market analysis agent. The agent
// has no tool dependency; it works entirely from the model's market knowledge.
type MarketAnalysisInput struct {
	Commodity string `json:"commodity,omitempty" validate:"omitempty,min=3"`
	Location  string `json:"location,omitempty" validate:"omitempty,min=3"`
	Market    string `json:"market,omitempty" validate:"omitempty,min=3"`
	UserNotes string `json:"userNotes,omitempty"`
	Query     string `json:"query" validate:"required,min=10"`
	Language  string `json:"language,omitempty"`
}

// PricePoint is a quoted price with its unit and date
type PricePoint struct {
	Price float64 `json:"price" validate:"required"`
	Unit  string  `json:"unit" validate:"required"`
	Date  string  `json:"date" validate:"required"`
}

// CurrentPrice extends PricePoint with the quoting market
type CurrentPrice struct {
	Price  float64 `json:"price"`
	Unit   string  `json:"unit" validate:"required"`
	Date   string  `json:"date" validate:"required"`
	Market string  `json:"market" validate:"required"`
}

// DailyPriceRange is the day's low/high band
type DailyPriceRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
	Unit string  `json:"unit" validate:"required"`
}

// CorePriceInfo groups the critical price data
type CorePriceInfo struct {
	CurrentPrice    CurrentPrice    `json:"currentPrice" validate:"required"`
	DailyPriceRange DailyPriceRange `json:"dailyPriceRange" validate:"required"`
}

// PriceChange is the day-over-day movement
type PriceChange struct {
	Change           float64 `json:"change"`
	PercentageChange float64 `json:"percentageChange"`
}

// PriceTrend describes the recent direction of prices
type PriceTrend struct {
	Direction string `json:"direction" validate:"required,oneof=Upward Downward Stable Volatile"`
	Period    string `json:"period" validate:"required"`
}

// HistoricalTrendAnalysis groups price movement over time
type HistoricalTrendAnalysis struct {
	PreviousDayPrice PricePoint  `json:"previousDayPrice" validate:"required"`
	PriceChange      PriceChange `json:"priceChange" validate:"required"`
	PriceTrend       PriceTrend  `json:"priceTrend" validate:"required"`
}

// SupplyStatus is the current market supply level and its price impact
type SupplyStatus struct {
	Status string `json:"status" validate:"required,oneof=High Moderate Low"`
	Impact string `json:"impact" validate:"required"`
}

// DemandStatus is the current market demand level and its price impact
type DemandStatus struct {
	Status string `json:"status" validate:"required,oneof=Strong Moderate Weak"`
	Impact string `json:"impact" validate:"required"`
}

// MarketDynamics groups the supply and demand forces in play
type MarketDynamics struct {
	SupplyStatus SupplyStatus `json:"supplyStatus" validate:"required"`
	DemandStatus DemandStatus `json:"demandStatus" validate:"required"`
}

// ActionableInsight is the agent's recommendation to the farmer
type ActionableInsight struct {
	Recommendation string `json:"recommendation" validate:"required"`
	Reasoning      string `json:"reasoning" validate:"required"`
}

// AnalysisMetadata records when the analysis was generated and from what
type AnalysisMetadata struct {
	LastUpdated string `json:"lastUpdated" validate:"required"`
	DataSource  string `json:"dataSource" validate:"required"`
}

// MarketAnalysisOutput is the structured market intelligence returned by the
// market analysis agent.
type MarketAnalysisOutput struct {
	MarketSummary           string                  `json:"marketSummary" validate:"required"`
	CorePriceInfo           CorePriceInfo           `json:"corePriceInfo" validate:"required"`
	HistoricalTrendAnalysis HistoricalTrendAnalysis `json:"historicalTrendAnalysis" validate:"required"`
	MarketDynamics          MarketDynamics          `json:"marketDynamics" validate:"required"`
	ActionableInsight       ActionableInsight       `json:"actionableInsight" validate:"required"`
	AdditionalInfo          AnalysisMetadata        `json:"additionalInfo" validate:"required"`
	CostingAnalysis         CostingAnalysis         `json:"costingAnalysis" validate:"required"`
}
