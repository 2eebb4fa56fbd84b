package models

// CostingAnalysis is the financial breakdown common to market analysis, crop
// recommendations, and post-harvest advice. Values are free-form strings with
// units (e.g. "10 tonnes/acre", "₹25,000 per acre") because the model
// estimates, it does not calculate.
type CostingAnalysis struct {
	EstimatedYield     string `json:"estimatedYield" validate:"required"`
	CostOfProduction   string `json:"costOfProduction" validate:"required"`
	PostProductionCost string `json:"postProductionCost" validate:"required"`
	EstimatedSales     string `json:"estimatedSales" validate:"required"`
	EstimatedProfit    string `json:"estimatedProfit" validate:"required"`
}
