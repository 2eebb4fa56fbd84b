package models

// PostHarvestInput is the request for the post-harvest advice agent
type PostHarvestInput struct {
	CropContext    CurrentCropContext `json:"cropContext" validate:"required"`
	EstimatedYield string             `json:"estimatedYield,omitempty"`
	Language       string             `json:"language,omitempty"`
}

// PostHarvestOutput is the nine-section advice package plus costing
type PostHarvestOutput struct {
	StorageRecommendations     string          `json:"storageRecommendations" validate:"required"`
	TransportationOptions      string          `json:"transportationOptions" validate:"required"`
	MarketLinkages             string          `json:"marketLinkages" validate:"required"`
	ValueAdditionOpportunities string          `json:"valueAdditionOpportunities" validate:"required"`
	PricingStrategy            string          `json:"pricingStrategy" validate:"required"`
	QualityControlMeasures     string          `json:"qualityControlMeasures" validate:"required"`
	PostHarvestHandling        string          `json:"postHarvestHandling" validate:"required"`
	WasteManagement            string          `json:"wasteManagement" validate:"required"`
	CostingAnalysis            CostingAnalysis `json:"costingAnalysis" validate:"required"`
}
