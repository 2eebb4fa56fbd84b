package models

// CropRecommenderInput is the request for the crop recommender agent.
// Missing temperature/humidity/rainfall are backfilled from the environmental
// lookup when a location is present. Pointers distinguish "not provided"
// from a legitimate zero value.
type CropRecommenderInput struct {
	Location         string   `json:"location" validate:"required"`
	LandSize         string   `json:"landSize,omitempty"`
	SoilType         string   `json:"soilType,omitempty"`
	SoilPh           *float64 `json:"soilPh,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	Humidity         *float64 `json:"humidity,omitempty"`
	Rainfall         *float64 `json:"rainfall,omitempty"`
	UserGoal         string   `json:"userGoal,omitempty"`
	LastCropGrown    string   `json:"lastCropGrown,omitempty"`
	TermPeriod       *int     `json:"termPeriod,omitempty"`
	SoilPhotoDataURI string   `json:"soilPhotoDataUri,omitempty"`
	Language         string   `json:"language,omitempty"`
}

// RecommendedCrop is one crop recommendation with its full agronomic,
// economic, regional, and risk analysis.
type RecommendedCrop struct {
	// Crop information
	CropName    string `json:"cropName" validate:"required"`
	CropDetails string `json:"cropDetails" validate:"required"`

	// Agricultural guidance
	SowingTime         string `json:"sowingTime" validate:"required"`
	Dependency         string `json:"dependency" validate:"required"`
	ResourceAllocation string `json:"resourceAllocation" validate:"required"`

	// Environmental factors
	SoilRequirements  string `json:"soilRequirements" validate:"required"`
	WeatherConditions string `json:"weatherConditions" validate:"required"`

	// Economic insights
	YieldPotential string `json:"yieldPotential" validate:"required"`
	MarketTrends   string `json:"marketTrends" validate:"required"`
	Profitability  string `json:"profitability" validate:"required"`

	// Regional specificity
	LocationSuitability     string `json:"locationSuitability" validate:"required"`
	RegionalCropPerformance string `json:"regionalCropPerformance" validate:"required"`

	// Risk management
	PestAndDiseaseManagement string `json:"pestAndDiseaseManagement" validate:"required"`
	ClimateRisk              string `json:"climateRisk" validate:"required"`

	CostingAnalysis CostingAnalysis `json:"costingAnalysis" validate:"required"`
}

// CropRecommenderOutput carries at least three recommendations
type CropRecommenderOutput struct {
	Recommendations []RecommendedCrop `json:"recommendations" validate:"required,min=3,dive"`
}
