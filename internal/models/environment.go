package models

// EnvironmentalRecord holds typical environmental conditions for a location.
// Derived per request, never persisted.
type EnvironmentalRecord struct {
	Temperature float64 `json:"temperature"` // Average annual temperature in Celsius
	Humidity    float64 `json:"humidity"`    // Average annual humidity percentage
	Rainfall    float64 `json:"rainfall"`    // Average annual rainfall in millimeters
	SoilType    string  `json:"soilType"`    // Predominant soil type in the area
}
