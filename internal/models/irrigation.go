package models

// IrrigationSchedulerInput is the request for the irrigation scheduler agent.
// Missing rainfall/soil type are backfilled from the environmental lookup.
type IrrigationSchedulerInput struct {
	Location     string   `json:"location" validate:"required"`
	LandSize     string   `json:"landSize" validate:"required"`
	LandUnit     string   `json:"landUnit" validate:"required"`
	LastCrop     string   `json:"lastCrop,omitempty"`
	TermPeriod   int      `json:"termPeriod" validate:"required,min=1"`
	Rainfall     *float64 `json:"rainfall,omitempty"`
	SoilType     string   `json:"soilType,omitempty"`
	SoilPh       *float64 `json:"soilPh,omitempty"`
	SelectedCrop string   `json:"selectedCrop" validate:"required"`
	Language     string   `json:"language,omitempty"`
}

// IrrigationEvent is one dated entry in the schedule. Date is YYYY-MM-DD,
// times are HH:MM (24-hour).
type IrrigationEvent struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// IrrigationSchedulerOutput is the ordered schedule returned by the agent.
// All dates are instructed to be on or after the current date.
type IrrigationSchedulerOutput struct {
	Schedule []IrrigationEvent `json:"schedule" validate:"required,dive"`
}
