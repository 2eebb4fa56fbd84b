package models

import "time"

// CurrentCropContext is the snapshot of a saved crop passed to the
// context-aware agents. SowingDate is an ISO-8601 string on the wire.
type CurrentCropContext struct {
	ID             string `json:"id" validate:"required"`
	CropName       string `json:"cropName" validate:"required"`
	FieldSize      string `json:"fieldSize" validate:"required"`
	Location       string `json:"location" validate:"required"`
	SowingDate     string `json:"sowingDate" validate:"required"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// CurrentCropRecord is a persisted crop a farmer is currently growing
type CurrentCropRecord struct {
	ID             string    `json:"id" badgerhold:"key"`
	CropName       string    `json:"cropName" validate:"required"`
	FieldSize      string    `json:"fieldSize" validate:"required"`
	Location       string    `json:"location" validate:"required"`
	SowingDate     time.Time `json:"sowingDate"`
	AdditionalInfo string    `json:"additionalInfo,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Context converts a stored record into agent context form
func (r *CurrentCropRecord) Context() CurrentCropContext {
	return CurrentCropContext{
		ID:             r.ID,
		CropName:       r.CropName,
		FieldSize:      r.FieldSize,
		Location:       r.Location,
		SowingDate:     r.SowingDate.Format(time.RFC3339),
		AdditionalInfo: r.AdditionalInfo,
	}
}

// CurrentCropAgentInput is the request for the crop-context agent
type CurrentCropAgentInput struct {
	Query       string             `json:"query" validate:"required"`
	CropContext CurrentCropContext `json:"cropContext" validate:"required"`
	Language    string             `json:"language,omitempty"`
}

// AdviceSection is one titled block of structured advice. Icon is one of a
// fixed set the web client can render.
type AdviceSection struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Icon    string `json:"icon" validate:"required,oneof=Bot TrendingUp Landmark FlaskConical ShieldAlert Droplet Info"`
}

// CurrentCropAgentOutput is the structured response from the crop-context agent
type CurrentCropAgentOutput struct {
	Summary          string          `json:"summary" validate:"required"`
	StructuredAdvice []AdviceSection `json:"structuredAdvice" validate:"required,dive"`
}
