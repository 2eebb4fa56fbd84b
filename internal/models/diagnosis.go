package models

import "time"

// CropDiagnosisInput is the request for the crop diagnosis agent. At least
// one plant photo is required, supplied as data URIs
// ("data:<mimetype>;base64,<encoded_data>").
type CropDiagnosisInput struct {
	UserID          string   `json:"userId,omitempty"`
	PhotoDataURIs   []string `json:"photoDataUris" validate:"required,min=1,dive,required"`
	LandSize        string   `json:"landSize,omitempty"`
	AdditionalNotes string   `json:"additionalNotes,omitempty"`
	Language        string   `json:"language,omitempty"`
}

// HealthStatus is the classified condition of the photographed crop
type HealthStatus struct {
	Status   string `json:"status" validate:"required,oneof=Healthy Infected 'At Risk'"`
	Severity string `json:"severity" validate:"required,oneof=Low Medium High N/A"`
	Summary  string `json:"summary" validate:"required"`
}

// DiseaseIdentification names the detected disease or pest, "N/A" if healthy
type DiseaseIdentification struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// CropDiagnosisOutput is the structured diagnosis returned by the agent
type CropDiagnosisOutput struct {
	HealthStatus          HealthStatus          `json:"healthStatus" validate:"required"`
	DiseaseIdentification DiseaseIdentification `json:"diseaseIdentification" validate:"required"`
	Symptoms              string                `json:"symptoms" validate:"required"`
	Remedies              string                `json:"remedies" validate:"required"`
	Prevention            string                `json:"prevention" validate:"required"`
}

// DiagnosisRecord is a persisted diagnosis. Photo payloads are not stored;
// UserID is empty for anonymous submissions.
type DiagnosisRecord struct {
	ID              string              `json:"id" badgerhold:"key"`
	Diagnosis       CropDiagnosisOutput `json:"diagnosis"`
	LandSize        string              `json:"landSize,omitempty"`
	AdditionalNotes string              `json:"additionalNotes,omitempty"`
	UserID          string              `json:"userId,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
}
