package common

import (
	"github.com/google/uuid"
)

// NewDiagnosisID generates a unique diagnosis record ID
// Format: diag_<uuid>
func NewDiagnosisID() string {
	return "diag_" + uuid.New().String()
}

// NewCropID generates a unique current-crop record ID
// Format: crop_<uuid>
func NewCropID() string {
	return "crop_" + uuid.New().String()
}
