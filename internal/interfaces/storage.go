package interfaces

import (
	"github.com/neervaani/neerhub/internal/models"
)

// DiagnosisStorage persists crop diagnosis records
type DiagnosisStorage interface {
	SaveDiagnosis(record *models.DiagnosisRecord) error
	GetDiagnosis(id string) (*models.DiagnosisRecord, error)

	// ListDiagnoses returns all records, newest first
	ListDiagnoses() ([]*models.DiagnosisRecord, error)
}

// CropStorage persists the crops a farmer is currently growing
type CropStorage interface {
	SaveCrop(record *models.CurrentCropRecord) error
	GetCrop(id string) (*models.CurrentCropRecord, error)

	// ListCrops returns all records, newest first
	ListCrops() ([]*models.CurrentCropRecord, error)
	DeleteCrop(id string) error
}

// StorageManager owns the database connection and the record stores
type StorageManager interface {
	Diagnoses() DiagnosisStorage
	Crops() CropStorage
	Close() error
}
