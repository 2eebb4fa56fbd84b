package badger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/neervaani/neerhub/internal/models"
)

func newTestDB(t *testing.T) *BadgerDB {
	t.Helper()

	tmpDir := t.TempDir()
	options := badgerhold.DefaultOptions
	options.Dir = tmpDir
	options.ValueDir = tmpDir
	options.Logger = nil

	store, err := badgerhold.Open(options)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return &BadgerDB{store: store, logger: arbor.NewLogger()}
}

func TestCropStorageRoundTrip(t *testing.T) {
	storage := NewCropStorage(newTestDB(t), arbor.NewLogger())

	record := &models.CurrentCropRecord{
		CropName:   "Wheat",
		FieldSize:  "2 acres",
		Location:   "Pune",
		SowingDate: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, storage.SaveCrop(record))
	assert.NotEmpty(t, record.ID, "ID is assigned on save")
	assert.False(t, record.CreatedAt.IsZero())

	loaded, err := storage.GetCrop(record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wheat", loaded.CropName)
	assert.Equal(t, "Pune", loaded.Location)
}

func TestCropStorageListNewestFirst(t *testing.T) {
	storage := NewCropStorage(newTestDB(t), arbor.NewLogger())

	base := time.Now()
	for i, name := range []string{"Wheat", "Rice", "Cotton"} {
		require.NoError(t, storage.SaveCrop(&models.CurrentCropRecord{
			CropName:  name,
			FieldSize: "1 acre",
			Location:  "Delhi",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := storage.ListCrops()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Cotton", records[0].CropName)
	assert.Equal(t, "Wheat", records[2].CropName)
}

func TestCropStorageDelete(t *testing.T) {
	storage := NewCropStorage(newTestDB(t), arbor.NewLogger())

	record := &models.CurrentCropRecord{CropName: "Maize", FieldSize: "1 acre", Location: "Chennai"}
	require.NoError(t, storage.SaveCrop(record))

	require.NoError(t, storage.DeleteCrop(record.ID))
	_, err := storage.GetCrop(record.ID)
	assert.Error(t, err)

	// Deleting a missing record is not an error
	assert.NoError(t, storage.DeleteCrop("crop_does-not-exist"))
}

func TestDiagnosisStorageRoundTrip(t *testing.T) {
	storage := NewDiagnosisStorage(newTestDB(t), arbor.NewLogger())

	record := &models.DiagnosisRecord{
		Diagnosis: models.CropDiagnosisOutput{
			HealthStatus: models.HealthStatus{
				Status: "Infected", Severity: "High", Summary: "Severe blight",
			},
			DiseaseIdentification: models.DiseaseIdentification{
				Name: "Late blight", Description: "Phytophthora infestans",
			},
			Symptoms: "Dark lesions", Remedies: "Copper fungicide", Prevention: "Crop rotation",
		},
		LandSize: "0.5 acre",
		UserID:   "farmer-1",
	}
	require.NoError(t, storage.SaveDiagnosis(record))
	assert.NotEmpty(t, record.ID)

	loaded, err := storage.GetDiagnosis(record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Infected", loaded.Diagnosis.HealthStatus.Status)
	assert.Equal(t, "farmer-1", loaded.UserID)
}

func TestDiagnosisStorageListNewestFirst(t *testing.T) {
	storage := NewDiagnosisStorage(newTestDB(t), arbor.NewLogger())

	base := time.Now()
	summaries := []string{"first", "second", "third"}
	for i, summary := range summaries {
		require.NoError(t, storage.SaveDiagnosis(&models.DiagnosisRecord{
			Diagnosis: models.CropDiagnosisOutput{
				HealthStatus: models.HealthStatus{Status: "Healthy", Severity: "N/A", Summary: summary},
				DiseaseIdentification: models.DiseaseIdentification{
					Name: "N/A", Description: "None",
				},
				Symptoms: "None", Remedies: "None", Prevention: "None",
			},
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := storage.ListDiagnoses()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "third", records[0].Diagnosis.HealthStatus.Summary)
}

func TestGetMissingRecord(t *testing.T) {
	db := newTestDB(t)

	_, err := NewCropStorage(db, arbor.NewLogger()).GetCrop("missing")
	assert.ErrorContains(t, err, "not found")

	_, err = NewDiagnosisStorage(db, arbor.NewLogger()).GetDiagnosis("missing")
	assert.ErrorContains(t, err, "not found")
}
