package badger

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/neervaani/neerhub/internal/common"
	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/models"
)

// CropStorage implements the CropStorage interface for Badger
type CropStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewCropStorage creates a new CropStorage instance
func NewCropStorage(db *BadgerDB, logger arbor.ILogger) interfaces.CropStorage {
	return &CropStorage{
		db:     db,
		logger: logger,
	}
}

func (s *CropStorage) SaveCrop(record *models.CurrentCropRecord) error {
	if record.ID == "" {
		record.ID = common.NewCropID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	if err := s.db.Store().Upsert(record.ID, record); err != nil {
		return fmt.Errorf("failed to save crop record: %w", err)
	}

	s.logger.Debug().Str("id", record.ID).Str("crop", record.CropName).Msg("Crop record saved")
	return nil
}

func (s *CropStorage) GetCrop(id string) (*models.CurrentCropRecord, error) {
	var record models.CurrentCropRecord
	if err := s.db.Store().Get(id, &record); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("crop record not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get crop record: %w", err)
	}
	return &record, nil
}

func (s *CropStorage) ListCrops() ([]*models.CurrentCropRecord, error) {
	var records []*models.CurrentCropRecord
	err := s.db.Store().Find(&records, badgerhold.Where("ID").Ne("").SortBy("CreatedAt").Reverse())
	if err != nil {
		return nil, fmt.Errorf("failed to list crop records: %w", err)
	}
	return records, nil
}

func (s *CropStorage) DeleteCrop(id string) error {
	if err := s.db.Store().Delete(id, &models.CurrentCropRecord{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete crop record: %w", err)
	}
	return nil
}
