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

// DiagnosisStorage implements the DiagnosisStorage interface for Badger
type DiagnosisStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewDiagnosisStorage creates a new DiagnosisStorage instance
func NewDiagnosisStorage(db *BadgerDB, logger arbor.ILogger) interfaces.DiagnosisStorage {
	return &DiagnosisStorage{
		db:     db,
		logger: logger,
	}
}

func (s *DiagnosisStorage) SaveDiagnosis(record *models.DiagnosisRecord) error {
	if record.ID == "" {
		record.ID = common.NewDiagnosisID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	if err := s.db.Store().Upsert(record.ID, record); err != nil {
		return fmt.Errorf("failed to save diagnosis record: %w", err)
	}

	s.logger.Debug().Str("id", record.ID).Msg("Diagnosis record saved")
	return nil
}

func (s *DiagnosisStorage) GetDiagnosis(id string) (*models.DiagnosisRecord, error) {
	var record models.DiagnosisRecord
	if err := s.db.Store().Get(id, &record); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("diagnosis record not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get diagnosis record: %w", err)
	}
	return &record, nil
}

func (s *DiagnosisStorage) ListDiagnoses() ([]*models.DiagnosisRecord, error) {
	var records []*models.DiagnosisRecord
	err := s.db.Store().Find(&records, badgerhold.Where("ID").Ne("").SortBy("CreatedAt").Reverse())
	if err != nil {
		return nil, fmt.Errorf("failed to list diagnosis records: %w", err)
	}
	return records, nil
}
