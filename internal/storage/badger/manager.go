package badger

import (
	"github.com/ternarybob/arbor"

	"github.com/neervaani/neerhub/internal/common"
	"github.com/neervaani/neerhub/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger
type Manager struct {
	db        *BadgerDB
	diagnoses interfaces.DiagnosisStorage
	crops     interfaces.CropStorage
	logger    arbor.ILogger
}

// NewManager creates a new Badger storage manager
func NewManager(logger arbor.ILogger, config *common.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:        db,
		diagnoses: NewDiagnosisStorage(db, logger),
		crops:     NewCropStorage(db, logger),
		logger:    logger,
	}

	logger.Info().Msg("Badger storage manager initialized")

	return manager, nil
}

// Diagnoses returns the diagnosis record storage
func (m *Manager) Diagnoses() interfaces.DiagnosisStorage {
	return m.diagnoses
}

// Crops returns the current crop record storage
func (m *Manager) Crops() interfaces.CropStorage {
	return m.crops
}

// Close closes the database connection
func (m *Manager) Close() error {
	return m.db.Close()
}
