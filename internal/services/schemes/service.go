package schemes

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/neervaani/neerhub/internal/models"
	"github.com/neervaani/neerhub/internal/schemas"
)

//go:embed schemes.json
var schemesData []byte

// Service implements interfaces.SchemeService over the bundled dataset.
// Records are loaded and validated once at construction and never mutated,
// so concurrent reads need no locking.
type Service struct {
	records []models.SchemeRecord
	logger  arbor.ILogger
}

// NewService loads the embedded scheme dataset. A dataset that fails to
// parse is a startup error; individual records that fail validation are
// dropped with a logged cause rather than poisoning search results.
func NewService(logger arbor.ILogger) (*Service, error) {
	var records []models.SchemeRecord
	if err := json.Unmarshal(schemesData, &records); err != nil {
		return nil, fmt.Errorf("failed to parse scheme dataset: %w", err)
	}

	valid := make([]models.SchemeRecord, 0, len(records))
	for i, record := range records {
		if err := schemas.Validate(&record); err != nil {
			logger.Warn().
				Err(err).
				Int("index", i).
				Str("scheme", record.SchemeName).
				Msg("Dropping malformed scheme record from dataset")
			continue
		}
		valid = append(valid, record)
	}

	logger.Info().
		Int("schemes", len(valid)).
		Msg("Scheme repository loaded")

	return &Service{records: valid, logger: logger}, nil
}

// Search returns every scheme whose name or any keyword contains the query,
// case-insensitively, preserving dataset order. There is no stemming or
// ranking; a record either matched or it did not. An unmatched query
// returns an empty slice, never an error.
func (s *Service) Search(query string) []models.SchemeRecord {
	lower := strings.ToLower(query)

	matched := make([]models.SchemeRecord, 0)
	for _, record := range s.records {
		if s.matches(&record, lower) {
			matched = append(matched, record)
		}
	}

	s.logger.Debug().
		Str("query", query).
		Int("matches", len(matched)).
		Msg("Scheme search completed")

	return matched
}

// Count reports the number of loaded schemes
func (s *Service) Count() int {
	return len(s.records)
}

func (s *Service) matches(record *models.SchemeRecord, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(record.SchemeName), lowerQuery) {
		return true
	}
	for _, keyword := range record.Keywords {
		if strings.Contains(strings.ToLower(keyword), lowerQuery) {
			return true
		}
	}
	return false
}
