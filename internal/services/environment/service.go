package environment

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/neervaani/neerhub/internal/models"
)

// curatedCity maps a city keyword to its fixed environmental record
type curatedCity struct {
	keyword string
	record  models.EnvironmentalRecord
}

// Curated values for the cities we have agricultural reference data for.
// Matching is case-insensitive substring, so "Pune, Maharashtra" matches.
var curatedCities = []curatedCity{
	{"pune", models.EnvironmentalRecord{Temperature: 25, Humidity: 65, Rainfall: 750, SoilType: "Clay Loam"}},
	{"bangalore", models.EnvironmentalRecord{Temperature: 24, Humidity: 70, Rainfall: 970, SoilType: "Red Loam"}},
	{"kolkata", models.EnvironmentalRecord{Temperature: 27, Humidity: 78, Rainfall: 1800, SoilType: "Alluvial"}},
	{"delhi", models.EnvironmentalRecord{Temperature: 25, Humidity: 55, Rainfall: 774, SoilType: "Sandy Loam"}},
	{"chennai", models.EnvironmentalRecord{Temperature: 29, Humidity: 75, Rainfall: 1400, SoilType: "Clayey and Sandy"}},
	{"mumbai", models.EnvironmentalRecord{Temperature: 27, Humidity: 77, Rainfall: 2350, SoilType: "Coastal Saline"}},
}

// fallbackSoilTypes is the soil set used for locations outside the curated list
var fallbackSoilTypes = []string{"Loam", "Sandy Loam", "Clay Loam", "Alluvial", "Black Soil"}

// Service implements interfaces.EnvironmentService over the curated dataset.
// Lookup is total: unknown locations get plausible bounded values so callers
// never have to handle an absent record.
type Service struct {
	logger arbor.ILogger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates an environment lookup service. The fallback generator
// is unseeded in production use.
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		logger: logger,
		rng:    rand.New(rand.NewSource(rand.Int63())),
	}
}

// NewServiceWithSource creates a service with an injected random source so
// tests can pin the fallback values.
func NewServiceWithSource(logger arbor.ILogger, source rand.Source) *Service {
	return &Service{
		logger: logger,
		rng:    rand.New(source),
	}
}

// Lookup returns typical environmental data for a location. Curated cities
// return their fixed values; anything else gets bounded plausible values:
// temperature 18-35°C, humidity 40-90%, rainfall 500-2500mm, and a soil type
// from the fallback set. The returned error is always nil.
func (s *Service) Lookup(_ context.Context, location string) (*models.EnvironmentalRecord, error) {
	lower := strings.ToLower(location)

	for _, city := range curatedCities {
		if strings.Contains(lower, city.keyword) {
			record := city.record
			s.logger.Debug().
				Str("location", location).
				Str("soil_type", record.SoilType).
				Msg("Environmental lookup hit curated city")
			return &record, nil
		}
	}

	s.mu.Lock()
	record := &models.EnvironmentalRecord{
		Temperature: float64(18 + s.rng.Intn(35-18+1)),
		Humidity:    float64(40 + s.rng.Intn(90-40+1)),
		Rainfall:    float64(500 + s.rng.Intn(2500-500+1)),
		SoilType:    fallbackSoilTypes[s.rng.Intn(len(fallbackSoilTypes))],
	}
	s.mu.Unlock()

	s.logger.Debug().
		Str("location", location).
		Msg("Location not in curated list, generated plausible data")

	return record, nil
}
