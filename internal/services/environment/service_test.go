package environment

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

func TestLookupCuratedCities(t *testing.T) {
	svc := NewService(arbor.NewLogger())
	ctx := context.Background()

	record, err := svc.Lookup(ctx, "Pune")
	require.NoError(t, err)
	assert.Equal(t, 25.0, record.Temperature)
	assert.Equal(t, 65.0, record.Humidity)
	assert.Equal(t, 750.0, record.Rainfall)
	assert.Equal(t, "Clay Loam", record.SoilType)

	record, err = svc.Lookup(ctx, "Bangalore")
	require.NoError(t, err)
	assert.Equal(t, 24.0, record.Temperature)
	assert.Equal(t, 70.0, record.Humidity)
	assert.Equal(t, 970.0, record.Rainfall)
	assert.Equal(t, "Red Loam", record.SoilType)
}

func TestLookupMatchesSubstringCaseInsensitive(t *testing.T) {
	svc := NewService(arbor.NewLogger())
	ctx := context.Background()

	for _, location := range []string{"PUNE", "Pune, Maharashtra", "near pune city"} {
		record, err := svc.Lookup(ctx, location)
		require.NoError(t, err)
		assert.Equal(t, "Clay Loam", record.SoilType, "location %q should match Pune", location)
	}
}

func TestLookupUnknownLocationIsBounded(t *testing.T) {
	svc := NewServiceWithSource(arbor.NewLogger(), rand.NewSource(42))
	ctx := context.Background()

	soilSet := map[string]bool{}
	for _, soil := range fallbackSoilTypes {
		soilSet[soil] = true
	}

	for i := 0; i < 200; i++ {
		record, err := svc.Lookup(ctx, "Atlantis")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, record.Temperature, 18.0)
		assert.LessOrEqual(t, record.Temperature, 35.0)
		assert.GreaterOrEqual(t, record.Humidity, 40.0)
		assert.LessOrEqual(t, record.Humidity, 90.0)
		assert.GreaterOrEqual(t, record.Rainfall, 500.0)
		assert.LessOrEqual(t, record.Rainfall, 2500.0)
		assert.True(t, soilSet[record.SoilType], "unexpected soil type %q", record.SoilType)
	}
}

func TestLookupNeverFails(t *testing.T) {
	svc := NewService(arbor.NewLogger())
	ctx := context.Background()

	for _, location := range []string{"", "   ", "!!!", "a place nobody has heard of"} {
		record, err := svc.Lookup(ctx, location)
		assert.NoError(t, err)
		assert.NotNil(t, record)
	}
}

func TestLookupCuratedReturnsCopy(t *testing.T) {
	svc := NewService(arbor.NewLogger())
	ctx := context.Background()

	first, err := svc.Lookup(ctx, "Delhi")
	require.NoError(t, err)
	first.Temperature = 99

	second, err := svc.Lookup(ctx, "Delhi")
	require.NoError(t, err)
	assert.Equal(t, 25.0, second.Temperature)
}
