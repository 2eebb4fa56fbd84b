package schemes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(arbor.NewLogger())
	require.NoError(t, err)
	return svc
}

func TestDatasetLoads(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, 7, svc.Count())
}

func TestSearchByName(t *testing.T) {
	svc := newTestService(t)

	matches := svc.Search("PM-KISAN")
	require.Len(t, matches, 1)
	assert.Contains(t, matches[0].SchemeName, "PM-KISAN")
}

func TestSearchByKeyword(t *testing.T) {
	svc := newTestService(t)

	matches := svc.Search("insurance")
	require.NotEmpty(t, matches)
	for _, record := range matches {
		found := strings.Contains(strings.ToLower(record.SchemeName), "insurance")
		for _, kw := range record.Keywords {
			if strings.Contains(strings.ToLower(kw), "insurance") {
				found = true
			}
		}
		assert.True(t, found, "record %q matched without containing the query", record.SchemeName)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	svc := newTestService(t)

	lower := svc.Search("irrigation")
	upper := svc.Search("IRRIGATION")
	assert.Equal(t, lower, upper)
}

func TestSearchPreservesDatasetOrder(t *testing.T) {
	svc := newTestService(t)

	// "pradhan mantri" appears in several scheme names; order must follow the file
	matches := svc.Search("pradhan mantri")
	require.NotEmpty(t, matches)

	positions := map[string]int{}
	for i, record := range svc.records {
		positions[record.SchemeName] = i
	}
	last := -1
	for _, record := range matches {
		assert.Greater(t, positions[record.SchemeName], last)
		last = positions[record.SchemeName]
	}
}

func TestSearchNoMatchReturnsEmptySlice(t *testing.T) {
	svc := newTestService(t)

	matches := svc.Search("quantum computing")
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestSearchIsIdempotent(t *testing.T) {
	svc := newTestService(t)

	first := svc.Search("credit")
	second := svc.Search("credit")
	assert.Equal(t, first, second)
}
