package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neervaani/neerhub/internal/models"
)

// memCropStorage is an in-memory CropStorage for handler tests
type memCropStorage struct {
	records map[string]*models.CurrentCropRecord
	nextID  int
}

func newMemCropStorage() *memCropStorage {
	return &memCropStorage{records: map[string]*models.CurrentCropRecord{}}
}

func (m *memCropStorage) SaveCrop(record *models.CurrentCropRecord) error {
	if record.ID == "" {
		m.nextID++
		record.ID = fmt.Sprintf("crop_%d", m.nextID)
	}
	m.records[record.ID] = record
	return nil
}

func (m *memCropStorage) GetCrop(id string) (*models.CurrentCropRecord, error) {
	record, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("crop record not found: %s", id)
	}
	return record, nil
}

func (m *memCropStorage) ListCrops() ([]*models.CurrentCropRecord, error) {
	out := make([]*models.CurrentCropRecord, 0, len(m.records))
	for _, record := range m.records {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memCropStorage) DeleteCrop(id string) error {
	delete(m.records, id)
	return nil
}

func TestCropHandlerCreateAndGet(t *testing.T) {
	storage := newMemCropStorage()
	handler := NewCropHandler(storage)

	body := `{"cropName": "Wheat", "fieldSize": "2 acres", "location": "Pune", "sowingDate": "2026-06-15"}`
	req := httptest.NewRequest("POST", "/api/crops", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CollectionHandler(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.CurrentCropRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Wheat", created.CropName)

	req = httptest.NewRequest("GET", "/api/crops/"+created.ID, nil)
	rec = httptest.NewRecorder()
	handler.ItemHandler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCropHandlerCreateValidation(t *testing.T) {
	handler := NewCropHandler(newMemCropStorage())

	// Missing required fields
	req := httptest.NewRequest("POST", "/api/crops", strings.NewReader(`{"cropName": "Wheat"}`))
	rec := httptest.NewRecorder()
	handler.CollectionHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Malformed sowing date
	body := `{"cropName": "Wheat", "fieldSize": "2 acres", "location": "Pune", "sowingDate": "15-06-2026"}`
	req = httptest.NewRequest("POST", "/api/crops", strings.NewReader(body))
	rec = httptest.NewRecorder()
	handler.CollectionHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCropHandlerListEmpty(t *testing.T) {
	handler := NewCropHandler(newMemCropStorage())

	req := httptest.NewRequest("GET", "/api/crops", nil)
	rec := httptest.NewRecorder()
	handler.CollectionHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCropHandlerDelete(t *testing.T) {
	storage := newMemCropStorage()
	require.NoError(t, storage.SaveCrop(&models.CurrentCropRecord{
		CropName: "Rice", FieldSize: "1 acre", Location: "Kolkata",
	}))
	handler := NewCropHandler(storage)

	req := httptest.NewRequest("DELETE", "/api/crops/crop_1", nil)
	rec := httptest.NewRecorder()
	handler.ItemHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, storage.records)
}

func TestCropHandlerMissingID(t *testing.T) {
	handler := NewCropHandler(newMemCropStorage())

	req := httptest.NewRequest("GET", "/api/crops/", nil)
	rec := httptest.NewRecorder()
	handler.ItemHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest("GET", "/api/crops/nope", nil)
	rec = httptest.NewRecorder()
	handler.ItemHandler(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
