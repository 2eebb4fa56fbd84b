package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/neervaani/neerhub/internal/common"
	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/models"
	"github.com/neervaani/neerhub/internal/schemas"
)

// cropRequest is the wire form for creating a crop record
type cropRequest struct {
	CropName       string `json:"cropName" validate:"required"`
	FieldSize      string `json:"fieldSize" validate:"required"`
	Location       string `json:"location" validate:"required"`
	SowingDate     string `json:"sowingDate" validate:"required,datetime=2006-01-02"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// CropHandler manages the crops a farmer is currently growing
type CropHandler struct {
	storage interfaces.CropStorage
	logger  arbor.ILogger
}

func NewCropHandler(storage interfaces.CropStorage) *CropHandler {
	return &CropHandler{
		storage: storage,
		logger:  common.GetLogger(),
	}
}

// CollectionHandler handles GET and POST on /api/crops
func (h *CropHandler) CollectionHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		h.list(w)
	case "POST":
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ItemHandler handles GET and DELETE on /api/crops/{id}
func (h *CropHandler) ItemHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/crops/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Crop ID is required")
		return
	}

	switch r.Method {
	case "GET":
		record, err := h.storage.GetCrop(id)
		if err != nil {
			WriteError(w, http.StatusNotFound, "Crop not found")
			return
		}
		WriteJSON(w, http.StatusOK, record)
	case "DELETE":
		if err := h.storage.DeleteCrop(id); err != nil {
			h.logger.Warn().Err(err).Str("id", id).Msg("Failed to delete crop record")
			WriteError(w, http.StatusInternalServerError, "Failed to delete crop")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CropHandler) list(w http.ResponseWriter) {
	records, err := h.storage.ListCrops()
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to list crop records")
		WriteError(w, http.StatusInternalServerError, "Failed to list crops")
		return
	}
	if records == nil {
		records = []*models.CurrentCropRecord{}
	}
	WriteJSON(w, http.StatusOK, records)
}

func (h *CropHandler) create(w http.ResponseWriter, r *http.Request) {
	req := &cropRequest{}
	if !DecodeBody(w, r, req) {
		return
	}
	if err := schemas.Validate(req); err != nil {
		WriteAgentError(w, err)
		return
	}

	sowingDate, err := time.Parse("2006-01-02", req.SowingDate)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "sowingDate must be YYYY-MM-DD")
		return
	}

	record := &models.CurrentCropRecord{
		CropName:       req.CropName,
		FieldSize:      req.FieldSize,
		Location:       req.Location,
		SowingDate:     sowingDate,
		AdditionalInfo: req.AdditionalInfo,
	}
	if err := h.storage.SaveCrop(record); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to save crop record")
		WriteError(w, http.StatusInternalServerError, "Failed to save crop")
		return
	}

	WriteJSON(w, http.StatusOK, record)
}
