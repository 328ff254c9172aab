package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fitfast/fitfast/internal/catalog"
	"github.com/fitfast/fitfast/internal/outfit"
)

// Responses wrap their payload in a data envelope, matching the shape
// downstream clients already consume.
type dataEnvelope struct {
	Data interface{} `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func writeData(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(dataEnvelope{Data: payload})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: msg})
}

// decodeBody decodes a JSON request body, rejecting unknown fields so
// typos in client payloads surface as 400s instead of silent defaults.
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	items, sizeRecords, embeddings := s.engine.Counts()
	writeData(w, map[string]interface{}{
		"status":       "ok",
		"items":        items,
		"size_records": sizeRecords,
		"embeddings":   embeddings,
	})
}

type sizeRequest struct {
	UserMeasurements map[string]float64 `json:"user_measurements"`
	GarmentType      string             `json:"garment_type"`
	Limit            int                `json:"limit"`
	MinScore         float64            `json:"min_score"`
}

func (s *Server) handleSize(w http.ResponseWriter, r *http.Request) {
	var req sizeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.UserMeasurements) == 0 {
		writeError(w, http.StatusBadRequest, "user_measurements is required")
		return
	}

	recs := s.engine.FindBestFittingItems(
		catalog.UserMeasurements(req.UserMeasurements),
		req.GarmentType, req.Limit, req.MinScore,
	)
	writeData(w, map[string]interface{}{
		"recommendations": recs,
		"count":           len(recs),
	})
}

type outfitRequest struct {
	ItemID           string             `json:"item_id"`
	UserMeasurements map[string]float64 `json:"user_measurements"`
	Theme            string             `json:"theme"`
	MaxItems         int                `json:"max_items"`
	MaxPrice         float64            `json:"max_price"`
	RequireFit       bool               `json:"require_fit"`
}

func (s *Server) handleOutfit(w http.ResponseWriter, r *http.Request) {
	var req outfitRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "item_id is required")
		return
	}

	built := s.engine.BuildOutfit(outfit.Request{
		StartingItemID: req.ItemID,
		User:           catalog.UserMeasurements(req.UserMeasurements),
		Theme:          req.Theme,
		MaxItems:       req.MaxItems,
		MaxPrice:       req.MaxPrice,
		RequireSizeFit: req.RequireFit,
	})
	if built == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown item: %s", req.ItemID))
		return
	}
	writeData(w, built)
}

type outfitsRequest struct {
	ItemID           string             `json:"item_id"`
	UserMeasurements map[string]float64 `json:"user_measurements"`
	Count            int                `json:"count"`
	MaxPrice         float64            `json:"max_price"`
}

func (s *Server) handleOutfits(w http.ResponseWriter, r *http.Request) {
	var req outfitsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "item_id is required")
		return
	}

	outfits := s.engine.GenerateOutfits(
		req.ItemID,
		catalog.UserMeasurements(req.UserMeasurements),
		req.Count, req.MaxPrice,
	)
	writeData(w, map[string]interface{}{
		"outfits": outfits,
		"count":   len(outfits),
	})
}

type similarRequest struct {
	ItemID        string  `json:"item_id"`
	Limit         int     `json:"limit"`
	SameCategory  bool    `json:"same_category"`
	MinSimilarity float64 `json:"min_similarity"`
}

func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	var req similarRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "item_id is required")
		return
	}

	results := s.engine.FindSimilar(req.ItemID, req.Limit, req.SameCategory, req.MinSimilarity)
	if results == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no embedding for item: %s", req.ItemID))
		return
	}
	writeData(w, map[string]interface{}{
		"similar": results,
		"count":   len(results),
	})
}
