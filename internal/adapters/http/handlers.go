package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/application"
)

type Handler struct {
	service *application.Service
}

func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	var input application.PredictInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	resp, err := h.service.Predict(r.Context(), actorFromContext(r.Context()), input)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) predictVirality(w http.ResponseWriter, r *http.Request) {
	var input application.ViralityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	resp, err := h.service.PredictVirality(r.Context(), actorFromContext(r.Context()), input)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) compare(w http.ResponseWriter, r *http.Request) {
	var input application.CompareInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	resp, err := h.service.Compare(r.Context(), actorFromContext(r.Context()), input)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) optimizeContent(w http.ResponseWriter, r *http.Request) {
	var input application.OptimizeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	resp, err := h.service.OptimizeContent(r.Context(), actorFromContext(r.Context()), input)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) detailedRecommendations(w http.ResponseWriter, r *http.Request) {
	var input application.RecommendationsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	resp, err := h.service.DetailedRecommendations(r.Context(), actorFromContext(r.Context()), input)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) optimalTiming(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be an integer")
			return
		}
		limit = parsed
	}
	input := application.TimingInput{
		Platform: query.Get("platform"),
		AgeGroup: query.Get("age_group"),
		Limit:    limit,
	}
	resp, err := h.service.OptimalTiming(r.Context(), actorFromContext(r.Context()), input)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) recordOutcome(w http.ResponseWriter, r *http.Request) {
	var input application.OutcomeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	resp, err := h.service.RecordOutcome(r.Context(), actorFromContext(r.Context()), input)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) getCreatorBaseline(w http.ResponseWriter, r *http.Request) {
	creatorID := chi.URLParam(r, "creator_id")
	platform := r.URL.Query().Get("platform")
	resp, err := h.service.GetCreatorBaseline(r.Context(), actorFromContext(r.Context()), creatorID, platform)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) getPlatformBenchmark(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")
	resp, err := h.service.GetPlatformBenchmark(r.Context(), actorFromContext(r.Context()), platform)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) updateTrends(w http.ResponseWriter, r *http.Request) {
	var input application.TrendUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	resp, err := h.service.UpdateTrends(r.Context(), actorFromContext(r.Context()), input)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) trainModels(w http.ResponseWriter, r *http.Request) {
	var input application.TrainInput
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
			return
		}
	}
	resp, err := h.service.TrainModels(r.Context(), actorFromContext(r.Context()), input)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}
