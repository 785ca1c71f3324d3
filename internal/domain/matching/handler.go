package matching

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-match-engine/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/recommendations", getRecommendationsHandler(svc))
}

type recommendationItemResponse struct {
	PetID            int64   `json:"pet_id"`
	Name             string  `json:"name"`
	Species          string  `json:"species"`
	Weight           float64 `json:"weight"`
	AgeYears         int     `json:"age_years"`
	MatchScore       float64 `json:"match_score"`
	MatchingTraitIDs []int64 `json:"matching_trait_ids"`
	StoreLocation    string  `json:"store_location"`

	Breakdown []factorResponse `json:"breakdown"`
}

type factorResponse struct {
	Factor       string  `json:"factor"`
	Contribution float64 `json:"contribution"`
}

type recommendationsResponse struct {
	Recommendations []recommendationItemResponse `json:"recommendations"`
	Broadened       bool                         `json:"broadened"`
	Message         string                       `json:"message,omitempty"`
}

// getRecommendationsHandler godoc
// @Summary  Recomendaciones rankeadas para un cuestionario o usuario
// @Tags     recommendations
// @Produce  json
// @Param    questionnaire_id query string false "id de cuestionario"
// @Param    user_id          query string false "usuario (usa su último cuestionario)"
// @Success  200 {object} matching.recommendationsResponse
// @Failure  404 {string} string "questionnaire not found"
// @Router   /recommendations [get]
func getRecommendationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qid := strings.TrimSpace(r.URL.Query().Get("questionnaire_id"))
		userID := strings.TrimSpace(r.URL.Query().Get("user_id"))

		// Sin params explícitos, cae al usuario autenticado.
		if qid == "" && userID == "" {
			if claims, ok := middleware.GetClaims(r.Context()); ok {
				userID = strings.TrimSpace(claims.UserID)
			}
		}

		var (
			res Result
			err error
		)
		switch {
		case qid != "":
			res, err = svc.Recommend(r.Context(), qid)
		case userID != "":
			res, err = svc.RecommendForUser(r.Context(), userID)
		default:
			http.Error(w, "questionnaire_id or user_id required", http.StatusBadRequest)
			return
		}

		if err != nil {
			if errors.Is(err, ErrQuestionnaireNotFound) {
				http.Error(w, "questionnaire not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toResponse(res))
	}
}

func toResponse(res Result) recommendationsResponse {
	out := recommendationsResponse{
		Recommendations: make([]recommendationItemResponse, 0, len(res.Items)),
		Broadened:       res.Broadened,
		Message:         res.Message,
	}
	for _, it := range res.Items {
		factors := make([]factorResponse, 0, len(it.Breakdown.Factors))
		for _, f := range it.Breakdown.Factors {
			factors = append(factors, factorResponse{Factor: f.Factor, Contribution: f.Contribution})
		}
		out.Recommendations = append(out.Recommendations, recommendationItemResponse{
			PetID:            it.PetID,
			Name:             it.Name,
			Species:          it.Species,
			Weight:           it.Weight,
			AgeYears:         it.AgeYears,
			MatchScore:       it.MatchScore,
			MatchingTraitIDs: it.MatchingTraitIDs,
			StoreLocation:    it.StoreLocation,
			Breakdown:        factors,
		})
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (catalog/matching) para evitar helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
