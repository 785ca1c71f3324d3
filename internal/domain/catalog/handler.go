package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/traits", listTraitsHandler(svc))
}

type traitResponse struct {
	ID          int64  `json:"id"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
}

// listTraitsHandler godoc
// @Summary  Vocabulario de rasgos
// @Tags     traits
// @Produce  json
// @Success  200 {array} catalog.traitResponse
// @Router   /traits [get]
func listTraitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListTraits(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]traitResponse, 0, len(items))
		for _, t := range items {
			out = append(out, traitResponse{ID: t.ID, Tag: t.Tag, Description: t.Description})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (catalog/matching) para evitar helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
