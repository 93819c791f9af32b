package controllers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/dcode-github/nestora/backend/models"
	"github.com/dcode-github/nestora/backend/pricing"
	"github.com/dcode-github/nestora/backend/search"
	"github.com/dcode-github/nestora/backend/utils"
	"github.com/gorilla/mux"
)

// GetAllProperties filters the catalogue by the type, location and
// price query parameters. An empty result is a 200 with an empty list.
func GetAllProperties(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := search.CriteriaFromQuery(r.URL.Query())
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil, err)
			return
		}

		results := env.Engine.Search(r.Context(), criteria)

		message := fmt.Sprintf("Found %d properties", len(results))
		if len(results) == 0 {
			message = "No properties found"
		}
		utils.RespondWithJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: message,
			Data:    results,
		})
	}
}

func GetProperty(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := propertyIDFromPath(w, r)
		if !ok {
			return
		}

		p, found := env.Engine.Catalogue().ByID(id)
		if !found {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil)
			return
		}

		detail := models.PropertyDetail{Property: p, Categories: []string{}}
		for _, c := range search.Classify(p) {
			detail.Categories = append(detail.Categories, string(c))
		}
		if v := pricing.Normalize(p.Price); !math.IsNaN(v) {
			detail.NormalizedPrice = &v
		}

		utils.RespondWithJSON(w, http.StatusOK, detail)
	}
}

func GetPriceRanges() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, pricing.Ranges())
	}
}

func GetLocations(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, env.Engine.Catalogue().Locations())
	}
}

func propertyIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid property ID", nil, err)
		return 0, false
	}
	return id, true
}
