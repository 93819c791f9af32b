package controllers

import (
	"net/http"

	"github.com/dcode-github/nestora/backend/dtos"
	"github.com/dcode-github/nestora/backend/models"
	"github.com/dcode-github/nestora/backend/utils"
	"github.com/dcode-github/nestora/backend/wishlist"
)

func GetWishlist(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := env.clientFor(w, r)
		if !c.session.IsAuthenticated() {
			respondAuthRequired(w)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, wishlistResponse(c.wishlist))
	}
}

func AddToWishlist(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.WishlistAddRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		p, found := env.Engine.Catalogue().ByID(req.PropertyID)
		if !found {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil)
			return
		}

		c := env.clientFor(w, r)
		if err := c.wishlist.Add(p); err != nil {
			respondError(w, err)
			return
		}

		utils.RespondWithJSON(w, http.StatusCreated, wishlistResponse(c.wishlist))
	}
}

func RemoveFromWishlist(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := propertyIDFromPath(w, r)
		if !ok {
			return
		}

		c := env.clientFor(w, r)
		if !c.session.IsAuthenticated() {
			respondAuthRequired(w)
			return
		}
		c.wishlist.Remove(id)

		utils.RespondWithJSON(w, http.StatusOK, wishlistResponse(c.wishlist))
	}
}

// GetWishlistStatus never fails for anonymous visitors; nothing is saved
// for them.
func GetWishlistStatus(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := propertyIDFromPath(w, r)
		if !ok {
			return
		}

		c := env.clientFor(w, r)
		utils.RespondWithJSON(w, http.StatusOK, models.SavedStatus{
			PropertyID: id,
			Saved:      c.wishlist.Contains(id),
		})
	}
}

func wishlistResponse(wl *wishlist.Store) models.WishlistResponse {
	items := wl.Items()
	return models.WishlistResponse{Items: items, Count: len(items)}
}
