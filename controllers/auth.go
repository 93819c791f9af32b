package controllers

import (
	"net/http"

	"github.com/dcode-github/nestora/backend/dtos"
	"github.com/dcode-github/nestora/backend/models"
	"github.com/dcode-github/nestora/backend/utils"
)

func RegisterUser(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.RegisterRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		c := env.clientFor(w, r)
		if err := c.session.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
			respondError(w, err)
			return
		}

		respondSignedIn(w, c, http.StatusCreated)
	}
}

func LoginUser(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		c := env.clientFor(w, r)
		if err := c.session.Login(r.Context(), req.Email, req.Password); err != nil {
			respondError(w, err)
			return
		}

		respondSignedIn(w, c, http.StatusOK)
	}
}

func LogoutUser(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := env.clientFor(w, r)
		c.session.Logout()

		utils.RespondWithJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "You have been logged out successfully",
		})
	}
}

// GetSession reports the identity restored from the visitor's slot.
func GetSession(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := env.clientFor(w, r)

		id, ok := c.session.Identity()
		if !ok {
			utils.RespondWithJSON(w, http.StatusOK, models.AuthResponse{Authenticated: false})
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, models.AuthResponse{Authenticated: true, User: &id})
	}
}

// GetMe answers for bearer-token clients; the middleware has already
// verified the token.
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(ClaimsKey).(*utils.Claims)
		if !ok {
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing token claims", nil)
			return
		}
		id := claims.Identity()
		utils.RespondWithJSON(w, http.StatusOK, models.AuthResponse{Authenticated: true, User: &id})
	}
}

func respondSignedIn(w http.ResponseWriter, c *client, status int) {
	id, _ := c.session.Identity()

	resp := models.AuthResponse{Authenticated: true, User: &id}
	token, err := utils.GenerateJWT(id)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Signed in %s without a bearer token", id.ID)
	} else {
		resp.Token = token
	}
	utils.RespondWithJSON(w, status, resp)
}
