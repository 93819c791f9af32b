package routes

import (
	"github.com/dcode-github/nestora/backend/controllers"
	"github.com/dcode-github/nestora/backend/middleware"
	"github.com/gorilla/mux"
)

func Routes(router *mux.Router, env *controllers.Env) {
	router.Use(middleware.RequestLogger)

	// Catalogue and search
	router.HandleFunc("/properties", controllers.GetAllProperties(env)).Methods("GET")
	router.HandleFunc("/properties/{id}", controllers.GetProperty(env)).Methods("GET")
	router.HandleFunc("/price-ranges", controllers.GetPriceRanges()).Methods("GET")
	router.HandleFunc("/locations", controllers.GetLocations(env)).Methods("GET")

	// Session
	router.HandleFunc("/auth/register", controllers.RegisterUser(env)).Methods("POST")
	router.HandleFunc("/auth/login", controllers.LoginUser(env)).Methods("POST")
	router.HandleFunc("/auth/logout", controllers.LogoutUser(env)).Methods("POST")
	router.HandleFunc("/auth/session", controllers.GetSession(env)).Methods("GET")

	// Wishlist, gated by the cookie session
	router.HandleFunc("/wishlist", controllers.GetWishlist(env)).Methods("GET")
	router.HandleFunc("/wishlist", controllers.AddToWishlist(env)).Methods("POST")
	router.HandleFunc("/wishlist/{id}", controllers.GetWishlistStatus(env)).Methods("GET")
	router.HandleFunc("/wishlist/{id}", controllers.RemoveFromWishlist(env)).Methods("DELETE")

	router.HandleFunc("/assistant", controllers.GetAssistantGreeting()).Methods("GET")
	router.HandleFunc("/assistant", controllers.AskAssistant()).Methods("POST")

	// Bearer token routes
	authenticated := router.PathPrefix("/api").Subrouter()
	authenticated.Use(middleware.AuthMiddleware)
	authenticated.HandleFunc("/me", controllers.GetMe()).Methods("GET")
}
