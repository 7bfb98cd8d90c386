package routes

import (
	"wingman_server/controllers"
	"wingman_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for the match registry under /api/matches
func RegisterMatchRoutes(r *mux.Router, matchRegistryService *services.MatchRegistryService) {
	controller := controllers.NewMatchController(matchRegistryService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	matchRouter.HandleFunc("/{userId}", controller.HandleGetMatches).Methods("GET")
}
