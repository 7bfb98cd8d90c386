package routes

import (
	"wingman_server/controllers"
	"wingman_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up routes for swipe sessions under /api/swipe
func RegisterSwipeRoutes(r *mux.Router, swipePoolService *services.SwipePoolService, decisionService *services.DecisionService) {
	controller := controllers.NewSwipeController(swipePoolService, decisionService)

	swipeRouter := r.PathPrefix("/api/swipe").Subrouter()

	swipeRouter.HandleFunc("/pool", controller.HandleGetPool).Methods("GET")
	swipeRouter.HandleFunc("/decision", controller.HandleRecordDecision).Methods("POST")
}
