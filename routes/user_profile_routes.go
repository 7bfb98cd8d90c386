package routes

import (
	"wingman_server/controllers"
	"wingman_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile operations under /api/users
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService) {
	controller := controllers.NewUserProfileController(userProfileService)

	userRouter := r.PathPrefix("/api/users").Subrouter()

	userRouter.HandleFunc("", controller.HandleRegisterUser).Methods("POST")
	userRouter.HandleFunc("/lookup", controller.HandleGetUserByPhone).Methods("GET")
	userRouter.HandleFunc("/addFriend", controller.HandleAddFriend).Methods("POST")
	userRouter.HandleFunc("/{userId}", controller.HandleGetUser).Methods("GET")
	userRouter.HandleFunc("/{userId}", controller.HandleUpdateUser).Methods("PATCH")
	userRouter.HandleFunc("/{userId}", controller.HandleDeleteUser).Methods("DELETE")
}
