package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"wingman_server/models"
	"wingman_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles HTTP requests for user profiles
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController creates a new UserProfileController instance
func NewUserProfileController(userProfileService *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: userProfileService}
}

// HandleRegisterUser creates a new user profile
func (uc *UserProfileController) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	created, err := uc.UserProfileService.RegisterUser(context.Background(), user)
	if err != nil {
		log.Println("Error registering user:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// HandleGetUser fetches a user profile by ID
func (uc *UserProfileController) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	user, err := uc.UserProfileService.GetUser(context.Background(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Println("Error fetching user:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(user)
}

// HandleGetUserByPhone looks a user up by phone number
func (uc *UserProfileController) HandleGetUserByPhone(w http.ResponseWriter, r *http.Request) {
	phoneNumber := r.URL.Query().Get("phoneNumber")
	if phoneNumber == "" {
		http.Error(w, "phoneNumber is required", http.StatusBadRequest)
		return
	}

	user, err := uc.UserProfileService.GetUserByPhone(context.Background(), phoneNumber)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Println("Error fetching user by phone:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(user)
}

// HandleUpdateUser applies a partial profile update
func (uc *UserProfileController) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(updates) == 0 {
		http.Error(w, "At least one field is required", http.StatusBadRequest)
		return
	}

	updated, err := uc.UserProfileService.UpdateUser(context.Background(), userID, updates)
	if err != nil {
		log.Println("Error updating user:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(updated)
}

// HandleAddFriend links two users as friends
func (uc *UserProfileController) HandleAddFriend(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string `json:"userId"`
		FriendID string `json:"friendId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.FriendID == "" {
		http.Error(w, "userId and friendId are required", http.StatusBadRequest)
		return
	}

	if err := uc.UserProfileService.AddFriend(context.Background(), request.UserID, request.FriendID); err != nil {
		log.Println("Error adding friend:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Friend added successfully"})
}

// HandleDeleteUser removes a user profile
func (uc *UserProfileController) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := uc.UserProfileService.DeleteUser(context.Background(), userID); err != nil {
		log.Println("Error deleting user:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "User deleted successfully"})
}
