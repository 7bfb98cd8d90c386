package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"wingman_server/services"

	"github.com/gorilla/mux"
)

// MatchController handles HTTP requests for the confirmed-match view
type MatchController struct {
	MatchRegistryService *services.MatchRegistryService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchRegistryService *services.MatchRegistryService) *MatchController {
	return &MatchController{MatchRegistryService: matchRegistryService}
}

// HandleGetMatches returns a user's confirmed matches
func (mc *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	matches, err := mc.MatchRegistryService.GetConfirmedMatches(context.Background(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Println("Error fetching matches:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(matches)
}
