package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"wingman_server/models"
	"wingman_server/services"
)

// SwipeController handles HTTP requests for swipe sessions: fetching the
// remaining pool and recording decisions.
type SwipeController struct {
	SwipePoolService *services.SwipePoolService
	DecisionService  *services.DecisionService
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(swipePoolService *services.SwipePoolService, decisionService *services.DecisionService) *SwipeController {
	return &SwipeController{SwipePoolService: swipePoolService, DecisionService: decisionService}
}

// HandleGetPool refreshes and returns the undecided candidate pool for a
// (friend, matchmaker) pair
func (sc *SwipeController) HandleGetPool(w http.ResponseWriter, r *http.Request) {
	friendID := r.URL.Query().Get("friendId")
	matchmakerID := r.URL.Query().Get("matchmakerId")
	if friendID == "" || matchmakerID == "" {
		http.Error(w, "friendId and matchmakerId are required", http.StatusBadRequest)
		return
	}

	pool, err := sc.SwipePoolService.RefreshPool(context.Background(), friendID, matchmakerID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Println("Error refreshing swiping pool:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(pool)
}

// HandleRecordDecision records an approve/reject swipe
func (sc *SwipeController) HandleRecordDecision(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FriendID     string `json:"friendId"`
		CandidateID  string `json:"candidateId"`
		MatchmakerID string `json:"matchmakerId"`
		Decision     string `json:"decision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Println("Invalid request payload:", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if request.FriendID == "" || request.CandidateID == "" || request.MatchmakerID == "" {
		http.Error(w, "friendId, candidateId, and matchmakerId are required", http.StatusBadRequest)
		return
	}
	if request.Decision != models.DecisionApprove && request.Decision != models.DecisionReject {
		http.Error(w, "decision must be 'approve' or 'reject'", http.StatusBadRequest)
		return
	}

	result, err := sc.DecisionService.RecordDecision(context.Background(),
		request.FriendID, request.CandidateID, request.MatchmakerID, request.Decision)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Println("Error recording decision:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(result)
}
